package board

// Magic multipliers for the occupancy-indexed attack tables. Found by
// trial and error with a random number generator so that the relevant
// occupancy bits suffice to index each table with only constructive
// collisions. The rook set doubles for cannons, which share rook masks.

var rookMagics = [90]BitBoard{
	{0x8a08c0010c100400, 0x4040000414000a40},
	{0x2000030408010008, 0x520004802000020},
	{0x18400000034001, 0x7040010400065040},
	{0x40084200e4040004, 0x4300008808100040},
	{0x40080001000000a8, 0x400200200400100},
	{0x19808808840100, 0x4040010001200049},
	{0x500000a200000, 0x64002a0c000410b},
	{0x800810000064000, 0x200000900040084},
	{0x88000400121, 0x80010400860a02},
	{0x20483041002001da, 0x50002000085a0000},
	{0x8010000120101204, 0x28a500012000060},
	{0x80200022a0040210, 0x4000400110002040},
	{0x900010040080000, 0x440400101000080},
	{0x4200500401000200, 0xba800080818008},
	{0x401000800000080, 0x800200084010},
	{0x8050004000002, 0x184080009024a104},
	{0x818280000022a200, 0x100400440900010},
	{0x460480a042200120, 0xc10800001200900},
	{0x80005840c0080300, 0x2060100004c392},
	{0x2000102800008000, 0x8220008400204000},
	{0x800900002004000, 0xa18002400004000},
	{0x10000010a50000, 0x2008201000302020},
	{0x204000012008000, 0x8c001000240020},
	{0x440100426200020, 0x20008008010},
	{0x1002100000008000, 0x1080010004108002},
	{0x914040403015061, 0x6000008000020214},
	{0x4042004008010228, 0x2008004000048a18},
	{0x5c30400000000020, 0xa830100008000480},
	{0x1000000000c440, 0x802080c000180},
	{0x8010800920000040, 0x291680010002120},
	{0x2400a40020401, 0x2011020008002040},
	{0x901801002010000, 0x10000400b0004000},
	{0x2020020200010020, 0x800900100040008},
	{0x10200004a020081, 0x600008000800},
	{0x1044048420402100, 0x2002086040001220},
	{0x900080840008104, 0x2211008020002101},
	{0x40400000000000a4, 0x1101242108040004},
	{0x4000040080400000, 0x2400040084220000},
	{0x20000000041430, 0x280200080840040},
	{0x4008080020908008, 0x18000050080010},
	{0x1000400840186000, 0xca10000240004},
	{0x8020800a4820106, 0x880100400800200},
	{0x400118200101410, 0x60400481080021},
	{0x800440048300881, 0x2004200004},
	{0x100200500281502, 0x2a10040440300009},
	{0x1080000000090a20, 0xe02a42800150200},
	{0x420000082128104, 0x8088040004004b00},
	{0x810004000800c00, 0x2008200142000200},
	{0x448004200020402, 0x4201200200042200},
	{0x1820080200070042, 0x100800301a01800},
	{0x122140050100a01, 0x18c800081016800},
	{0x200004001841220, 0x101200040000200},
	{0x10000100d104000, 0xa00020000200},
	{0x40408008400070, 0x40400002c28400},
	{0x100842001000, 0x200800008021},
	{0x4000900100000c0a, 0x8020003100028004},
	{0x40001000400000c0, 0x8000080004000},
	{0x2020004000a02, 0x4a020008008001},
	{0x8100020004001, 0x200800200401004},
	{0x4006044000080, 0x2800200204004},
	{0x1000400008440, 0x2103200040000401},
	{0x2240400061000, 0x9200810a0408408},
	{0x80200a180001, 0x510000124aa00304},
	{0x80004090048080, 0x122080208004100},
	{0x10c0020084001001, 0x10080001000301},
	{0x200040010800200, 0x100040084040084},
	{0x3500022d10085010, 0x10400a000500a0},
	{0x80010408102004, 0x1006810000140020},
	{0x2280024883004800, 0x6000200040002000},
	{0x8100020000001000, 0x220400020041000},
	{0x400058000400040, 0x6004c410409},
	{0x2600010000002884, 0x110041804a2},
	{0x121000000006000, 0x81001a0204100a02},
	{0x6002600310000000, 0x408000c0000a0},
	{0x6000400000440008, 0x780020840010},
	{0x200080008a100080, 0x230812012001020},
	{0x480400048000100, 0x6822020000102000},
	{0x10010010c4000081, 0x100c800041002000},
	{0xa04800040002001, 0x400240012013},
	{0x102000000000800, 0x48080204a0022011},
	{0x2021000000880002, 0x108000810041000},
	{0x8a04000200202, 0x1001842002002200},
	{0x4002082000040000, 0x840100008042060},
	{0x10002000004b80, 0x430c22040410001},
	{0x8208002000000208, 0x4410088281000201},
	{0x4280080002004b0, 0x4000800034408080},
	{0x400002000048022, 0xe00010400004},
	{0x204414000000408, 0x400040000170},
	{0x1043010000048108, 0x4500402202},
	{0x8608902000084008, 0x211a200001280000},
}

var bishopMagics = [90]BitBoard{
	{0x880010041200001, 0x376c0000480001},
	{0x1000000000000, 0x17e20100000000},
	{0x480288204041, 0x419840c00040020},
	{0x40000004000000a0, 0x13100000100202},
	{0x2808002002a00120, 0x2109900100320000},
	{0x1d10108800100, 0x203240002068000},
	{0x7002040148001205, 0x1964090001018},
	{0x304120101c208, 0x225f90800201080},
	{0x680000002000388, 0x800af8102030000},
	{0x2104028200050000, 0x17b328894000},
	{0x1004a80010030002, 0x20800f9804080100},
	{0x40c04410001200a, 0x460332208000040},
	{0x4004044000800, 0x8000492c20003008},
	{0x2042000014c0, 0x100004c540000000},
	{0xa000100020240264, 0x5102466642401000},
	{0x8c0004004000020, 0x200012980701000},
	{0x8203008000801404, 0x4400be80004818},
	{0x6010000000202085, 0x4420006bc5086000},
	{0x1400004008002e80, 0x214004a9000100},
	{0x120802002144002, 0x10600325200200},
	{0x2044412202002000, 0x94080c0120000480},
	{0x106400, 0x6448800110400100},
	{0x11101401100c1090, 0x100008a041200},
	{0x60002410002000c0, 0x4280900041000000},
	{0x8414880202291, 0x8c0488120024214},
	{0x424a04000000002, 0x2080b40050544300},
	{0x40061000c000104, 0x8001930019090445},
	{0x2008420c3b0, 0x103040126e2283},
	{0x40208040002, 0x200070100368420},
	{0xa00128000001000, 0x30808040800},
	{0x5010280481100082, 0x121028100114080},
	{0x5010280481100082, 0x121028100114080},
	{0x5010280481100082, 0x121028100114080},
	{0xa20000500060, 0x4024004101028240},
	{0x1001810000130814, 0x410802c8710c8812},
	{0x20440120000018, 0x42100025c1058000},
	{0x40420400820000f0, 0x418008ed8000822},
	{0x2100801404028000, 0x30778300000},
	{0x40200080c0040, 0x24800990801240},
	{0x1800401040602208, 0x1080010b0c800008},
	{0x809031100000800, 0xc202408a6460000c},
	{0x240a00001, 0x901910c9040000},
	{0x809031100000800, 0xc202408a6460000c},
	{0xc001400040040410, 0x10020416ec20018},
	{0x6010c01040000008, 0x81000003f200160},
	{0x804200001812, 0x120409000c081e7},
	{0xb011000400201000, 0x20020222000000b7},
	{0x8880040002418026, 0x8061084112165},
	{0x8880040002418026, 0x8061084112165},
	{0x8000004200810001, 0x100600000882031},
	{0x8880040002418026, 0x8061084112165},
	{0x60100044010001a8, 0x6000205000216},
	{0xd80008400012001c, 0x1804000080d},
	{0xe8108020001000f0, 0x2480000804001007},
	{0xa9cc00150a080410, 0x440c400000015800},
	{0xa9cc00150a080410, 0x440c400000015800},
	{0x6200082800020120, 0x1540008800400400},
	{0x9203008100100013, 0x800000000300482},
	{0x9203008100100013, 0x800000000300482},
	{0x9203008100100013, 0x800000000300482},
	{0x9203008100100013, 0x800000000300482},
	{0x422000208c08000, 0x8410020001102f08},
	{0x388010061000102, 0x100000010090058},
	{0x34444800000000, 0x1001440101010c},
	{0x8829480490100020, 0x1000480021008050},
	{0x4810a00000020000, 0x800704010804022},
	{0x208402410204220, 0xc00a810014000512},
	{0x24500444001400, 0x2082000900000108},
	{0x8002110011010809, 0x8040002000409004},
	{0x1004404404480000, 0xc200005410002},
	{0x801782844520000, 0x3020084020120848},
	{0x2901310038803052, 0xb080420104000502},
	{0xf692812040001287, 0x8a408108080000},
	{0x7d40000485880010, 0x813000800008008},
	{0xe588d01000044000, 0x8020031500100},
	{0x3320018000410404, 0x10028910042039},
	{0xe588d01000044000, 0x8020031500100},
	{0x3320018000410404, 0x10028910042039},
	{0x894c002004240100, 0x2000000400000000},
	{0x157e000202900082, 0x8100400021200040},
	{0x3f2000810100800, 0x40028212a0028210},
	{0xeec00000020220, 0x10000020010},
	{0x112fb88050021000, 0x800400a23c070820},
	{0x4032402000500400, 0x108084604040181},
	{0x2126413000200014, 0x20000040018a404},
	{0x400c58201000a800, 0x10018000004},
	{0xc65940000c4000, 0x102200440200},
	{0x2103130220180000, 0x9018511020008110},
	{0x2403ce4013013004, 0x224200000201000},
	{0x15f8040a04004, 0x1000002048040400},
}

var knightMagics = [90]BitBoard{
	{0x4201008902036000, 0x61ce000000010400},
	{0x4800000810008, 0x1c22500000100020},
	{0x104080a0092024, 0x1308200880800080},
	{0x104080a0092024, 0x1308200880800080},
	{0x50140140000000d2, 0xa462006100000008},
	{0x40ca0820c00a8010, 0x8231008011002000},
	{0x1020810002000202, 0x12a800008080108},
	{0x21281060, 0x520b30201043000},
	{0x1000142420881020, 0xb9458428840314},
	{0x1808000050040008, 0x88142a8014000005},
	{0xc1101000800080, 0x520b1482010a0600},
	{0x8018809400414400, 0x9840100000040},
	{0x8018809400414400, 0x9840100000040},
	{0x80060010001c0000, 0x1202054810000110},
	{0x2400306000002880, 0x101128860010001},
	{0x2040008400000004, 0xc800814620442401},
	{0x10000112012410c, 0x20c24700003021},
	{0x4004044000800, 0x8000492c20003008},
	{0xb1008000000a100, 0x40405b8421040220},
	{0x2040028604200040, 0xea09088430c00000},
	{0x5808002000100, 0x189410a0484020},
	{0x80000808d4000c08, 0x34558200120011},
	{0x81384002048, 0x224c302000001},
	{0x2080060220085018, 0x1881221020000090},
	{0x204800000010a0, 0x462040040000},
	{0x40000001804200, 0xa1003042625408c4},
	{0x206808a000b58080, 0x8a015a411800421},
	{0x1060841010010000, 0x12202062a4000000},
	{0x9000050641080000, 0x700302912810200},
	{0x4a12040800060000, 0x840a818211020000},
	{0x208400a010000001, 0x8200412402a0400},
	{0x48024400010, 0x640130864800400},
	{0x85000a08000, 0xc010220920198},
	{0x8002088008020000, 0x40851022104100},
	{0x4008000000000a, 0x4081940090000},
	{0x4001201280800002, 0x400000102003c404},
	{0x2001020088d00044, 0x39915222114200},
	{0x4c00800000000000, 0x810088800a54100},
	{0x1041412400048a00, 0x1480020c1028000},
	{0x1000600400001881, 0x200190a241002},
	{0x1000600400001881, 0x200190a241002},
	{0x200040000220, 0x2000010221020},
	{0x41002c15811008, 0xa0063423444},
	{0x80000000008802, 0x8408022cd1220272},
	{0x100000800040008, 0x4a00004010169a10},
	{0x1000284880004200, 0x14402494220},
	{0x4010204109000200, 0x602060c0c1013082},
	{0x2200010900210882, 0x8220000000462041},
	{0x482060002000, 0x2100001124860},
	{0x240000800080, 0x24000000008010c8},
	{0x200c004809000101, 0x88400012084408},
	{0x2000000208808000, 0x200000408422442e},
	{0x84400100011a80, 0x800300000112a99},
	{0x9400800000161402, 0x2100080081080428},
	{0x84c0402026140104, 0x8140044080142052},
	{0x4500008000091c98, 0x108481218460e780},
	{0x21a00493280c2008, 0x400202040},
	{0x2010104000014000, 0x41460100e2202013},
	{0x10002b0000413480, 0x80240000021009},
	{0x12240404a0010080, 0x40c800010002004},
	{0x9240000002008428, 0x4000a01800051004},
	{0x1514000202081248, 0x5280001000200813},
	{0xb4000020010000, 0x4006840000003114},
	{0x4196800008040000, 0x4040801000a2486},
	{0x2a13142028000000, 0x4001020000804101},
	{0x454808c800020000, 0x880012000000081},
	{0x9089040854800880, 0x1210000010400008},
	{0x1108100040010940, 0xc020310000641048},
	{0x4109089000000c0, 0x201824042004009},
	{0x201246020420400, 0x600046000000281},
	{0x15308011a001062, 0x4a0000018302002},
	{0x150224801012048, 0x6100000011000502},
	{0x9d409000004b0800, 0x10000009000},
	{0x8819c00110000000, 0x2008000108044000},
	{0x1049000040200000, 0x800000005043080},
	{0x11088c283040c000, 0x100000201200300},
	{0x844850000801001, 0xc0000a0410400090},
	{0x42a440012400200, 0xe28500304880000},
	{0x42a440012400200, 0xe28500304880000},
	{0x5d2090084008001, 0x2002000010082220},
	{0x2b3044000020900, 0x5000000420004020},
	{0x2056a21800008065, 0x1100000a08003808},
	{0x2a8554221024000, 0x500520018002900},
	{0x10624080400880, 0x200000040981008},
	{0x48505620010020a8, 0x4c21100000503845},
	{0x318930800201481, 0x80128000212},
	{0x902510600000022, 0x24800404a0014000},
	{0x940216c804002002, 0x400010004021},
	{0x200b1ca100000002, 0x11a601010400},
	{0x851a866140000000, 0x20108001000020},
}

var knightToMagics = [90]BitBoard{
	{0x880010041200001, 0x376c0000480001},
	{0x1045004484220000, 0x31800000419802},
	{0x480288204041, 0x419840c00040020},
	{0x40000004000000a0, 0x13100000100202},
	{0x2808002002a00120, 0x2109900100320000},
	{0x1d10108800100, 0x203240002068000},
	{0x7002040148001205, 0x1964090001018},
	{0x208902a02886205, 0x540cc0040000001},
	{0x680000002000388, 0x800af8102030000},
	{0x472208000024020, 0x2c00107044117186},
	{0x5000001080300028, 0xb000196440104004},
	{0x8800043010004000, 0x1090420810000060},
	{0x801020002608000, 0x840010200480040},
	{0x382004108292000, 0x4100088c0802000},
	{0x6948004100020, 0xa11124202400c01},
	{0x2400306000002880, 0x101128860010001},
	{0xa000100020240264, 0x5102466642401000},
	{0x40002810d0000004, 0xa1085280050288},
	{0x1400004008002e80, 0x214004a9000100},
	{0x4881300000000210, 0x9000420008840},
	{0x2044412202002000, 0x94080c0120000480},
	{0x106400, 0x6448800110400100},
	{0x11101401100c1090, 0x100008a041200},
	{0x60002410002000c0, 0x4280900041000000},
	{0x8414880202291, 0x8c0488120024214},
	{0x1002041368140101, 0x400420008100290},
	{0x40061000c000104, 0x8001930019090445},
	{0x2008420c3b0, 0x103040126e2283},
	{0x800200020504000, 0x94811601a014100},
	{0x203082d8080080, 0x2081022101040000},
	{0x20000400000215, 0x1c22080422008},
	{0xc020800d00800000, 0x2002810c01200004},
	{0x5010280481100082, 0x121028100114080},
	{0x400a801b04ac0, 0x2410204448084080},
	{0x110830840040a100, 0x9242002000049000},
	{0xa001000012034000, 0x48010505009c000},
	{0x30110082060a2002, 0x82a4001b1c412000},
	{0xc40000490000320, 0xc008800204391000},
	{0x80007860100, 0x4802000d14c18021},
	{0x9304000004200180, 0x90000440102220},
	{0x4804080104a4000, 0x2040012381001282},
	{0x60202a081400000, 0x8804008142e90810},
	{0x400a0c4040000000, 0x4000005288008460},
	{0x1600046000284400, 0x801021809100408},
	{0xc800000422248286, 0x9000004026400608},
	{0x1240080242000548, 0x8000242012d},
	{0x600008000408000, 0x40006002210044},
	{0x600008000408000, 0x40006002210044},
	{0x2000022000020, 0x200008408189},
	{0x2000022000020, 0x200008408189},
	{0x4080424482000080, 0x1208010040122808},
	{0x4204100000000000, 0xc00290018902002},
	{0x1154005000013100, 0x2002000080082001},
	{0x6018410002308020, 0x50682c125125402},
	{0xa9cc00150a080410, 0x440c400000015800},
	{0x2000080040100500, 0x440400044c00},
	{0x2000080040100500, 0x440400044c00},
	{0x8804501401000108, 0x70000221504231},
	{0x24c2000001000000, 0x8028000400002000},
	{0x242031008001000, 0x802008004009005},
	{0x9203008100100013, 0x800000000300482},
	{0x84820010000000, 0x2002001888002442},
	{0x684000202310040, 0xa005400041404c8},
	{0x34444800000000, 0x1001440101010c},
	{0x211000002c0800, 0x30000020041},
	{0x4810a00000020000, 0x800704010804022},
	{0x208402410204220, 0xc00a810014000512},
	{0x24500444001400, 0x2082000900000108},
	{0x8002110011010809, 0x8040002000409004},
	{0x1004404404480000, 0xc200005410002},
	{0x80a201840802080, 0x268502400100021},
	{0x2901310038803052, 0xb080420104000502},
	{0x6602a44001811000, 0x80800000000000},
	{0x41804a020060c540, 0xa00004085400000a},
	{0xc40a682004014006, 0x852620805c000a},
	{0x800044801090460, 0x840204000026},
	{0x800044801090460, 0x840204000026},
	{0x220891004810800, 0x8400140000018},
	{0x220891004810800, 0x8400140000018},
	{0x263410200040040, 0x180202001008},
	{0x17600a208008084, 0x8044001000000},
	{0xeec00000020220, 0x10000020010},
	{0x61801124000088, 0x182400000081100},
	{0x4032402000500400, 0x108084604040181},
	{0x2126413000200014, 0x20000040018a404},
	{0x400c58201000a800, 0x10018000004},
	{0xc65940000c4000, 0x102200440200},
	{0x2103130220180000, 0x9018511020008110},
	{0xc65940000c4000, 0x102200440200},
	{0x15f8040a04004, 0x1000002048040400},
}

