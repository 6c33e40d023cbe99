// Package bn254 implements the Optimal Ate pairing over the 254-bit
// Barreto-Naehrig curve with embedding degree 12, together with scalar
// multiplication in G1, G2 and exponentiation in GT.
//
// The curve is y^2 = x^3 + 2 over F_p with G2 on the sextic D-type twist
// y^2 = x^3 + 2/(1+i) over F_p2. All parameters derive from the BN
// generator x = -(2^62 + 2^55 + 1):
//
//	p = 36x^4 + 36x^3 + 24x^2 + 6x + 1
//	r = 36x^4 + 36x^3 + 18x^2 + 6x + 1
//	t = 6x^2 + 1
package bn254

// Chunk is the machine word carrying one limb. Limbs are signed so that
// lazy subtraction leaves sign-extended borrows for norm to fix up.
type Chunk = int64

const (
	// BIG layout
	MODBYTES int   = 32
	BASEBITS uint  = 56
	NLEN     int   = 5
	DNLEN    int   = 2 * NLEN
	BMASK    Chunk = (Chunk(1) << BASEBITS) - 1
	HBITS    uint  = BASEBITS / 2
	HMASK    Chunk = (Chunk(1) << HBITS) - 1
	NEXCESS  int   = 1 << (64 - BASEBITS - 1)
	BIGBITS  int   = 8 * MODBYTES

	// Field layout
	MODBITS uint  = 254
	TBITS   uint  = MODBITS % BASEBITS
	TMASK   Chunk = (Chunk(1) << TBITS) - 1
	FEXCESS int32 = (int32(1) << 24) - 1

	// Pairing configuration
	CURVE_B_I int = 2
	ATE_BITS  int = 66

	// Sparsity tags for FP12 elements
	FP_ZERO    int = 0
	FP_ONE     int = 1
	FP_SPARSER int = 2
	FP_SPARSE  int = 3
	FP_DENSE   int = 4

	// Policy flags
	USE_GLV   bool = true
	USE_GS_G2 bool = true
	USE_GS_GT bool = true
	GT_STRONG bool = false
)

/*
	ROM

 p = 0x2523648240000001BA344D80000000086121000000000013A700000000000013
 r = 0x2523648240000001BA344D8000000007FF9F800000000010A10000000000000D
*/

// Modulus = p
var Modulus = [NLEN]Chunk{0x13, 0x13A7, 0x80000000086121, 0x40000001BA344D, 0x25236482}

// R2modp = (2^280)^2 mod p
var R2modp = [NLEN]Chunk{0x2F2A96FF5E7E39, 0x64E8642B96F13C, 0x9926F7B00C7146, 0x8321E7B4DACD24, 0x1D127A2E}

// MConst = -p^(-1) mod 2^56
const MConst Chunk = 0x435E50D79435E5

// Fra + i*Frb = (1+i)^((p-1)/6), the twist Frobenius constant
var Fra = [NLEN]Chunk{0x7DE6C06F2A6DE9, 0x74924D3F77C2E1, 0x50A846953F8509, 0x212E7C8CB6499B, 0x1B377619}
var Frb = [NLEN]Chunk{0x82193F90D5922A, 0x8B6DB2C08850C5, 0x2F57B96AC8DC17, 0x1ED1837503EAB2, 0x9EBEE69}

// CURVE_Order = r
var CURVE_Order = [NLEN]Chunk{0xD, 0x800000000010A1, 0x8000000007FF9F, 0x40000001BA344D, 0x25236482}

// CURVE_B = 2
var CURVE_B = [NLEN]Chunk{0x2, 0x0, 0x0, 0x0, 0x0}

// G1 generator (-1, 1)
var CURVE_Gx = [NLEN]Chunk{0x12, 0x13A7, 0x80000000086121, 0x40000001BA344D, 0x25236482}
var CURVE_Gy = [NLEN]Chunk{0x1, 0x0, 0x0, 0x0, 0x0}

// CURVE_Bnx = |x|; the sign is folded into the pairing code (x < 0)
var CURVE_Bnx = [NLEN]Chunk{0x80000000000001, 0x40, 0x0, 0x0, 0x0}

// CURVE_Cof: G1 cofactor is 1
var CURVE_Cof = [NLEN]Chunk{0x1, 0x0, 0x0, 0x0, 0x0}

// CRu: cube root of unity for the G1 endomorphism (x,y) -> (CRu*x, y),
// paired with the eigenvalue 36x^3 + 18x^2 + 6x + 1 mod r
var CRu = [NLEN]Chunk{0x8000000000000B, 0xCD9, 0x40000000061818, 0x400000017080EB, 0x25236482}

// G2 generator
var CURVE_Pxa = [NLEN]Chunk{0xEE4224C803FB2B, 0x8BBB4898BF0D91, 0x7E8C61EDB6A464, 0x519EB62FEB8D8C, 0x61A10BB}
var CURVE_Pxb = [NLEN]Chunk{0x8C34C1E7D54CF3, 0x746BAE3784B70D, 0x8C5982AA5B1F4D, 0xBA737833310AA7, 0x516AAF9}
var CURVE_Pya = [NLEN]Chunk{0xF0E07891CD2B9A, 0xAE6BDBE09BD19, 0x96698C822329BD, 0x6BAF93439A90E0, 0x21897A0}
var CURVE_Pyb = [NLEN]Chunk{0x2D1AEC6B3ACE9B, 0x6FFD739C9578A, 0x56F5F38D37B090, 0x7C8B15268F6D44, 0xEBB2B0E}

/*
 GLV decomposition tables. CURVE_SB rows span the lattice
 {(a,b) : a + b*lambda = 0 mod r} with determinant r:

	(6x^2+4x+1, 2x+1), (-(2x+1), 6x^2+2x)

 CURVE_W holds the Babai dual numerators |6x^2+2x|, |2x+1|.
*/
var CURVE_W = [2][NLEN]Chunk{
	{0x4, 0x80000000000285, 0x6181, 0x0, 0x0},
	{0x1, 0x81, 0x0, 0x0, 0x0},
}
var CURVE_SB = [2][2][NLEN]Chunk{
	{
		{0x3, 0x80000000000204, 0x6181, 0x0, 0x0},
		{0xC, 0x80000000001020, 0x8000000007FF9F, 0x40000001BA344D, 0x25236482},
	},
	{
		{0x1, 0x81, 0x0, 0x0, 0x0},
		{0x4, 0x80000000000285, 0x6181, 0x0, 0x0},
	},
}

/*
 Galbraith-Scott tables: rows of CURVE_BB span
 {(a0..a3) : a0 + a1*u + a2*u^2 + a3*u^3 = 0 mod r} with u = 6x^2 = p mod r,
 reduced so every row entry fits 64 bits; CURVE_WB are the matching dual
 numerators. Negative entries are stored mod r.
*/
var CURVE_WB = [4][NLEN]Chunk{
	{0x2, 0x204, 0xC000000000C303, 0x189120, 0x0},
	{0x6, 0x8000000000060C, 0x8000000001E787, 0x312241, 0x0},
	{0x1, 0x81, 0x0, 0x0, 0x0},
	{0x80000000000005, 0x80000000000448, 0xC0000000012484, 0x189120, 0x0},
}
var CURVE_BB = [4][4][NLEN]Chunk{
	{
		{0x1, 0x81, 0x0, 0x0, 0x0},
		{0x0, 0x0, 0x0, 0x0, 0x0},
		{0x2, 0x81, 0x0, 0x0, 0x0},
		{0xC, 0x800000000010A1, 0x8000000007FF9F, 0x40000001BA344D, 0x25236482},
	},
	{
		{0x1, 0x81, 0x0, 0x0, 0x0},
		{0x8000000000000C, 0x80000000001060, 0x8000000007FF9F, 0x40000001BA344D, 0x25236482},
		{0x8000000000000D, 0x80000000001060, 0x8000000007FF9F, 0x40000001BA344D, 0x25236482},
		{0x8000000000000C, 0x80000000001060, 0x8000000007FF9F, 0x40000001BA344D, 0x25236482},
	},
	{
		{0x80000000000000, 0x40, 0x0, 0x0, 0x0},
		{0x80000000000001, 0x40, 0x0, 0x0, 0x0},
		{0x80000000000001, 0x40, 0x0, 0x0, 0x0},
		{0xB, 0x80000000001020, 0x8000000007FF9F, 0x40000001BA344D, 0x25236482},
	},
	{
		{0x1, 0x0, 0x0, 0x0, 0x0},
		{0x1, 0x81, 0x0, 0x0, 0x0},
		{0xC, 0x800000000010A1, 0x8000000007FF9F, 0x40000001BA344D, 0x25236482},
		{0x2, 0x81, 0x0, 0x0, 0x0},
	},
}
