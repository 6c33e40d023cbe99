package bn254

import (
	"bytes"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func randGoBig(limit *big.Int) *big.Int {
	b, err := rand.Int(rand.Reader, limit)
	if err != nil {
		panic(err)
	}
	return b
}

func TestBIGSerialization(t *testing.T) {
	// the prime minus one survives a decode/encode round trip bit-exactly
	in := fromHex(MODBYTES, "0x2523648240000001ba344d80000000086121000000000013a700000000000012")
	b := FromBytes(in)
	var out [MODBYTES]byte
	b.ToBytes(out[:])
	require.Equal(t, in, out[:])

	for i := 0; i < 100; i++ {
		v := randGoBig(goModulus)
		bb := goBigToBIG(v)
		if bigToGoBig(bb).Cmp(v) != 0 {
			t.Fatal("byte round trip failed")
		}
	}
}

func TestBIGArithmetic(t *testing.T) {
	for i := 0; i < 200; i++ {
		av := randGoBig(goModulus)
		bv := randGoBig(goModulus)
		a, b := goBigToBIG(av), goBigToBIG(bv)

		// add
		s := NewBIGcopy(a)
		s.add(b)
		s.norm()
		want := new(big.Int).Add(av, bv)
		d := NewDBIGscopy(s)
		if bigToGoBig(d.mod(NewBIGints(Modulus))).Cmp(new(big.Int).Mod(want, goModulus)) != 0 {
			t.Fatal("add mismatch")
		}

		// sub with norm fixing borrows
		if av.Cmp(bv) >= 0 {
			s.copy(a)
			s.sub(b)
			s.norm()
			if bigToGoBig(s).Cmp(new(big.Int).Sub(av, bv)) != 0 {
				t.Fatal("sub mismatch")
			}
		}

		// mul into DBIG, reduced mod p
		p := NewBIGints(Modulus)
		m := mul(a, b)
		got := bigToGoBig(m.mod(p))
		want.Mul(av, bv).Mod(want, goModulus)
		if got.Cmp(want) != 0 {
			t.Fatal("mul/dmod mismatch")
		}

		// DBIG div
		m = mul(a, b)
		q := m.div(p)
		want.Mul(av, bv).Div(want, goModulus)
		if bigToGoBig(q).Cmp(want) != 0 {
			t.Fatal("ddiv mismatch")
		}
	}
}

func TestBIGModDiv(t *testing.T) {
	p := NewBIGints(Modulus)
	for i := 0; i < 100; i++ {
		v := randGoBig(new(big.Int).Lsh(goModulus, 2))
		a := NewBIG()
		for _, by := range v.Bytes() {
			a.fshl(8)
			a.w[0] += Chunk(by)
		}
		r := NewBIGcopy(a)
		r.Mod(p)
		if bigToGoBig(r).Cmp(new(big.Int).Mod(v, goModulus)) != 0 {
			t.Fatal("Mod mismatch")
		}
		q := NewBIGcopy(a)
		q.div(p)
		if bigToGoBig(q).Cmp(new(big.Int).Div(v, goModulus)) != 0 {
			t.Fatal("div mismatch")
		}
	}
}

func TestBIGInvmodp(t *testing.T) {
	p := NewBIGints(Modulus)
	for i := 0; i < 50; i++ {
		av := randGoBig(goModulus)
		if av.Sign() == 0 {
			continue
		}
		a := goBigToBIG(av)
		a.Invmodp(p)
		want := new(big.Int).ModInverse(av, goModulus)
		if bigToGoBig(a).Cmp(want) != 0 {
			t.Fatal("invmodp mismatch")
		}
	}
}

func TestBIGJacobi(t *testing.T) {
	p := NewBIGints(Modulus)
	for i := 0; i < 50; i++ {
		av := randGoBig(goModulus)
		a := goBigToBIG(av)
		want := big.Jacobi(av, goModulus)
		if a.Jacobi(p) != want {
			t.Fatal("jacobi mismatch")
		}
	}
}

func TestBIGShifts(t *testing.T) {
	for i := 0; i < 100; i++ {
		av := randGoBig(goModulus)
		a := goBigToBIG(av)
		k := uint(1 + i%55)
		b := NewBIGcopy(a)
		b.shr(k)
		if bigToGoBig(b).Cmp(new(big.Int).Rsh(av, k)) != 0 {
			t.Fatal("shr mismatch")
		}
		b.copy(a)
		b.fshr(k % BASEBITS)
		if bigToGoBig(b).Cmp(new(big.Int).Rsh(av, k%BASEBITS)) != 0 {
			t.Fatal("fshr mismatch")
		}
	}
}

func TestBIGCswap(t *testing.T) {
	a := bigFromHex("0x01")
	b := bigFromHex("0x02")
	a0, b0 := NewBIGcopy(a), NewBIGcopy(b)
	a.cswap(b, 0)
	if Comp(a, a0) != 0 || Comp(b, b0) != 0 {
		t.Fatal("cswap with d=0 moved")
	}
	a.cswap(b, 1)
	if Comp(a, b0) != 0 || Comp(b, a0) != 0 {
		t.Fatal("cswap with d=1 did not swap")
	}
	a.cmove(b, 1)
	if Comp(a, b) != 0 {
		t.Fatal("cmove with d=1 did not move")
	}
}

func TestRandomnumRange(t *testing.T) {
	q := NewBIGints(CURVE_Order)
	for i := 0; i < 20; i++ {
		s, err := Randomnum(q, rand.Reader)
		require.NoError(t, err)
		if Comp(s, q) >= 0 {
			t.Fatal("random scalar out of range")
		}
	}
}

func TestBIGBytesOverflowRejected(t *testing.T) {
	// values >= p decode as BIGs but are rejected at the point layer
	var raw [2*MODBYTES + 1]byte
	raw[0] = 0x04
	p := NewBIGints(Modulus)
	p.ToBytes(raw[1 : MODBYTES+1])
	g := ECP_generator()
	g.GetY().ToBytes(raw[MODBYTES+1:])
	P := ECP_fromBytes(raw[:])
	if !P.Is_infinity() {
		t.Fatal("x = p must decode to infinity")
	}
	if !bytes.Equal(raw[1:MODBYTES+1], fromHex(MODBYTES, "0x2523648240000001ba344d80000000086121000000000013a700000000000013")) {
		t.Fatal("modulus encoding mismatch")
	}
}
