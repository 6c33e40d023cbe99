package bn254

import (
	"testing"
)

func TestFP12Laws(t *testing.T) {
	for i := 0; i < 20; i++ {
		a, b := randFP12(), randFP12()

		ab := NewFP12copy(a)
		ab.Mul(b)
		ba := NewFP12copy(b)
		ba.Mul(a)
		if !ab.Equals(ba) {
			t.Fatal("a*b != b*a")
		}

		s := NewFP12copy(a)
		s.sqr()
		m := NewFP12copy(a)
		m.Mul(a)
		if !s.Equals(m) {
			t.Fatal("sqr != mul self")
		}
	}
}

func TestFP12Inverse(t *testing.T) {
	one := NewFP12int(1)
	for i := 0; i < 20; i++ {
		a := randFP12()
		ai := NewFP12copy(a)
		ai.Inverse()
		ai.Mul(a)
		if !ai.Equals(one) {
			t.Fatal("a * a^-1 != 1")
		}
	}
}

func TestFP12UnitarySquaring(t *testing.T) {
	// on the cyclotomic subgroup usqr must agree with sqr, and conj is the
	// inverse
	one := NewFP12int(1)
	for i := 0; i < 10; i++ {
		g := randGT()
		u := NewFP12copy(g)
		u.usqr()
		s := NewFP12copy(g)
		s.sqr()
		if !u.Equals(s) {
			t.Fatal("usqr != sqr on cyclotomic subgroup")
		}
		c := NewFP12copy(g)
		c.conj()
		c.Mul(g)
		if !c.Equals(one) {
			t.Fatal("conj is not the unitary inverse")
		}
	}
}

func TestFP12Frobenius(t *testing.T) {
	// frob(g) == g^p for g of order r (p reduced mod r)
	f := NewFP2bigs(NewBIGints(Fra), NewBIGints(Frb))
	pmodr := NewBIGints(Modulus)
	pmodr.Mod(NewBIGints(CURVE_Order))
	g := randGT()
	fr := NewFP12copy(g)
	fr.frob(f)
	pw := g.Pow(pmodr)
	if !fr.Equals(pw) {
		t.Fatal("frob != ^p on GT")
	}
}

func TestFP12PowLaws(t *testing.T) {
	g := randGT()
	a := randScalar()
	b := randScalar()
	q := NewBIGints(CURVE_Order)

	ga := g.Pow(a)
	gab := ga.Pow(b)
	ab := Modmul(a, b, q)
	gab2 := g.Pow(ab)
	if !gab.Equals(gab2) {
		t.Fatal("(g^a)^b != g^(ab)")
	}
}

func TestFP12SparseAgainstDense(t *testing.T) {
	// line-function products: smul and ssmul must agree with full Mul
	G := ECP2_generator()
	P := ECP_generator()
	Qx := NewFPcopy(P.getx())
	Qy := NewFPcopy(P.gety())

	A := NewECP2()
	A.Copy(G)
	l1 := line(A, A, Qx, Qy)
	l2 := line(A, G, Qx, Qy)

	ref := NewFP12copy(l1)
	ref.Mul(l2)

	sp := NewFP12copy(l1)
	sp.smul(l2)
	if !sp.Equals(ref) {
		t.Fatal("smul disagrees with Mul")
	}

	// dense * sparser
	d := randFP12()
	dd := NewFP12copy(d)
	ddRef := NewFP12copy(d)
	l1d := NewFP12copy(l1)
	l1d.stype = FP_DENSE
	ddRef.Mul(l1d)
	dd.ssmul(l1)
	if !dd.Equals(ddRef) {
		t.Fatal("ssmul(dense,sparser) disagrees with Mul")
	}

	// dense * sparse
	ds := NewFP12copy(d)
	dsRef := NewFP12copy(d)
	spd := NewFP12copy(sp)
	spd.stype = FP_DENSE
	dsRef.Mul(spd)
	ds.ssmul(sp)
	if !ds.Equals(dsRef) {
		t.Fatal("ssmul(dense,sparse) disagrees with Mul")
	}
}

func TestFP12SerializationRoundTrip(t *testing.T) {
	for i := 0; i < 10; i++ {
		a := randGT()
		var buf [12 * MODBYTES]byte
		a.ToBytes(buf[:])
		b := FP12_fromBytes(buf[:])
		if !a.Equals(b) {
			t.Fatal("FP12 byte round trip failed")
		}
	}
}

func TestFP12Trace(t *testing.T) {
	g := randFP12()
	tr := g.trace()
	want := NewFP4copy(g.geta())
	want.imul(3)
	want.reduce()
	if !tr.Equals(want) {
		t.Fatal("trace != 3*a")
	}
}

func TestXTRIdentities(t *testing.T) {
	// trace(m^2) == xtr_D(trace(m)) on the cyclotomic subgroup
	m := randGT()
	c := m.trace()
	c.xtr_D()
	m2 := NewFP12copy(m)
	m2.usqr()
	c2 := m2.trace()
	if !c.Equals(c2) {
		t.Fatal("xtr_D does not square the trace")
	}
}

func TestXTRPow(t *testing.T) {
	m := randGT()
	n := randScalar()
	c := m.trace()
	got := c.xtr_pow(n)
	want := GTpow(m, n).trace()
	if !got.Equals(want) {
		t.Fatal("xtr_pow disagrees with GTpow trace")
	}
}

func TestCompow(t *testing.T) {
	// Compow computes the trace of g^e for g of order r
	g := randGT()
	e := randScalar()
	r := NewBIGints(CURVE_Order)
	c := g.Compow(e, r)
	want := GTpow(g, e).trace()
	if !c.Equals(want) {
		t.Fatal("Compow disagrees with GTpow trace")
	}
}

func TestFP12Pinpow(t *testing.T) {
	g := randGT()
	w := NewFP12copy(g)
	w.pinpow(13, 4)
	want := GTpow(g, NewBIGint(13))
	if !w.Equals(want) {
		t.Fatal("pinpow(13) != ^13")
	}
}
