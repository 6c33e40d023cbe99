package bn254

import (
	"testing"
)

func randG2() *ECP2 {
	return G2mul(ECP2_generator(), randScalar())
}

func TestG2GeneratorOnTwist(t *testing.T) {
	G := ECP2_generator()
	if G.Is_infinity() {
		t.Fatal("generator rejected by twist check")
	}
	if !G2member(G) {
		t.Fatal("generator fails membership")
	}
}

func TestG2CurveLaws(t *testing.T) {
	G := ECP2_generator()

	d := NewECP2()
	d.Copy(G)
	d.dbl()
	a := NewECP2()
	a.Copy(G)
	a.Add(G)
	if !d.Equals(a) {
		t.Fatal("P+P != dbl(P)")
	}

	n := NewECP2()
	n.Copy(G)
	n.neg()
	s := NewECP2()
	s.Copy(G)
	s.Add(n)
	if !s.Is_infinity() {
		t.Fatal("P + (-P) != infinity")
	}

	q := NewBIGints(CURVE_Order)
	na := randScalar()
	mb := randScalar()
	s1 := G.mul(na)
	s2 := G.mul(mb)
	s1.Add(s2)
	sum := Modadd(na, mb, q)
	s3 := G.mul(sum)
	if !s1.Equals(s3) {
		t.Fatal("n*P + m*P != (n+m)*P")
	}
}

func TestG2MulOrder(t *testing.T) {
	q := NewBIGints(CURVE_Order)
	inf := ECP2_generator().mul(q)
	if !inf.Is_infinity() {
		t.Fatal("order*G != infinity")
	}
	inf = G2mul(ECP2_generator(), q)
	if !inf.Is_infinity() {
		t.Fatal("GS order*G != infinity")
	}
}

func TestG2MulAgainstGS(t *testing.T) {
	for i := 0; i < 5; i++ {
		e := randScalar()
		P := ECP2_generator()
		w := P.mul(e)
		g := G2mul(P, e)
		if !w.Equals(g) {
			t.Fatal("windowed mul and GS mul disagree")
		}
	}
}

func TestG2Frobenius(t *testing.T) {
	// frob realizes multiplication by p on the r-torsion
	f := NewFP2bigs(NewBIGints(Fra), NewBIGints(Frb))
	pmodr := NewBIGints(Modulus)
	pmodr.Mod(NewBIGints(CURVE_Order))

	P := ECP2_generator()
	F := NewECP2()
	F.Copy(P)
	F.frob(f)
	W := P.mul(pmodr)
	if !F.Equals(W) {
		t.Fatal("frob != [p] on G2")
	}
}

func TestG2Serialization(t *testing.T) {
	for i := 0; i < 10; i++ {
		P := randG2()
		var buf [4 * MODBYTES]byte
		P.ToBytes(buf[:])
		Q := ECP2_fromBytes(buf[:])
		if !P.Equals(Q) {
			t.Fatal("G2 byte round trip failed")
		}
	}
}

func TestG2DeserializeRejects(t *testing.T) {
	P := randG2()
	var buf [4 * MODBYTES]byte
	P.ToBytes(buf[:])
	buf[4*MODBYTES-1] ^= 1
	Q := ECP2_fromBytes(buf[:])
	if !Q.Is_infinity() {
		t.Fatal("off-twist bytes must decode to infinity")
	}
}

func TestG2MulZeroAndInfinity(t *testing.T) {
	P := randG2()
	z := P.mul(NewBIG())
	if !z.Is_infinity() {
		t.Fatal("0*P != infinity")
	}
	inf := NewECP2()
	w := inf.mul(randScalar())
	if !w.Is_infinity() {
		t.Fatal("e*infinity != infinity")
	}
}

func TestG2YRecovery(t *testing.T) {
	P := randG2()
	X := P.GetX()
	Q := NewECP2fp2(X)
	nQ := NewECP2()
	nQ.Copy(Q)
	nQ.neg()
	if !P.Equals(Q) && !P.Equals(nQ) {
		t.Fatal("x does not recover the point up to sign")
	}
}
