package bn254

import (
	"testing"
)

func TestPairingExpected(t *testing.T) {
	P := ECP2_generator()
	Q := ECP_generator()
	r := Fexp(Ate(P, Q))

	expected := FP12_fromBytes(fromHex(
		MODBYTES,
		"0x0d8a793b0defaef46557b6694e97514cc17a5ef2a410a979113e53d0644f9a5a",
		"0x1ff35a6f3bd5e17c32b319111480f860b6572335300a6f07eec69fc89a586be7",
		"0x17224135a9a5fb3989c3f4e890c01ff14c2f25bc365500e6cfa5beacf99c030b",
		"0x1e3fabd61be8363430f4b6a50ef66f4dbde24fd135bfbbce2e3e515d6f382bd5",
		"0x02984d9eb6e0fb0e6254c036c9f110c4eda9d0b47873483634e36219ef6d3667",
		"0x21bb4de1e9efc68028a58dd3b3677400c6a4edbb321a49b2554a3d94af7049ee",
		"0x11a0963c0701d5089ae418ebe84a5a97b24089c688eb91a931068a7f91db9339",
		"0x20b7dc228dd3a27f9589fae17d352de2f2a1076ff56eb716026708945f53afcf",
		"0x221fc0405a912aa6a474d891868725ff1a821017264e02f74021107f3e32775a",
		"0x1c0c4fae54227be18b16acbc49dda4c3faafe051ea945152ad8a9bb4f5e734df",
		"0x237331610f44927d30add64ca35c4d4c6dd776bb212d6eb6da29bdbdb95408f2",
		"0x23bc485aa8a38dfabb7dcb49caed2e12b5b7cdffc35f6e41bdab5df1d54d51d8",
	))
	if !r.Equals(expected) {
		t.Fatal("pairing of the generators does not match the fixed vector")
	}
	if !GTmember(r) {
		t.Fatal("pairing result is not in GT")
	}
}

func TestPairingNonDegeneracy(t *testing.T) {
	P := ECP2_generator()
	Q := ECP_generator()
	e := Fexp(Ate(P, Q))
	if e.Isunity() {
		t.Fatal("e(P1, Q1) must not be one")
	}
	// infinity on either side pairs to one
	e = Fexp(Ate(P, NewECP()))
	if !e.Isunity() {
		t.Fatal("e(P1, 0) must be one")
	}
	e = Fexp(Ate(NewECP2(), Q))
	if !e.Isunity() {
		t.Fatal("e(0, Q1) must be one")
	}
}

func TestPairingFixedPoint(t *testing.T) {
	// the pairing output has order dividing r
	P := ECP2_generator()
	Q := ECP_generator()
	e := Fexp(Ate(P, Q))
	q := NewBIGints(CURVE_Order)
	if !GTpow(e, q).Isunity() {
		t.Fatal("e^r != 1")
	}
}

func TestPairingBilinearitySmall(t *testing.T) {
	// scenario A: k = 7 both sides, and as a GT exponent
	P := ECP2_generator()
	Q := ECP_generator()
	k := NewBIGint(7)

	e1 := Fexp(Ate(P, Q))
	lhs := Fexp(Ate(G2mul(P, k), Q))
	rhs := Fexp(Ate(P, G1mul(Q, k)))
	if !lhs.Equals(rhs) {
		t.Fatal("e(7P, Q) != e(P, 7Q)")
	}
	if !lhs.Equals(GTpow(e1, k)) {
		t.Fatal("e(7P, Q) != e(P, Q)^7")
	}

	// scenario B: a = 3, b = 5 gives e(P,Q)^15
	a := NewBIGint(3)
	b := NewBIGint(5)
	lhs = Fexp(Ate(G2mul(P, a), G1mul(Q, b)))
	if !lhs.Equals(GTpow(e1, NewBIGint(15))) {
		t.Fatal("e(3P, 5Q) != e(P, Q)^15")
	}
}

func TestPairingBilinearityRandom(t *testing.T) {
	P := ECP2_generator()
	Q := ECP_generator()
	q := NewBIGints(CURVE_Order)
	a := randScalar()
	b := randScalar()

	lhs := Fexp(Ate(G2mul(P, a), G1mul(Q, b)))
	rhs := Fexp(Ate(G2mul(P, b), G1mul(Q, a)))
	if !lhs.Equals(rhs) {
		t.Fatal("e(aP, bQ) != e(bP, aQ)")
	}
	ab := Modmul(a, b, q)
	if !lhs.Equals(GTpow(Fexp(Ate(P, Q)), ab)) {
		t.Fatal("e(aP, bQ) != e(P, Q)^(ab)")
	}
}

func TestPairingAdditivity(t *testing.T) {
	// e(P+P', Q) == e(P, Q) * e(P', Q)
	P := randG2()
	P2 := randG2()
	Q := randG1()

	S := NewECP2()
	S.Copy(P)
	S.Add(P2)
	lhs := Fexp(Ate(S, Q))
	r1 := Fexp(Ate(P, Q))
	r2 := Fexp(Ate(P2, Q))
	r1.Mul(r2)
	if !lhs.Equals(r1) {
		t.Fatal("pairing is not additive in G2")
	}
}

func TestAte2AgainstAte(t *testing.T) {
	P := randG2()
	Q := randG1()
	R := randG2()
	S := randG1()

	// e(P,Q)*e(R,S) via the interleaved loop
	both := Fexp(Ate2(P, Q, R, S))
	sep := Fexp(Ate(P, Q))
	sep2 := Fexp(Ate(R, S))
	sep.Mul(sep2)
	if !both.Equals(sep) {
		t.Fatal("Ate2 disagrees with the product of single pairings")
	}

	// scenario E: ate2(P,Q,P,Q) is the square of ate(P,Q)
	sq := Fexp(Ate2(P, Q, P, Q))
	single := Fexp(Ate(P, Q))
	single.usqr()
	if !sq.Equals(single) {
		t.Fatal("Ate2(P,Q,P,Q) != Ate(P,Q)^2")
	}

	// infinity handling collapses to the single pairing
	w := Fexp(Ate2(P, Q, R, NewECP()))
	if !w.Equals(Fexp(Ate(P, Q))) {
		t.Fatal("Ate2 with an infinite pair != Ate")
	}
}

func TestMultiPairing(t *testing.T) {
	P := randG2()
	Q := randG1()
	R := randG2()
	S := randG1()

	r := Initmp()
	Another(r, P, Q)
	Another(r, R, S)
	both := Fexp(Miller(r))

	sep := Fexp(Ate2(P, Q, R, S))
	if !both.Equals(sep) {
		t.Fatal("multi-pairing disagrees with Ate2")
	}
}

func TestMultiPairingPrecomp(t *testing.T) {
	P := randG2()
	Q := randG1()

	T := precomp(P)
	r := Initmp()
	Another_pc(r, T, Q)
	got := Fexp(Miller(r))

	want := Fexp(Ate(P, Q))
	if !got.Equals(want) {
		t.Fatal("precomputed lines disagree with the direct Miller loop")
	}
}

func TestGTpowAgainstPow(t *testing.T) {
	g := randGT()
	e := randScalar()
	if !GTpow(g, e).Equals(g.Pow(e)) {
		t.Fatal("GS exponentiation disagrees with plain Pow")
	}
}

func TestGLVDecomposition(t *testing.T) {
	// u0 + u1*lambda == e mod r, with halves far shorter than e
	q := NewBIGints(CURVE_Order)
	lambda := bigFromHex("0x252364824000000126cd8900000000024908fffffffffffcf9fffffffffffff6")
	for i := 0; i < 10; i++ {
		e := randScalar()
		u := glv(e)
		lhs := Modadd(u[0], Modmul(u[1], lambda, q), q)
		if Comp(lhs, Modadd(e, NewBIG(), q)) != 0 {
			t.Fatal("glv parts do not recombine")
		}
		for j := 0; j < 2; j++ {
			n := u[j].nbits()
			m := Modneg(u[j], q).nbits()
			if n > 130 && m > 130 {
				t.Fatal("glv part too long")
			}
		}
	}
}

func TestGSDecomposition(t *testing.T) {
	// sum u_i * (p mod r)^i == e mod r, quarters short
	q := NewBIGints(CURVE_Order)
	mu := NewBIGints(Modulus)
	mu.Mod(q)
	for i := 0; i < 10; i++ {
		e := randScalar()
		u := gs(e)
		lhs := NewBIG()
		pw := NewBIGint(1)
		for j := 0; j < 4; j++ {
			lhs.copy(Modadd(lhs, Modmul(u[j], pw, q), q))
			pw.copy(Modmul(pw, mu, q))
		}
		if Comp(lhs, Modadd(e, NewBIG(), q)) != 0 {
			t.Fatal("gs parts do not recombine")
		}
		for j := 0; j < 4; j++ {
			n := u[j].nbits()
			m := Modneg(u[j], q).nbits()
			if n > 70 && m > 70 {
				t.Fatal("gs part too long")
			}
		}
	}
}

func TestGTmember(t *testing.T) {
	if !GTmember(randGT()) {
		t.Fatal("pairing output fails GT membership")
	}
	if GTmember(NewFP12int(1)) {
		t.Fatal("one must not be a member")
	}
	// a Miller output without final exponentiation is (overwhelmingly) not
	// in GT
	raw := Ate(ECP2_generator(), ECP_generator())
	if GTmember(raw) {
		t.Fatal("unexponentiated Miller value accepted")
	}
}

func BenchmarkAte(b *testing.B) {
	P := ECP2_generator()
	Q := ECP_generator()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Ate(P, Q)
	}
}

func BenchmarkFexp(b *testing.B) {
	m := Ate(ECP2_generator(), ECP_generator())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Fexp(m)
	}
}

func BenchmarkG1Mul(b *testing.B) {
	P := ECP_generator()
	e := randScalar()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		G1mul(P, e)
	}
}

func BenchmarkG2Mul(b *testing.B) {
	P := ECP2_generator()
	e := randScalar()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		G2mul(P, e)
	}
}

func BenchmarkGTPow(b *testing.B) {
	g := Fexp(Ate(ECP2_generator(), ECP_generator()))
	e := randScalar()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GTpow(g, e)
	}
}
