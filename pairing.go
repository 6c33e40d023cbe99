package bn254

// Optimal Ate pairing over BN254. The Miller loop runs over n = 6u+2
// (u = -CURVE_Bnx here, so |n| = 6*Bnx - 2) using the 3n/n NAF trick, with
// the R-ate fixup appended for the BN family.

// dbl_line doubles A for the pairing, returning the line coefficients.
func dbl_line(A *ECP2, AA *FP2, BB *FP2, CC *FP2) {
	CC.copy(A.getx())
	YY := NewFP2copy(A.gety())
	BB.copy(A.getz())
	AA.copy(YY)

	AA.mul(BB)
	CC.sqr()
	YY.sqr()
	BB.sqr()

	AA.add(AA)
	AA.neg()
	AA.norm()
	AA.mul_ip()
	AA.norm()

	sb := 3 * CURVE_B_I
	BB.imul(sb)
	CC.imul(3)
	YY.mul_ip()
	YY.norm()
	CC.mul_ip()
	CC.norm()
	BB.sub(YY)
	BB.norm()

	A.dbl()
}

// add_line adds B into A for the pairing, returning the line coefficients.
func add_line(A *ECP2, B *ECP2, AA *FP2, BB *FP2, CC *FP2) {
	AA.copy(A.getx())
	CC.copy(A.gety())
	T1 := NewFP2copy(A.getz())
	BB.copy(A.getz())

	T1.mul(B.gety())
	BB.mul(B.getx())

	AA.sub(BB)
	AA.norm()
	CC.sub(T1)
	CC.norm()

	T1.copy(AA)
	T1.mul(B.gety())

	BB.copy(CC)
	BB.mul(B.getx())
	BB.sub(T1)
	BB.norm()
	CC.neg()
	CC.norm()

	A.Add(B)
}

// line evaluates the line through A and B (or the tangent at A when
// A == B) at the G1 point (Qx, Qy), as a SPARSER FP12. A is replaced by
// A+B (or 2A).
func line(A *ECP2, B *ECP2, Qx *FP, Qy *FP) *FP12 {
	AA := NewFP2()
	BB := NewFP2()
	CC := NewFP2()

	if A == B {
		dbl_line(A, AA, BB, CC)
	} else {
		add_line(A, B, AA, BB, CC)
	}

	CC.pmul(Qx)
	AA.pmul(Qy)

	a := NewFP4fp2s(AA, BB)
	b := NewFP4fp2(CC)
	c := NewFP4()

	r := NewFP12fp4s(a, b, c)
	r.stype = FP_SPARSER
	return r
}

// lbits prepares the ate parameter n = |6u+2| and n3 = 3n, returning the
// bit length of n3.
func lbits(n3 *BIG, n *BIG) int {
	n.copy(NewBIGints(CURVE_Bnx))
	n.pmul(6)
	n.dec(2)

	n.norm()
	n3.copy(n)
	n3.pmul(3)
	n3.norm()
	return n3.nbits()
}

// Initmp allocates the per-bit accumulators for multi-pairing.
func Initmp() []*FP12 {
	var r []*FP12
	for i := ATE_BITS - 1; i >= 0; i-- {
		r = append(r, NewFP12int(1))
	}
	return r
}

// Miller performs the shared squaring sweep over accumulated line products.
func Miller(r []*FP12) *FP12 {
	res := NewFP12int(1)
	for i := ATE_BITS - 1; i >= 1; i-- {
		res.sqr()
		res.ssmul(r[i])
		r[i].zero()
	}
	res.conj()
	res.ssmul(r[0])
	r[0].zero()
	return res
}

// pack stores precomputed line coefficients as an FP4 of ratios.
func pack(AA *FP2, BB *FP2, CC *FP2) *FP4 {
	i := NewFP2copy(CC)
	i.inverse()
	a := NewFP2copy(AA)
	a.mul(i)
	b := NewFP2copy(BB)
	b.mul(i)
	return NewFP4fp2s(a, b)
}

// unpack rebuilds a line function from packed coefficients and a G1 point.
func unpack(T *FP4, Qx *FP, Qy *FP) *FP12 {
	a := NewFP4copy(T)
	a.geta().pmul(Qy)
	t := NewFP2fp(Qx)
	b := NewFP4fp2(t)
	c := NewFP4()
	v := NewFP12fp4s(a, b, c)
	v.stype = FP_SPARSER
	return v
}

// precomp walks the Miller loop once for a fixed G2 point, packing every
// line for later evaluation against G1 points.
func precomp(GV *ECP2) []*FP4 {
	n := NewBIG()
	n3 := NewBIG()
	K := NewECP2()
	AA := NewFP2()
	BB := NewFP2()
	CC := NewFP2()
	var T []*FP4

	f := NewFP2bigs(NewBIGints(Fra), NewBIGints(Frb))
	P := NewECP2()
	P.Copy(GV)
	P.Affine()

	A := NewECP2()
	A.Copy(P)
	MP := NewECP2()
	MP.Copy(P)
	MP.neg()

	nb := lbits(n3, n)

	for i := nb - 2; i >= 1; i-- {
		dbl_line(A, AA, BB, CC)
		T = append(T, pack(AA, BB, CC))
		bt := n3.bit(i) - n.bit(i)
		if bt == 1 {
			add_line(A, P, AA, BB, CC)
			T = append(T, pack(AA, BB, CC))
		}
		if bt == -1 {
			add_line(A, MP, AA, BB, CC)
			T = append(T, pack(AA, BB, CC))
		}
	}
	A.neg()
	K.Copy(P)
	K.frob(f)
	add_line(A, K, AA, BB, CC)
	T = append(T, pack(AA, BB, CC))
	K.frob(f)
	K.neg()
	add_line(A, K, AA, BB, CC)
	T = append(T, pack(AA, BB, CC))

	return T
}

// Another_pc accumulates the line functions of a precomputed G2 point
// against a fresh G1 point.
func Another_pc(r []*FP12, T []*FP4, QV *ECP) {
	n := NewBIG()
	n3 := NewBIG()
	var lv, lv2 *FP12

	if QV.Is_infinity() {
		return
	}

	Q := NewECP()
	Q.Copy(QV)
	Q.Affine()
	Qx := NewFPcopy(Q.getx())
	Qy := NewFPcopy(Q.gety())

	nb := lbits(n3, n)
	j := 0
	for i := nb - 2; i >= 1; i-- {
		lv = unpack(T[j], Qx, Qy)
		j++
		bt := n3.bit(i) - n.bit(i)
		if bt == 1 {
			lv2 = unpack(T[j], Qx, Qy)
			j++
			lv.smul(lv2)
		}
		if bt == -1 {
			lv2 = unpack(T[j], Qx, Qy)
			j++
			lv.smul(lv2)
		}
		r[i].ssmul(lv)
	}
	lv = unpack(T[j], Qx, Qy)
	j++
	lv2 = unpack(T[j], Qx, Qy)
	lv.smul(lv2)
	r[0].ssmul(lv)
}

// Another accumulates line functions for one more (P, Q) pair.
func Another(r []*FP12, P1 *ECP2, Q1 *ECP) {
	f := NewFP2bigs(NewBIGints(Fra), NewBIGints(Frb))
	n := NewBIG()
	n3 := NewBIG()
	K := NewECP2()
	var lv, lv2 *FP12

	if P1.Is_infinity() || Q1.Is_infinity() {
		return
	}

	P := NewECP2()
	P.Copy(P1)
	Q := NewECP()
	Q.Copy(Q1)

	P.Affine()
	Q.Affine()

	Qx := NewFPcopy(Q.getx())
	Qy := NewFPcopy(Q.gety())

	A := NewECP2()
	A.Copy(P)

	MP := NewECP2()
	MP.Copy(P)
	MP.neg()

	nb := lbits(n3, n)

	for i := nb - 2; i >= 1; i-- {
		lv = line(A, A, Qx, Qy)

		bt := n3.bit(i) - n.bit(i)
		if bt == 1 {
			lv2 = line(A, P, Qx, Qy)
			lv.smul(lv2)
		}
		if bt == -1 {
			lv2 = line(A, MP, Qx, Qy)
			lv.smul(lv2)
		}
		r[i].ssmul(lv)
	}

	// R-ate fixup
	A.neg()
	K.Copy(P)
	K.frob(f)
	lv = line(A, K, Qx, Qy)
	K.frob(f)
	K.neg()
	lv2 = line(A, K, Qx, Qy)
	lv.smul(lv2)
	r[0].ssmul(lv)
}

// Ate computes the Miller loop for a single pair. The result still needs
// Fexp to land in GT.
func Ate(P1 *ECP2, Q1 *ECP) *FP12 {
	f := NewFP2bigs(NewBIGints(Fra), NewBIGints(Frb))
	n := NewBIG()
	n3 := NewBIG()
	K := NewECP2()
	var lv, lv2 *FP12

	if P1.Is_infinity() || Q1.Is_infinity() {
		return NewFP12int(1)
	}

	P := NewECP2()
	P.Copy(P1)
	P.Affine()
	Q := NewECP()
	Q.Copy(Q1)
	Q.Affine()

	Qx := NewFPcopy(Q.getx())
	Qy := NewFPcopy(Q.gety())

	A := NewECP2()
	r := NewFP12int(1)

	A.Copy(P)

	NP := NewECP2()
	NP.Copy(P)
	NP.neg()

	nb := lbits(n3, n)

	for i := nb - 2; i >= 1; i-- {
		r.sqr()
		lv = line(A, A, Qx, Qy)
		bt := n3.bit(i) - n.bit(i)
		if bt == 1 {
			lv2 = line(A, P, Qx, Qy)
			lv.smul(lv2)
		}
		if bt == -1 {
			lv2 = line(A, NP, Qx, Qy)
			lv.smul(lv2)
		}
		r.ssmul(lv)
	}

	r.conj()

	// R-ate fixup
	A.neg()
	K.Copy(P)
	K.frob(f)
	lv = line(A, K, Qx, Qy)
	K.frob(f)
	K.neg()
	lv2 = line(A, K, Qx, Qy)
	lv.smul(lv2)
	r.ssmul(lv)

	return r
}

// Ate2 computes the product of two pairings e(P,Q)*e(R,S) in one
// interleaved Miller loop.
func Ate2(P1 *ECP2, Q1 *ECP, R1 *ECP2, S1 *ECP) *FP12 {
	f := NewFP2bigs(NewBIGints(Fra), NewBIGints(Frb))
	n := NewBIG()
	n3 := NewBIG()
	K := NewECP2()
	var lv, lv2 *FP12

	if P1.Is_infinity() || Q1.Is_infinity() {
		return Ate(R1, S1)
	}
	if R1.Is_infinity() || S1.Is_infinity() {
		return Ate(P1, Q1)
	}

	P := NewECP2()
	P.Copy(P1)
	P.Affine()
	Q := NewECP()
	Q.Copy(Q1)
	Q.Affine()
	R := NewECP2()
	R.Copy(R1)
	R.Affine()
	S := NewECP()
	S.Copy(S1)
	S.Affine()

	Qx := NewFPcopy(Q.getx())
	Qy := NewFPcopy(Q.gety())
	Sx := NewFPcopy(S.getx())
	Sy := NewFPcopy(S.gety())

	A := NewECP2()
	B := NewECP2()
	r := NewFP12int(1)

	A.Copy(P)
	B.Copy(R)
	NP := NewECP2()
	NP.Copy(P)
	NP.neg()
	NR := NewECP2()
	NR.Copy(R)
	NR.neg()

	nb := lbits(n3, n)

	for i := nb - 2; i >= 1; i-- {
		r.sqr()
		lv = line(A, A, Qx, Qy)
		lv2 = line(B, B, Sx, Sy)
		lv.smul(lv2)
		r.ssmul(lv)
		bt := n3.bit(i) - n.bit(i)
		if bt == 1 {
			lv = line(A, P, Qx, Qy)
			lv2 = line(B, R, Sx, Sy)
			lv.smul(lv2)
			r.ssmul(lv)
		}
		if bt == -1 {
			lv = line(A, NP, Qx, Qy)
			lv2 = line(B, NR, Sx, Sy)
			lv.smul(lv2)
			r.ssmul(lv)
		}
	}

	r.conj()

	// R-ate fixup for both pairs
	A.neg()
	B.neg()
	K.Copy(P)
	K.frob(f)

	lv = line(A, K, Qx, Qy)
	K.frob(f)
	K.neg()
	lv2 = line(A, K, Qx, Qy)
	lv.smul(lv2)
	r.ssmul(lv)
	K.Copy(R)
	K.frob(f)
	lv = line(B, K, Sx, Sy)
	K.frob(f)
	K.neg()
	lv2 = line(B, K, Sx, Sy)
	lv.smul(lv2)
	r.ssmul(lv)

	return r
}

// Fexp raises the Miller output to (p^12-1)/r, mapping it into GT.
func Fexp(m *FP12) *FP12 {
	f := NewFP2bigs(NewBIGints(Fra), NewBIGints(Frb))
	x := NewBIGints(CURVE_Bnx)
	r := NewFP12copy(m)

	// easy part: m^((p^6-1)(p^2+1))
	lv := NewFP12copy(r)
	lv.Inverse()
	r.conj()

	r.Mul(lv)
	lv.Copy(r)
	r.frob(f)
	r.frob(f)
	r.Mul(lv)

	// hard part: Devegili-Scott-Dahab addition chain for BN curves
	lv.Copy(r)
	lv.frob(f)
	x0 := NewFP12copy(lv)
	x0.frob(f)
	lv.Mul(r)
	x0.Mul(lv)
	x0.frob(f)
	x1 := NewFP12copy(r)
	x1.conj()
	x4 := r.Pow(x)

	x3 := NewFP12copy(x4)
	x3.frob(f)

	x2 := x4.Pow(x)

	x5 := NewFP12copy(x2)
	x5.conj()
	lv = x2.Pow(x)

	x2.frob(f)
	r.Copy(x2)
	r.conj()

	x4.Mul(r)
	x2.frob(f)

	r.Copy(lv)
	r.frob(f)
	lv.Mul(r)

	lv.usqr()
	lv.Mul(x4)
	lv.Mul(x5)
	r.Copy(x3)
	r.Mul(x5)
	r.Mul(lv)
	lv.Mul(x2)
	r.usqr()
	r.Mul(lv)
	r.usqr()
	lv.Copy(r)
	lv.Mul(x1)
	r.Mul(x0)
	lv.usqr()
	r.Mul(lv)
	r.reduce()
	return r
}

// glv splits a scalar into two half-length parts for the G1 endomorphism,
// by Babai rounding against the CURVE_W/CURVE_SB tables.
func glv(e *BIG) []*BIG {
	var u []*BIG
	t := NewBIG()
	q := NewBIGints(CURVE_Order)
	var v []*BIG

	for i := 0; i < 2; i++ {
		t.copy(NewBIGints(CURVE_W[i]))
		d := mul(t, e)
		v = append(v, d.div(q))
		u = append(u, NewBIG())
	}
	u[0].copy(e)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			t.copy(NewBIGints(CURVE_SB[j][i]))
			t.copy(Modmul(v[j], t, q))
			u[i].add(q)
			u[i].sub(t)
			u[i].Mod(q)
		}
	}
	return u
}

// gs splits a scalar into four quarter-length parts for the G2/GT
// Frobenius, by Babai rounding against the CURVE_WB/CURVE_BB tables.
func gs(e *BIG) []*BIG {
	var u []*BIG
	t := NewBIG()
	q := NewBIGints(CURVE_Order)
	var v []*BIG

	for i := 0; i < 4; i++ {
		t.copy(NewBIGints(CURVE_WB[i]))
		d := mul(t, e)
		v = append(v, d.div(q))
		u = append(u, NewBIG())
	}
	u[0].copy(e)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t.copy(NewBIGints(CURVE_BB[j][i]))
			t.copy(Modmul(v[j], t, q))
			u[i].add(q)
			u[i].sub(t)
			u[i].Mod(q)
		}
	}
	return u
}

// G1mul multiplies in G1, using the GLV endomorphism when enabled.
func G1mul(P *ECP, e *BIG) *ECP {
	var R *ECP
	ee := NewBIGcopy(e)
	ee.norm()
	if USE_GLV {
		R = NewECP()
		R.Copy(P)
		Q := NewECP()
		Q.Copy(P)
		Q.Affine()
		q := NewBIGints(CURVE_Order)
		cru := NewFPbig(NewBIGints(CRu))
		t := NewBIG()
		u := glv(ee)
		Q.getx().mul(cru)

		np := u[0].nbits()
		t.copy(Modneg(u[0], q))
		nn := t.nbits()
		if nn < np {
			u[0].copy(t)
			R.Neg()
		}

		np = u[1].nbits()
		t.copy(Modneg(u[1], q))
		nn = t.nbits()
		if nn < np {
			u[1].copy(t)
			Q.Neg()
		}
		u[0].norm()
		u[1].norm()
		R = R.Mul2(u[0], Q, u[1])
	} else {
		R = P.mul(ee)
	}
	return R
}

// G2mul multiplies in G2, using the Galbraith-Scott decomposition when
// enabled.
func G2mul(P *ECP2, e *BIG) *ECP2 {
	var R *ECP2
	ee := NewBIGcopy(e)
	ee.norm()
	if USE_GS_G2 {
		var Q []*ECP2
		f := NewFP2bigs(NewBIGints(Fra), NewBIGints(Frb))

		q := NewBIGints(CURVE_Order)
		u := gs(ee)

		t := NewBIG()
		Q = append(Q, NewECP2())
		Q[0].Copy(P)
		for i := 1; i < 4; i++ {
			Q = append(Q, NewECP2())
			Q[i].Copy(Q[i-1])
			Q[i].frob(f)
		}
		for i := 0; i < 4; i++ {
			np := u[i].nbits()
			t.copy(Modneg(u[i], q))
			nn := t.nbits()
			if nn < np {
				u[i].copy(t)
				Q[i].neg()
			}
			u[i].norm()
		}

		R = mul4(Q, u)
	} else {
		R = P.mul(ee)
	}
	return R
}

// GTpow exponentiates in GT, using the Galbraith-Scott decomposition with
// Frobenius conjugates when enabled.
func GTpow(d *FP12, e *BIG) *FP12 {
	var r *FP12
	ee := NewBIGcopy(e)
	ee.norm()
	if USE_GS_GT {
		var g []*FP12
		f := NewFP2bigs(NewBIGints(Fra), NewBIGints(Frb))
		q := NewBIGints(CURVE_Order)
		t := NewBIG()

		u := gs(ee)

		g = append(g, NewFP12copy(d))
		for i := 1; i < 4; i++ {
			g = append(g, NewFP12())
			g[i].Copy(g[i-1])
			g[i].frob(f)
		}
		for i := 0; i < 4; i++ {
			np := u[i].nbits()
			t.copy(Modneg(u[i], q))
			nn := t.nbits()
			if nn < np {
				u[i].copy(t)
				g[i].conj()
			}
			u[i].norm()
		}
		r = pow4(g, u)
	} else {
		r = d.Pow(ee)
	}
	return r
}

// G1member tests membership of the order-r subgroup of E(Fp).
func G1member(P *ECP) bool {
	q := NewBIGints(CURVE_Order)
	if P.Is_infinity() {
		return false
	}
	W := G1mul(P, q)
	return W.Is_infinity()
}

// G2member tests membership of the order-r subgroup of the twist.
func G2member(P *ECP2) bool {
	q := NewBIGints(CURVE_Order)
	if P.Is_infinity() {
		return false
	}
	W := G2mul(P, q)
	return W.Is_infinity()
}

// GTmember tests m != 1, unitarity, the Frobenius relation
// m*m^(p^4) == m^(p^2), and order r.
func GTmember(m *FP12) bool {
	if m.Isunity() {
		return false
	}
	r := NewFP12copy(m)
	r.conj()
	r.Mul(m)
	if !r.Isunity() {
		return false
	}

	f := NewFP2bigs(NewBIGints(Fra), NewBIGints(Frb))

	r.Copy(m)
	r.frob(f)
	r.frob(f)
	w := NewFP12copy(r)
	w.frob(f)
	w.frob(f)
	w.Mul(m)
	if !w.Equals(r) {
		return false
	}

	q := NewBIGints(CURVE_Order)
	w.Copy(m)
	r.Copy(GTpow(w, q))
	return r.Isunity()
}
