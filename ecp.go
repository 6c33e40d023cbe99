package bn254

// ECP is a point on the base curve y^2 = x^3 + 2 in projective coordinates.
// The point at infinity has z = 0 (and y = 1).
type ECP struct {
	x *FP
	y *FP
	z *FP
}

func NewECP() *ECP {
	E := new(ECP)
	E.x = NewFP()
	E.y = NewFPint(1)
	E.z = NewFP()
	return E
}

// NewECPbigs installs (x, y), verifying the curve equation; an off-curve
// pair yields the point at infinity.
func NewECPbigs(ix *BIG, iy *BIG) *ECP {
	E := new(ECP)
	E.x = NewFPbig(ix)
	E.y = NewFPbig(iy)
	E.z = NewFPint(1)
	E.x.norm()
	rhs := RHS(E.x)

	y2 := NewFPcopy(E.y)
	y2.sqr()
	if !y2.Equals(rhs) {
		E.inf()
	}
	return E
}

// NewECPbigint recovers y from x and the sign bit s = parity(y).
func NewECPbigint(ix *BIG, s int) *ECP {
	E := new(ECP)
	E.x = NewFPbig(ix)
	E.y = NewFP()
	E.x.norm()
	rhs := RHS(E.x)
	E.z = NewFPint(1)
	if rhs.jacobi() == 1 {
		ny := rhs.sqrt()
		if ny.sign() != s {
			ny.neg()
			ny.norm()
		}
		E.y.copy(ny)
	} else {
		E.inf()
	}
	return E
}

// NewECPbig recovers some y from x.
func NewECPbig(ix *BIG) *ECP {
	E := new(ECP)
	E.x = NewFPbig(ix)
	E.y = NewFP()
	E.x.norm()
	rhs := RHS(E.x)
	E.z = NewFPint(1)
	if rhs.jacobi() == 1 {
		E.y.copy(rhs.sqrt())
	} else {
		E.inf()
	}
	return E
}

func (E *ECP) Is_infinity() bool {
	return E.x.iszilch() && E.z.iszilch()
}

func (E *ECP) cswap(Q *ECP, d int) {
	E.x.cswap(Q.x, d)
	E.y.cswap(Q.y, d)
	E.z.cswap(Q.z, d)
}

func (E *ECP) cmove(Q *ECP, d int) {
	E.x.cmove(Q.x, d)
	E.y.cmove(Q.y, d)
	E.z.cmove(Q.z, d)
}

// teq is a branchless equality test returning 1 if b == c.
func teq(b int32, c int32) int {
	x := b ^ c
	x -= 1
	return int((x >> 31) & 1)
}

func (E *ECP) Copy(P *ECP) {
	E.x.copy(P.x)
	E.y.copy(P.y)
	E.z.copy(P.z)
}

func (E *ECP) Neg() {
	E.y.neg()
	E.y.norm()
}

// selector picks +-W[|b|] in constant time for a signed window digit b.
func (E *ECP) selector(W []*ECP, b int32) {
	MP := NewECP()
	m := b >> 31
	babs := (b ^ m) - m
	babs = (babs - 1) / 2

	E.cmove(W[0], teq(babs, 0))
	E.cmove(W[1], teq(babs, 1))
	E.cmove(W[2], teq(babs, 2))
	E.cmove(W[3], teq(babs, 3))
	E.cmove(W[4], teq(babs, 4))
	E.cmove(W[5], teq(babs, 5))
	E.cmove(W[6], teq(babs, 6))
	E.cmove(W[7], teq(babs, 7))

	MP.Copy(E)
	MP.Neg()
	E.cmove(MP, int(m&1))
}

func (E *ECP) inf() {
	E.x.zero()
	E.y.one()
	E.z.zero()
}

// Equals compares projectively: x1*z2 == x2*z1 and y1*z2 == y2*z1.
func (E *ECP) Equals(Q *ECP) bool {
	a := NewFP()
	b := NewFP()
	a.copy(E.x)
	a.mul(Q.z)
	a.reduce()
	b.copy(Q.x)
	b.mul(E.z)
	b.reduce()
	if !a.Equals(b) {
		return false
	}
	a.copy(E.y)
	a.mul(Q.z)
	a.reduce()
	b.copy(Q.y)
	b.mul(E.z)
	b.reduce()
	return a.Equals(b)
}

// RHS computes x^3 + b.
func RHS(x *FP) *FP {
	r := NewFPcopy(x)
	r.sqr()
	b := NewFPbig(NewBIGints(CURVE_B))
	r.mul(x)
	r.add(b)
	r.reduce()
	return r
}

func (E *ECP) Affine() {
	if E.Is_infinity() {
		return
	}
	one := NewFPint(1)
	if E.z.Equals(one) {
		return
	}
	E.z.inverse()
	E.x.mul(E.z)
	E.x.reduce()
	E.y.mul(E.z)
	E.y.reduce()
	E.z.copy(one)
}

func (E *ECP) GetX() *BIG {
	W := NewECP()
	W.Copy(E)
	W.Affine()
	return W.x.redc()
}

func (E *ECP) GetY() *BIG {
	W := NewECP()
	W.Copy(E)
	W.Affine()
	return W.y.redc()
}

// GetS returns the sign (parity) of affine y.
func (E *ECP) GetS() int {
	W := NewECP()
	W.Copy(E)
	W.Affine()
	return W.y.sign()
}

func (E *ECP) getx() *FP {
	return E.x
}

func (E *ECP) gety() *FP {
	return E.y
}

func (E *ECP) getz() *FP {
	return E.z
}

// ToBytes emits 0x04||X||Y uncompressed, or 0x02/0x03||X compressed with
// the tag carrying parity(y).
func (E *ECP) ToBytes(b []byte, compress bool) {
	var t [MODBYTES]byte
	W := NewECP()
	W.Copy(E)
	W.Affine()
	W.x.redc().ToBytes(t[:])
	for i := 0; i < MODBYTES; i++ {
		b[i+1] = t[i]
	}
	if compress {
		b[0] = 0x02
		if W.y.sign() == 1 {
			b[0] = 0x03
		}
		return
	}
	b[0] = 0x04
	W.y.redc().ToBytes(t[:])
	for i := 0; i < MODBYTES; i++ {
		b[i+MODBYTES+1] = t[i]
	}
}

// ECP_fromBytes decodes by the leading tag. Out-of-range coordinates and
// off-curve points decode to the point at infinity.
func ECP_fromBytes(b []byte) *ECP {
	var t [MODBYTES]byte
	p := NewBIGints(Modulus)

	for i := 0; i < MODBYTES; i++ {
		t[i] = b[i+1]
	}
	px := FromBytes(t[:])
	if Comp(px, p) >= 0 {
		return NewECP()
	}

	if b[0] == 0x04 {
		for i := 0; i < MODBYTES; i++ {
			t[i] = b[i+MODBYTES+1]
		}
		py := FromBytes(t[:])
		if Comp(py, p) >= 0 {
			return NewECP()
		}
		return NewECPbigs(px, py)
	}

	if b[0] == 0x02 || b[0] == 0x03 {
		return NewECPbigint(px, int(b[0]&1))
	}
	return NewECP()
}

func (E *ECP) ToString() string {
	W := NewECP()
	W.Copy(E)
	W.Affine()
	if W.Is_infinity() {
		return "infinity"
	}
	return "(" + W.x.redc().ToString() + "," + W.y.redc().ToString() + ")"
}

// dbl doubles in place with the exception-free a=0 formulas.
func (E *ECP) dbl() {
	t0 := NewFPcopy(E.y)
	t0.sqr()
	t1 := NewFPcopy(E.y)
	t1.mul(E.z)
	t2 := NewFPcopy(E.z)
	t2.sqr()

	E.z.copy(t0)
	E.z.add(t0)
	E.z.norm()
	E.z.add(E.z)
	E.z.add(E.z)
	E.z.norm()
	t2.imul(3 * CURVE_B_I)

	x3 := NewFPcopy(t2)
	x3.mul(E.z)

	y3 := NewFPcopy(t0)
	y3.add(t2)
	y3.norm()
	E.z.mul(t1)
	t1.copy(t2)
	t1.add(t2)
	t2.add(t1)
	t0.sub(t2)
	t0.norm()
	y3.mul(t0)
	y3.add(x3)
	t1.copy(E.x)
	t1.mul(E.y)
	E.x.copy(t0)
	E.x.norm()
	E.x.mul(t1)
	E.x.add(E.x)
	E.x.norm()
	E.y.copy(y3)
	E.y.norm()
}

// Add adds Q in place, complete formulas (no special casing of Q = +-E).
func (E *ECP) Add(Q *ECP) {
	b := 3 * CURVE_B_I
	t0 := NewFPcopy(E.x)
	t0.mul(Q.x)
	t1 := NewFPcopy(E.y)
	t1.mul(Q.y)
	t2 := NewFPcopy(E.z)
	t2.mul(Q.z)
	t3 := NewFPcopy(E.x)
	t3.add(E.y)
	t3.norm()
	t4 := NewFPcopy(Q.x)
	t4.add(Q.y)
	t4.norm()
	t3.mul(t4)
	t4.copy(t0)
	t4.add(t1)

	t3.sub(t4)
	t3.norm()
	t4.copy(E.y)
	t4.add(E.z)
	t4.norm()
	x3 := NewFPcopy(Q.y)
	x3.add(Q.z)
	x3.norm()

	t4.mul(x3)
	x3.copy(t1)
	x3.add(t2)

	t4.sub(x3)
	t4.norm()
	x3.copy(E.x)
	x3.add(E.z)
	x3.norm()
	y3 := NewFPcopy(Q.x)
	y3.add(Q.z)
	y3.norm()
	x3.mul(y3)
	y3.copy(t0)
	y3.add(t2)
	y3.rsub(x3)
	y3.norm()
	x3.copy(t0)
	x3.add(t0)
	t0.add(x3)
	t0.norm()
	t2.imul(b)

	z3 := NewFPcopy(t1)
	z3.add(t2)
	z3.norm()
	t1.sub(t2)
	t1.norm()
	y3.imul(b)

	x3.copy(y3)
	x3.mul(t4)
	t2.copy(t3)
	t2.mul(t1)
	x3.rsub(t2)
	y3.mul(t0)
	t1.mul(z3)
	y3.add(t1)
	t0.mul(t3)
	z3.mul(t4)
	z3.add(t0)

	E.x.copy(x3)
	E.x.norm()
	E.y.copy(y3)
	E.y.norm()
	E.z.copy(z3)
	E.z.norm()
}

func (E *ECP) Sub(Q *ECP) {
	NQ := NewECP()
	NQ.Copy(Q)
	NQ.Neg()
	E.Add(NQ)
}

// pinmul is a constant-time ladder multiply by a small e of bts bits.
func (E *ECP) pinmul(e int32, bts int32) *ECP {
	P := NewECP()
	R0 := NewECP()
	R1 := NewECP()
	R1.Copy(E)

	for i := bts - 1; i >= 0; i-- {
		b := int((e >> uint32(i)) & 1)
		P.Copy(R1)
		P.Add(R0)
		R0.cswap(R1, b)
		R1.Copy(P)
		R0.dbl()
		R0.cswap(R1, b)
	}
	P.Copy(R0)
	return P
}

// mul computes e*E with a signed 4-bit fixed window over a table of odd
// multiples; the exponent is made odd with a correction point subtracted at
// the end, so the loop and table accesses are independent of e.
func (E *ECP) mul(e *BIG) *ECP {
	if e.iszilch() || E.Is_infinity() {
		return NewECP()
	}
	P := NewECP()
	mt := NewBIG()
	t := NewBIG()
	Q := NewECP()
	C := NewECP()

	var W []*ECP
	var w [1 + (NLEN*int(BASEBITS)+3)/4]int8

	Q.Copy(E)
	Q.dbl()

	W = append(W, NewECP())
	W[0].Copy(E)

	for i := 1; i < 8; i++ {
		W = append(W, NewECP())
		W[i].Copy(W[i-1])
		W[i].Add(Q)
	}

	// make exponent odd - add 2P if even, P if odd
	t.copy(e)
	s := t.parity()
	t.inc(1)
	t.norm()
	ns := t.parity()
	mt.copy(t)
	mt.inc(1)
	mt.norm()
	t.cmove(mt, s)
	Q.cmove(E, ns)
	C.Copy(Q)

	nb := 1 + (t.nbits()+3)/4

	// convert exponent to signed 4-bit window
	for i := 0; i < nb; i++ {
		w[i] = int8(t.lastbits(5) - 16)
		t.dec(int(w[i]))
		t.norm()
		t.fshr(4)
	}
	w[nb] = int8(t.lastbits(5))

	P.Copy(W[(int(w[nb])-1)/2])
	for i := nb - 1; i >= 0; i-- {
		Q.selector(W, int32(w[i]))
		P.dbl()
		P.dbl()
		P.dbl()
		P.dbl()
		P.Add(Q)
	}
	P.Sub(C)
	P.Affine()
	return P
}

// Mul is the public scalar multiplication.
func (E *ECP) Mul(e *BIG) *ECP {
	return E.mul(e)
}

// Muln computes Sigma e_i*X_i with a fixed 4-bit window. Variable time; for
// public aggregation only.
func ECP_muln(n int, X []*ECP, e []*BIG) *ECP {
	P := NewECP()
	R := NewECP()
	S := NewECP()
	var B []*ECP
	t := NewBIG()
	for i := 0; i < 16; i++ {
		B = append(B, NewECP())
	}
	mt := NewBIGcopy(e[0])
	mt.norm()
	for i := 1; i < n; i++ {
		t.copy(e[i])
		t.norm()
		k := Comp(t, mt)
		mt.cmove(t, (k+1)/2)
	}
	nb := (mt.nbits() + 3) / 4
	for i := nb - 1; i >= 0; i-- {
		for j := 0; j < 16; j++ {
			B[j].inf()
		}
		for j := 0; j < n; j++ {
			mt.copy(e[j])
			mt.norm()
			mt.shr(uint(i * 4))
			k := mt.lastbits(4)
			B[k].Add(X[j])
		}
		R.inf()
		S.inf()
		for j := 15; j >= 1; j-- {
			R.Add(B[j])
			S.Add(R)
		}
		for j := 0; j < 4; j++ {
			P.dbl()
		}
		P.Add(S)
	}
	return P
}

// Mul2 returns e*E + f*Q using a joint signed 2-bit window.
func (E *ECP) Mul2(e *BIG, Q *ECP, f *BIG) *ECP {
	te := NewBIG()
	tf := NewBIG()
	mt := NewBIG()
	S := NewECP()
	T := NewECP()
	C := NewECP()
	var W []*ECP
	var w [1 + (NLEN*int(BASEBITS)+1)/2]int8

	te.copy(e)
	tf.copy(f)

	// precompute table of a*E+b*Q for signed digits
	for i := 0; i < 8; i++ {
		W = append(W, NewECP())
	}
	W[1].Copy(E)
	W[1].Sub(Q)
	W[2].Copy(E)
	W[2].Add(Q)
	S.Copy(Q)
	S.dbl()
	W[0].Copy(W[1])
	W[0].Sub(S)
	W[3].Copy(W[2])
	W[3].Add(S)
	T.Copy(E)
	T.dbl()
	W[5].Copy(W[1])
	W[5].Add(T)
	W[6].Copy(W[2])
	W[6].Add(T)
	W[4].Copy(W[5])
	W[4].Sub(S)
	W[7].Copy(W[6])
	W[7].Add(S)

	// make multipliers odd, tracking correction points
	s := te.parity()
	te.inc(1)
	te.norm()
	ns := te.parity()
	mt.copy(te)
	mt.inc(1)
	mt.norm()
	te.cmove(mt, s)
	T.cmove(E, ns)
	C.Copy(T)

	s = tf.parity()
	tf.inc(1)
	tf.norm()
	ns = tf.parity()
	mt.copy(tf)
	mt.inc(1)
	mt.norm()
	tf.cmove(mt, s)
	S.cmove(Q, ns)
	C.Add(S)

	mt.copy(te)
	mt.add(tf)
	mt.norm()
	nb := 1 + (mt.nbits()+1)/2

	// interleave into a joint signed 2-bit window
	for i := 0; i < nb; i++ {
		a := te.lastbits(3) - 4
		te.dec(a)
		te.norm()
		te.fshr(2)
		b := tf.lastbits(3) - 4
		tf.dec(b)
		tf.norm()
		tf.fshr(2)
		w[i] = int8(4*a + b)
	}
	w[nb] = int8(4*te.lastbits(3) + tf.lastbits(3))
	S.Copy(W[(int(w[nb])-1)/2])

	for i := nb - 1; i >= 0; i-- {
		T.selector(W, int32(w[i]))
		S.dbl()
		S.dbl()
		S.Add(T)
	}
	S.Sub(C)
	return S
}

// ECP_generator returns the fixed generator of G1.
func ECP_generator() *ECP {
	return NewECPbigs(NewBIGints(CURVE_Gx), NewBIGints(CURVE_Gy))
}
