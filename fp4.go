package bn254

// FP4 is the quadratic extension F_p2[j]/(j^2 - (1+i)); elements are a + j*b.
// It also carries the XTR trace arithmetic used for compressed GT
// exponentiation (Stam-Lenstra).
type FP4 struct {
	a *FP2
	b *FP2
}

func NewFP4() *FP4 {
	F := new(FP4)
	F.a = NewFP2()
	F.b = NewFP2()
	return F
}

func NewFP4int(a int) *FP4 {
	F := new(FP4)
	F.a = NewFP2int(a)
	F.b = NewFP2()
	return F
}

func NewFP4copy(x *FP4) *FP4 {
	F := new(FP4)
	F.a = NewFP2copy(x.a)
	F.b = NewFP2copy(x.b)
	return F
}

func NewFP4fp2s(c *FP2, d *FP2) *FP4 {
	F := new(FP4)
	F.a = NewFP2copy(c)
	F.b = NewFP2copy(d)
	return F
}

func NewFP4fp2(c *FP2) *FP4 {
	F := new(FP4)
	F.a = NewFP2copy(c)
	F.b = NewFP2()
	return F
}

func NewFP4fp(c *FP) *FP4 {
	F := new(FP4)
	F.a = NewFP2fp(c)
	F.b = NewFP2()
	return F
}

func (F *FP4) reduce() {
	F.a.reduce()
	F.b.reduce()
}

func (F *FP4) norm() {
	F.a.norm()
	F.b.norm()
}

func (F *FP4) iszilch() bool {
	return F.a.iszilch() && F.b.iszilch()
}

func (F *FP4) cmove(g *FP4, d int) {
	F.a.cmove(g.a, d)
	F.b.cmove(g.b, d)
}

func (F *FP4) isunity() bool {
	one := NewFP2int(1)
	return F.a.Equals(one) && F.b.iszilch()
}

// isreal reports whether the j-part is zero.
func (F *FP4) isreal() bool {
	return F.b.iszilch()
}

func (F *FP4) real() *FP2 {
	return F.a
}

func (F *FP4) geta() *FP2 {
	return F.a
}

func (F *FP4) getb() *FP2 {
	return F.b
}

func (F *FP4) Equals(x *FP4) bool {
	return F.a.Equals(x.a) && F.b.Equals(x.b)
}

func (F *FP4) copy(x *FP4) {
	F.a.copy(x.a)
	F.b.copy(x.b)
}

func (F *FP4) zero() {
	F.a.zero()
	F.b.zero()
}

func (F *FP4) one() {
	F.a.one()
	F.b.zero()
}

func (F *FP4) neg() {
	F.norm()
	m := NewFP2copy(F.a)
	t := NewFP2()
	m.add(F.b)
	m.neg()
	t.copy(m)
	t.add(F.b)
	F.b.copy(m)
	F.b.add(F.a)
	F.a.copy(t)
	F.norm()
}

func (F *FP4) conj() {
	F.b.neg()
	F.norm()
}

func (F *FP4) nconj() {
	F.a.neg()
	F.norm()
}

func (F *FP4) add(x *FP4) {
	F.a.add(x.a)
	F.b.add(x.b)
}

func (F *FP4) sub(x *FP4) {
	m := NewFP4copy(x)
	m.neg()
	F.add(m)
}

func (F *FP4) rsub(x *FP4) {
	F.neg()
	F.add(x)
}

// pmul multiplies by an FP2.
func (F *FP4) pmul(s *FP2) {
	F.a.mul(s)
	F.b.mul(s)
}

// qmul multiplies by an FP.
func (F *FP4) qmul(s *FP) {
	F.a.pmul(s)
	F.b.pmul(s)
}

func (F *FP4) imul(c int) {
	F.a.imul(c)
	F.b.imul(c)
}

func (F *FP4) sqr() {
	t1 := NewFP2copy(F.a)
	t2 := NewFP2copy(F.b)
	t3 := NewFP2copy(F.a)

	t3.mul(F.b)
	t1.add(F.b)
	t2.mul_ip()

	t2.add(F.a)

	t1.norm()
	t2.norm()

	F.a.copy(t1)
	F.a.mul(t2)

	t2.copy(t3)
	t2.mul_ip()
	t2.add(t3)
	t2.norm()
	t2.neg()
	F.a.add(t2)

	F.b.copy(t3)
	F.b.add(t3)

	F.norm()
}

func (F *FP4) mul(y *FP4) {
	t1 := NewFP2copy(F.a)
	t2 := NewFP2copy(F.b)
	t3 := NewFP2()
	t4 := NewFP2copy(F.b)

	t1.mul(y.a)
	t2.mul(y.b)
	t3.copy(y.b)
	t3.add(y.a)
	t4.add(F.a)

	t3.norm()
	t4.norm()

	t4.mul(t3)

	t3.copy(t1)
	t3.neg()
	t4.add(t3)
	t4.norm()

	t3.copy(t2)
	t3.neg()
	F.b.copy(t4)
	F.b.add(t3)

	t2.mul_ip()
	F.a.copy(t2)
	F.a.add(t1)

	F.norm()
}

func (F *FP4) toString() string {
	return "[" + F.a.toString() + "," + F.b.toString() + "]"
}

func (F *FP4) inverse() {
	F.norm()
	t1 := NewFP2copy(F.a)
	t2 := NewFP2copy(F.b)

	t1.sqr()
	t2.sqr()
	t2.mul_ip()
	t2.norm()
	t1.sub(t2)

	t1.inverse()
	F.a.mul(t1)
	t1.neg()
	t1.norm()
	F.b.mul(t1)
}

// times_i multiplies by j.
func (F *FP4) times_i() {
	t := NewFP2copy(F.b)
	F.b.copy(F.a)
	t.mul_ip()
	F.a.copy(t)
	F.norm()
}

// frob applies the Frobenius; f is the cube of the twist constant.
func (F *FP4) frob(f *FP2) {
	F.a.conj()
	F.b.conj()
	F.b.mul(f)
}

func (F *FP4) div2() {
	F.a.div2()
	F.b.div2()
}

// qr tests whether F is a square.
func (F *FP4) qr() int {
	w := NewFP2copy(F.a)
	s := NewFP2copy(F.b)
	w.sqr()
	s.sqr()
	s.mul_ip()
	s.norm()
	w.sub(s)
	w.norm()
	return w.qr()
}

// sqrt computes a square root in place, returning false (and zeroing the
// receiver) when the element is a non-residue.
func (F *FP4) sqrt() bool {
	if F.iszilch() {
		return true
	}
	if F.b.iszilch() {
		s := NewFP2copy(F.a)
		if s.sqrt() {
			F.a.copy(s)
			F.b.zero()
			return true
		}
		s.copy(F.a)
		s.div_ip()
		s.norm()
		if !s.sqrt() {
			F.zero()
			return false
		}
		F.a.zero()
		F.b.copy(s)
		return true
	}
	w := NewFP2copy(F.a)
	s := NewFP2copy(F.b)
	w.sqr()
	s.sqr()
	s.mul_ip()
	s.norm()
	w.sub(s)
	w.norm()
	if !w.sqrt() {
		F.zero()
		return false
	}
	t := NewFP2copy(F.a)
	t.add(w)
	t.norm()
	t.div2()
	u := NewFP2copy(t)
	if !u.sqrt() {
		t.copy(F.a)
		t.sub(w)
		t.norm()
		t.div2()
		u.copy(t)
		if !u.sqrt() {
			F.zero()
			return false
		}
	}
	t.copy(u)
	t.add(u)
	t.norm()
	t.inverse()
	F.b.mul(t)
	F.a.copy(u)
	return true
}

/* serialization: a.a || a.b || b.a || b.b, 32-byte BIGs */

func (F *FP4) ToBytes(bf []byte) {
	var t [MODBYTES]byte
	F.a.GetA().ToBytes(t[:])
	for i := 0; i < MODBYTES; i++ {
		bf[i] = t[i]
	}
	F.a.GetB().ToBytes(t[:])
	for i := 0; i < MODBYTES; i++ {
		bf[i+MODBYTES] = t[i]
	}
	F.b.GetA().ToBytes(t[:])
	for i := 0; i < MODBYTES; i++ {
		bf[i+2*MODBYTES] = t[i]
	}
	F.b.GetB().ToBytes(t[:])
	for i := 0; i < MODBYTES; i++ {
		bf[i+3*MODBYTES] = t[i]
	}
}

func FP4_fromBytes(bf []byte) *FP4 {
	var t [MODBYTES]byte
	for i := 0; i < MODBYTES; i++ {
		t[i] = bf[i]
	}
	ra := FromBytes(t[:])
	for i := 0; i < MODBYTES; i++ {
		t[i] = bf[i+MODBYTES]
	}
	rb := FromBytes(t[:])
	a := NewFP2bigs(ra, rb)
	for i := 0; i < MODBYTES; i++ {
		t[i] = bf[i+2*MODBYTES]
	}
	ra = FromBytes(t[:])
	for i := 0; i < MODBYTES; i++ {
		t[i] = bf[i+3*MODBYTES]
	}
	rb = FromBytes(t[:])
	b := NewFP2bigs(ra, rb)
	return NewFP4fp2s(a, b)
}

/* XTR operations on FP4 traces of unitary FP12 elements */

// xtr_A computes r = F*w - conj(F)*y + z.
func (F *FP4) xtr_A(w *FP4, y *FP4, z *FP4) {
	r := NewFP4copy(w)
	t := NewFP4copy(w)
	r.sub(y)
	r.norm()
	r.pmul(F.a)
	t.add(y)
	t.norm()
	t.pmul(F.b)
	t.times_i()

	F.copy(r)
	F.add(t)
	F.add(z)

	F.norm()
}

// xtr_D computes F = F^2 - 2*conj(F).
func (F *FP4) xtr_D() {
	w := NewFP4copy(F)
	F.sqr()
	w.conj()
	w.add(w)
	w.norm()
	F.sub(w)
	F.reduce()
}

// xtr_pow computes the trace of x^n from the trace F of x.
func (F *FP4) xtr_pow(n *BIG) *FP4 {
	a := NewFP4int(3)
	b := NewFP4copy(F)
	c := NewFP4copy(b)
	c.xtr_D()
	t := NewFP4()
	r := NewFP4()
	sf := NewFP4copy(F)
	sf.norm()

	par := n.parity()
	v := NewBIGcopy(n)
	v.norm()
	v.fshr(1)
	if par == 0 {
		v.dec(1)
		v.norm()
	}

	nb := v.nbits()
	for i := nb - 1; i >= 0; i-- {
		if v.bit(i) != 1 {
			t.copy(b)
			sf.conj()
			c.conj()
			b.xtr_A(a, sf, c)
			sf.conj()
			c.copy(t)
			c.xtr_D()
			a.xtr_D()
		} else {
			t.copy(a)
			t.conj()
			a.copy(b)
			a.xtr_D()
			b.xtr_A(c, sf, t)
			c.xtr_D()
		}
	}
	if par == 0 {
		r.copy(c)
	} else {
		r.copy(b)
	}
	r.reduce()
	return r
}

// xtr_pow2 computes the trace of ck^a * F-base^b by Stam's double
// exponentiation, given the traces ck, ckml, ckm2l of c^k, c^(k-l), c^(k-2l).
func (F *FP4) xtr_pow2(ck *FP4, ckml *FP4, ckm2l *FP4, a *BIG, b *BIG) *FP4 {
	e := NewBIGcopy(a)
	d := NewBIGcopy(b)
	w := NewBIG()
	e.norm()
	d.norm()

	cu := NewFP4copy(ck)
	cv := NewFP4copy(F)
	cumv := NewFP4copy(ckml)
	cum2v := NewFP4copy(ckm2l)
	r := NewFP4()
	t := NewFP4()

	f2 := 0
	for d.parity() == 0 && e.parity() == 0 {
		d.fshr(1)
		e.fshr(1)
		f2++
	}

	for Comp(d, e) != 0 {
		if Comp(d, e) > 0 {
			w.copy(e)
			w.pmul(4)
			w.norm()
			if Comp(d, w) <= 0 {
				w.copy(d)
				d.copy(e)
				e.rsub(w)
				e.norm()

				t.copy(cv)
				t.xtr_A(cu, cumv, cum2v)
				cum2v.copy(cumv)
				cum2v.conj()
				cumv.copy(cv)
				cv.copy(cu)
				cu.copy(t)
			} else if d.parity() == 0 {
				d.fshr(1)
				r.copy(cum2v)
				r.conj()
				t.copy(cumv)
				t.xtr_A(cu, cv, r)
				cum2v.copy(cumv)
				cum2v.xtr_D()
				cumv.copy(t)
				cu.xtr_D()
			} else if e.parity() == 1 {
				d.sub(e)
				d.norm()
				d.fshr(1)
				t.copy(cv)
				t.xtr_A(cu, cumv, cum2v)
				cu.xtr_D()
				cum2v.copy(cv)
				cum2v.xtr_D()
				cum2v.conj()
				cv.copy(t)
			} else {
				w.copy(d)
				d.copy(e)
				d.fshr(1)
				e.copy(w)
				t.copy(cumv)
				t.xtr_D()
				cumv.copy(cum2v)
				cumv.conj()
				cum2v.copy(t)
				cum2v.conj()
				t.copy(cv)
				t.xtr_D()
				cv.copy(cu)
				cu.copy(t)
			}
		}
		if Comp(d, e) < 0 {
			w.copy(d)
			w.pmul(4)
			w.norm()
			if Comp(e, w) <= 0 {
				e.sub(d)
				e.norm()
				t.copy(cv)
				t.xtr_A(cu, cumv, cum2v)
				cum2v.copy(cumv)
				cumv.copy(cu)
				cu.copy(t)
			} else if e.parity() == 0 {
				w.copy(d)
				d.copy(e)
				d.fshr(1)
				e.copy(w)
				t.copy(cumv)
				t.xtr_D()
				cumv.copy(cum2v)
				cumv.conj()
				cum2v.copy(t)
				cum2v.conj()
				t.copy(cv)
				t.xtr_D()
				cv.copy(cu)
				cu.copy(t)
			} else if d.parity() == 1 {
				w.copy(e)
				e.copy(d)
				w.sub(d)
				w.norm()
				d.copy(w)
				d.fshr(1)
				t.copy(cv)
				t.xtr_A(cu, cumv, cum2v)
				cumv.conj()
				cum2v.copy(cu)
				cum2v.xtr_D()
				cum2v.conj()
				cu.copy(cv)
				cu.xtr_D()
				cv.copy(t)
			} else {
				d.fshr(1)
				r.copy(cum2v)
				r.conj()
				t.copy(cumv)
				t.xtr_A(cu, cv, r)
				cum2v.copy(cumv)
				cum2v.xtr_D()
				cumv.copy(t)
				cu.xtr_D()
			}
		}
	}
	r.copy(cv)
	r.xtr_A(cu, cumv, cum2v)
	for i := 0; i < f2; i++ {
		r.xtr_D()
	}
	r = r.xtr_pow(d)
	return r
}
