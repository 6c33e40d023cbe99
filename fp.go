package bn254

// FP is a field element mod p held in Montgomery form (value * 2^280 mod p).
// XES tracks how far x may exceed a fully reduced value: the invariant is
// value < XES*p, with XES = 1 meaning reduced. When XES would pass FEXCESS
// a reduction is forced so lazy sums never overflow a limb.
type FP struct {
	x   *BIG
	XES int32
}

func NewFP() *FP {
	F := new(FP)
	F.x = NewBIG()
	F.XES = 1
	return F
}

func NewFPbig(x *BIG) *FP {
	F := new(FP)
	F.x = NewBIGcopy(x)
	F.nres()
	return F
}

func NewFPint(a int) *FP {
	F := new(FP)
	if a < 0 {
		m := NewBIGints(Modulus)
		m.inc(a)
		m.norm()
		F.x = m
	} else {
		F.x = NewBIGint(a)
	}
	F.nres()
	return F
}

func NewFPcopy(x *FP) *FP {
	F := new(FP)
	F.x = NewBIGcopy(x.x)
	F.XES = x.XES
	return F
}

func (F *FP) toString() string {
	return F.redc().ToString()
}

// nres converts to Montgomery form.
func (F *FP) nres() {
	r := NewBIGints(R2modp)
	d := mul(F.x, r)
	F.x.copy(monty(NewBIGints(Modulus), MConst, d))
	F.XES = 2
}

// redc converts back from Montgomery form.
func (F *FP) redc() *BIG {
	F.reduce()
	d := NewDBIGscopy(F.x)
	return monty(NewBIGints(Modulus), MConst, d)
}

func logb2(w uint32) uint {
	v := w
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v = v - ((v >> 1) & 0x55555555)
	v = (v & 0x33333333) + ((v >> 2) & 0x33333333)
	return uint((((v + (v >> 4)) & 0xF0F0F0F) * 0x1010101) >> 24)
}

// quo estimates r/m from the top two limbs.
func quo(n *BIG, m *BIG) int {
	sh := 32 - TBITS
	num := (n.w[NLEN-1] << sh) | (n.w[NLEN-2] >> (BASEBITS - sh))
	den := (m.w[NLEN-1] << sh) | (m.w[NLEN-2] >> (BASEBITS - sh))
	return int(num / (den + 1))
}

// reduce brings the element to XES = 1 in constant time for a given XES.
func (F *FP) reduce() {
	m := NewBIGints(Modulus)
	r := NewBIGints(Modulus)
	var sb uint
	F.x.norm()

	if F.XES > 16 {
		q := quo(F.x, m)
		carry := r.pmul(q)
		r.w[NLEN-1] += carry << BASEBITS
		F.x.sub(r)
		F.x.norm()
		sb = 2
	} else {
		sb = logb2(uint32(F.XES - 1))
	}
	m.fshl(sb)
	for sb > 0 {
		sr := ssn(r, F.x, m)
		F.x.cmove(r, 1-sr)
		sb--
	}
	F.XES = 1
}

func (F *FP) norm() {
	F.x.norm()
}

func (F *FP) iszilch() bool {
	W := NewFPcopy(F)
	W.reduce()
	return W.x.iszilch()
}

func (F *FP) islarger() int {
	if F.iszilch() {
		return 0
	}
	sx := NewBIGints(Modulus)
	fx := F.redc()
	sx.sub(fx)
	sx.norm()
	return Comp(fx, sx)
}

func (F *FP) copy(b *FP) {
	F.x.copy(b.x)
	F.XES = b.XES
}

func (F *FP) zero() {
	F.x.zero()
	F.XES = 1
}

func (F *FP) one() {
	F.x.one()
	F.nres()
}

func (F *FP) sign() int {
	W := NewFPcopy(F)
	W.reduce()
	return W.redc().parity()
}

func (F *FP) cmove(b *FP, d int) {
	F.x.cmove(b.x, d)
	c := int32(-d)
	F.XES ^= (F.XES ^ b.XES) & c
}

func (F *FP) cswap(b *FP, d int) {
	F.x.cswap(b.x, d)
	c := int32(-d)
	t := c & (F.XES ^ b.XES)
	F.XES ^= t
	b.XES ^= t
}

// mul sets F = F*b mod p, result has XES = 2.
func (F *FP) mul(b *FP) {
	if int64(F.XES)*int64(b.XES) > int64(FEXCESS) {
		F.reduce()
	}
	d := mul(F.x, b.x)
	F.x.copy(monty(NewBIGints(Modulus), MConst, d))
	F.XES = 2
}

// imul multiplies by a small integer.
func (F *FP) imul(c int) {
	s := false
	if c < 0 {
		c = -c
		s = true
	}
	if int64(F.XES)*int64(c) <= int64(FEXCESS) {
		F.x.pmul(c)
		F.XES *= int32(c)
	} else {
		n := NewFPint(c)
		F.mul(n)
	}
	if s {
		F.neg()
		F.norm()
	}
}

func (F *FP) sqr() {
	if int64(F.XES)*int64(F.XES) > int64(FEXCESS) {
		F.reduce()
	}
	d := sqr(F.x)
	F.x.copy(monty(NewBIGints(Modulus), MConst, d))
	F.XES = 2
}

func (F *FP) add(b *FP) {
	F.x.add(b.x)
	F.XES += b.XES
	if F.XES > FEXCESS {
		F.reduce()
	}
}

func (F *FP) neg() {
	m := NewBIGints(Modulus)
	sb := logb2(uint32(F.XES - 1))
	m.fshl(sb)
	F.x.rsub(m)
	F.XES = (int32(1) << sb) + 1
	if F.XES > FEXCESS {
		F.reduce()
	}
}

func (F *FP) sub(b *FP) {
	n := NewFPcopy(b)
	n.neg()
	F.add(n)
}

func (F *FP) rsub(b *FP) {
	F.neg()
	F.add(b)
}

// div2 halves the element.
func (F *FP) div2() {
	p := NewBIGints(Modulus)
	F.x.norm()
	pr := F.x.parity()
	w := NewBIGcopy(F.x)
	F.x.fshr(1)
	w.add(p)
	w.norm()
	w.fshr(1)
	F.x.cmove(w, pr)
}

// inverse via Fermat: F = F^(p-2).
func (F *FP) inverse() {
	m := NewBIGints(Modulus)
	m.dec(2)
	m.norm()
	F.copy(F.pow(m))
}

func (F *FP) Equals(b *FP) bool {
	f := NewFPcopy(F)
	g := NewFPcopy(b)
	f.reduce()
	g.reduce()
	return Comp(f.x, g.x) == 0
}

// pow computes F^e with a 4-bit fixed window. Not constant time; used for
// public exponents only.
func (F *FP) pow(e *BIG) *FP {
	var tb []*FP
	var w [1 + (NLEN*int(BASEBITS)+3)/4]int8
	F.norm()
	t := NewBIGcopy(e)
	t.norm()
	nb := 1 + (t.nbits()+3)/4

	for i := 0; i < nb; i++ {
		lsbs := t.lastbits(4)
		t.dec(lsbs)
		t.norm()
		w[i] = int8(lsbs)
		t.fshr(4)
	}
	tb = append(tb, NewFPint(1))
	tb = append(tb, NewFPcopy(F))
	for i := 2; i < 16; i++ {
		tb = append(tb, NewFPcopy(tb[i-1]))
		tb[i].mul(F)
	}
	r := NewFPcopy(tb[w[nb-1]])
	for i := nb - 2; i >= 0; i-- {
		r.sqr()
		r.sqr()
		r.sqr()
		r.sqr()
		r.mul(tb[w[i]])
	}
	r.reduce()
	return r
}

// fpow computes F^((p-3)/4), the inverse-square-root exponent for
// p = 3 mod 4; F*fpow(F) equals the root that sqrt computes directly.
func (F *FP) fpow() *FP {
	e := NewBIGints(Modulus)
	e.dec(3)
	e.norm()
	e.shr(2)
	return F.pow(e)
}

// sqrt returns a square root of F, valid when jacobi() == 1 (p = 3 mod 4).
func (F *FP) sqrt() *FP {
	F.reduce()
	b := NewBIGints(Modulus)
	b.inc(1)
	b.norm()
	b.shr(2)
	return F.pow(b)
}

// qr tests quadratic residuosity.
func (F *FP) qr() int {
	return F.jacobi()
}

func (F *FP) jacobi() int {
	w := F.redc()
	p := NewBIGints(Modulus)
	return w.Jacobi(p)
}
