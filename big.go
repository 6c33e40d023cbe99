package bn254

import (
	"errors"
	"io"
)

// BIG holds a multi-precision integer in NLEN limbs of BASEBITS bits.
// Limbs may exceed the base (or go negative) during lazy arithmetic;
// norm redistributes carries. Values are numerically non-negative.
type BIG struct {
	w [NLEN]Chunk
}

// DBIG is the double-width product type.
type DBIG struct {
	w [DNLEN]Chunk
}

func NewBIG() *BIG {
	b := new(BIG)
	for i := 0; i < NLEN; i++ {
		b.w[i] = 0
	}
	return b
}

func NewBIGint(x int) *BIG {
	b := NewBIG()
	b.w[0] = Chunk(x)
	return b
}

func NewBIGints(x [NLEN]Chunk) *BIG {
	b := new(BIG)
	for i := 0; i < NLEN; i++ {
		b.w[i] = x[i]
	}
	return b
}

func NewBIGcopy(x *BIG) *BIG {
	b := new(BIG)
	for i := 0; i < NLEN; i++ {
		b.w[i] = x.w[i]
	}
	return b
}

func NewBIGdcopy(x *DBIG) *BIG {
	b := new(BIG)
	for i := 0; i < NLEN; i++ {
		b.w[i] = x.w[i]
	}
	return b
}

func (r *BIG) get(i int) Chunk {
	return r.w[i]
}

func (r *BIG) set(i int, x Chunk) {
	r.w[i] = x
}

func (r *BIG) copy(x *BIG) {
	for i := 0; i < NLEN; i++ {
		r.w[i] = x.w[i]
	}
}

func (r *BIG) dcopy(x *DBIG) {
	for i := 0; i < NLEN; i++ {
		r.w[i] = x.w[i]
	}
}

func (r *BIG) zero() {
	for i := 0; i < NLEN; i++ {
		r.w[i] = 0
	}
}

func (r *BIG) one() {
	r.w[0] = 1
	for i := 1; i < NLEN; i++ {
		r.w[i] = 0
	}
}

func (r *BIG) iszilch() bool {
	d := Chunk(0)
	for i := 0; i < NLEN; i++ {
		d |= r.w[i]
	}
	return (1 & ((d - 1) >> BASEBITS)) != 0
}

func (r *BIG) isunity() bool {
	d := Chunk(0)
	for i := 1; i < NLEN; i++ {
		d |= r.w[i]
	}
	return (1&((d-1)>>BASEBITS))&(((r.w[0]^1)-1)>>BASEBITS) != 0
}

// norm propagates carries so every limb below the top lies in
// [0, 2^BASEBITS); the top limb keeps the final carry. Returns the
// sign-extended bits of the top limb above bit 8*MODBYTES of the value.
func (r *BIG) norm() Chunk {
	carry := Chunk(0)
	for i := 0; i < NLEN-1; i++ {
		d := r.w[i] + carry
		r.w[i] = d & BMASK
		carry = d >> BASEBITS
	}
	r.w[NLEN-1] += carry
	return r.w[NLEN-1] >> ((8 * uint(MODBYTES)) % BASEBITS)
}

// muladd computes top|bot = x*y + c + r for normalized x, y < 2^BASEBITS,
// splitting at the half word so products never overflow a Chunk.
func muladd(x Chunk, y Chunk, c Chunk, r Chunk) (Chunk, Chunk) {
	x0 := x & HMASK
	x1 := x >> HBITS
	y0 := y & HMASK
	y1 := y >> HBITS
	bot := x0 * y0
	top := x1 * y1
	mid := x0*y1 + x1*y0
	x0 = mid & HMASK
	top += mid >> HBITS
	bot += x0 << HBITS
	bot += c + r
	top += bot >> BASEBITS
	bot &= BMASK
	return top, bot
}

/* lazy limb-wise operations; caller norms before comparing or shifting */

func (r *BIG) add(x *BIG) {
	for i := 0; i < NLEN; i++ {
		r.w[i] += x.w[i]
	}
}

func (r *BIG) or(x *BIG) {
	for i := 0; i < NLEN; i++ {
		r.w[i] |= x.w[i]
	}
}

func (r *BIG) sub(x *BIG) {
	for i := 0; i < NLEN; i++ {
		r.w[i] -= x.w[i]
	}
}

// rsub sets r = x - r
func (r *BIG) rsub(x *BIG) {
	for i := 0; i < NLEN; i++ {
		r.w[i] = x.w[i] - r.w[i]
	}
}

func (r *BIG) inc(x int) {
	r.norm()
	r.w[0] += Chunk(x)
}

func (r *BIG) dec(x int) {
	r.norm()
	r.w[0] -= Chunk(x)
}

// pmul multiplies in place by a small positive integer, returning the carry.
func (r *BIG) pmul(c int) Chunk {
	carry := Chunk(0)
	for i := 0; i < NLEN; i++ {
		ak := r.w[i]
		r.w[i] = 0
		carry, r.w[i] = muladd(ak, Chunk(c), carry, r.w[i])
	}
	return carry
}

// pxmul multiplies by a small integer into a DBIG.
func pxmul(x *BIG, c int) *DBIG {
	m := NewDBIG()
	carry := Chunk(0)
	for j := 0; j < NLEN; j++ {
		carry, m.w[j] = muladd(x.w[j], Chunk(c), carry, m.w[j])
	}
	m.w[NLEN] = carry
	return m
}

/* shifts */

// fshl is the fast left shift, k < BASEBITS, input normalized.
func (r *BIG) fshl(k uint) int {
	r.w[NLEN-1] = (r.w[NLEN-1] << k) | (r.w[NLEN-2] >> (BASEBITS - k))
	for i := NLEN - 2; i > 0; i-- {
		r.w[i] = ((r.w[i] << k) & BMASK) | (r.w[i-1] >> (BASEBITS - k))
	}
	r.w[0] = (r.w[0] << k) & BMASK
	return int(r.w[NLEN-1] >> ((8 * uint(MODBYTES)) % BASEBITS))
}

func (r *BIG) shl(k uint) {
	n := k % BASEBITS
	m := int(k / BASEBITS)

	r.w[NLEN-1] = r.w[NLEN-1-m] << n
	if NLEN >= m+2 {
		r.w[NLEN-1] |= r.w[NLEN-m-2] >> (BASEBITS - n)
	}
	for i := NLEN - 2; i > m; i-- {
		r.w[i] = ((r.w[i-m] << n) & BMASK) | (r.w[i-m-1] >> (BASEBITS - n))
	}
	r.w[m] = (r.w[0] << n) & BMASK
	for i := 0; i < m; i++ {
		r.w[i] = 0
	}
}

// fshr is the fast right shift, k < BASEBITS, input normalized.
func (r *BIG) fshr(k uint) int {
	s := r.w[0] & ((Chunk(1) << k) - 1)
	for i := 0; i < NLEN-1; i++ {
		r.w[i] = (r.w[i] >> k) | ((r.w[i+1] << (BASEBITS - k)) & BMASK)
	}
	r.w[NLEN-1] = r.w[NLEN-1] >> k
	return int(s)
}

func (r *BIG) shr(k uint) {
	n := k % BASEBITS
	m := int(k / BASEBITS)
	for i := 0; i < NLEN-m-1; i++ {
		r.w[i] = (r.w[m+i] >> n) | ((r.w[m+i+1] << (BASEBITS - n)) & BMASK)
	}
	r.w[NLEN-m-1] = r.w[NLEN-1] >> n
	for i := NLEN - m; i < NLEN; i++ {
		r.w[i] = 0
	}
}

/* bit access; input normalized */

func (r *BIG) parity() int {
	return int(r.w[0] % 2)
}

func (r *BIG) bit(n int) int {
	return int((r.w[n/int(BASEBITS)] & (Chunk(1) << (uint(n) % BASEBITS))) >> (uint(n) % BASEBITS))
}

func (r *BIG) lastbits(n int) int {
	msk := (Chunk(1) << uint(n)) - 1
	r.norm()
	return int(r.w[0] & msk)
}

func (r *BIG) nbits() int {
	t := NewBIGcopy(r)
	k := NLEN - 1
	t.norm()
	for k >= 0 && t.w[k] == 0 {
		k--
	}
	if k < 0 {
		return 0
	}
	bts := int(BASEBITS) * k
	c := t.w[k]
	for c != 0 {
		c /= 2
		bts++
	}
	return bts
}

// Comp compares normalized a and b; -1, 0 or +1. Not constant time.
func Comp(a *BIG, b *BIG) int {
	for i := NLEN - 1; i >= 0; i-- {
		if a.w[i] == b.w[i] {
			continue
		}
		if a.w[i] > b.w[i] {
			return 1
		}
		return -1
	}
	return 0
}

/* constant-time conditional operations, d in {0,1} */

func (r *BIG) cmove(g *BIG, d int) {
	b := Chunk(-d)
	for i := 0; i < NLEN; i++ {
		r.w[i] ^= (r.w[i] ^ g.w[i]) & b
	}
}

func (r *BIG) cswap(g *BIG, d int) {
	b := Chunk(-d)
	for i := 0; i < NLEN; i++ {
		t := b & (r.w[i] ^ g.w[i])
		r.w[i] ^= t
		g.w[i] ^= t
	}
}

/* multiplication */

// mul returns a*b as a DBIG; a and b must be normalized.
func mul(a *BIG, b *BIG) *DBIG {
	c := NewDBIG()
	var carry Chunk
	for i := 0; i < NLEN; i++ {
		carry = 0
		for j := 0; j < NLEN; j++ {
			carry, c.w[i+j] = muladd(a.w[i], b.w[j], carry, c.w[i+j])
		}
		c.w[NLEN+i] = carry
	}
	return c
}

// sqr returns a*a as a DBIG; a must be normalized.
func sqr(a *BIG) *DBIG {
	return mul(a, a)
}

// monty performs Montgomery reduction of d modulo md with
// nd = -md^(-1) mod 2^BASEBITS. d is consumed.
func monty(md *BIG, nd Chunk, d *DBIG) *BIG {
	var m, carry Chunk
	for i := 0; i < NLEN; i++ {
		_, m = muladd(d.w[i]&BMASK, nd&BMASK, 0, 0)
		carry = 0
		for j := 0; j < NLEN; j++ {
			carry, d.w[i+j] = muladd(m, md.w[j], carry, d.w[i+j])
		}
		d.w[NLEN+i] += carry
	}
	b := NewBIG()
	for i := 0; i < NLEN; i++ {
		b.w[i] = d.w[NLEN+i]
	}
	b.norm()
	return b
}

// ssn sets r = a - m/2, halving m in place, and returns the borrow bit.
// The primitive behind constant-time reduction.
func ssn(r *BIG, a *BIG, m *BIG) int {
	n := NLEN - 1
	m.w[0] = (m.w[0] >> 1) | ((m.w[1] << (BASEBITS - 1)) & BMASK)
	for i := 1; i < n; i++ {
		m.w[i] = (m.w[i] >> 1) | ((m.w[i+1] << (BASEBITS - 1)) & BMASK)
	}
	m.w[n] = m.w[n] >> 1
	for i := 0; i < NLEN; i++ {
		r.w[i] = a.w[i] - m.w[i]
	}
	r.norm()
	return int((r.w[n] >> 63) & 1)
}

// Mod reduces r modulo m1 using an unconditional ssn/cmove ladder over the
// bit-length gap.
func (r *BIG) Mod(m1 *BIG) {
	m := NewBIGcopy(m1)
	sr := NewBIG()
	r.norm()
	if Comp(r, m) < 0 {
		return
	}
	k := 0
	for {
		m.fshl(1)
		k++
		if Comp(r, m) < 0 {
			break
		}
	}
	for k > 0 {
		sb := ssn(sr, r, m)
		r.cmove(sr, 1-sb)
		k--
	}
}

// div sets r = r / m1, same ladder as Mod with a quotient accumulator.
func (r *BIG) div(m1 *BIG) {
	m := NewBIGcopy(m1)
	sr := NewBIG()
	e := NewBIGint(1)
	b := NewBIGcopy(r)
	t := NewBIG()
	r.zero()
	b.norm()

	k := 0
	for Comp(b, m) >= 0 {
		e.fshl(1)
		m.fshl(1)
		k++
	}
	for k > 0 {
		e.fshr(1)
		sb := ssn(sr, b, m)
		d := 1 - sb
		b.cmove(sr, d)
		t.copy(r)
		t.add(e)
		t.norm()
		r.cmove(t, d)
		k--
	}
}

// Invmodp sets r = 1/r mod p via binary extended Euclid. Not constant time.
func (r *BIG) Invmodp(p *BIG) {
	r.Mod(p)
	if r.iszilch() {
		return
	}
	u := NewBIGcopy(r)
	v := NewBIGcopy(p)
	x1 := NewBIGint(1)
	x2 := NewBIG()
	t := NewBIG()
	one := NewBIGint(1)

	for Comp(u, one) != 0 && Comp(v, one) != 0 {
		for u.parity() == 0 {
			u.fshr(1)
			if x1.parity() != 0 {
				x1.add(p)
				x1.norm()
			}
			x1.fshr(1)
		}
		for v.parity() == 0 {
			v.fshr(1)
			if x2.parity() != 0 {
				x2.add(p)
				x2.norm()
			}
			x2.fshr(1)
		}
		if Comp(u, v) >= 0 {
			u.sub(v)
			u.norm()
			if Comp(x1, x2) >= 0 {
				x1.sub(x2)
			} else {
				t.copy(p)
				t.sub(x2)
				x1.add(t)
			}
			x1.norm()
		} else {
			v.sub(u)
			v.norm()
			if Comp(x2, x1) >= 0 {
				x2.sub(x1)
			} else {
				t.copy(p)
				t.sub(x1)
				x2.add(t)
			}
			x2.norm()
		}
	}
	if Comp(u, one) == 0 {
		r.copy(x1)
	} else {
		r.copy(x2)
	}
}

// Jacobi computes the Jacobi symbol (r/p), returning -1, 0 or +1.
func (r *BIG) Jacobi(p *BIG) int {
	m := 0
	t := NewBIG()
	x := NewBIG()
	n := NewBIG()
	zilch := NewBIG()
	one := NewBIGint(1)
	if p.parity() == 0 || Comp(r, zilch) == 0 || Comp(p, one) <= 0 {
		return 0
	}
	r.norm()
	x.copy(r)
	n.copy(p)
	x.Mod(p)

	for Comp(n, one) > 0 {
		if Comp(x, zilch) == 0 {
			return 0
		}
		n8 := n.lastbits(3)
		k := 0
		for x.parity() == 0 {
			k++
			x.fshr(1)
		}
		if k%2 == 1 {
			m += (n8*n8 - 1) / 8
		}
		m += (n8 - 1) * (x.lastbits(2) - 1) / 4
		t.copy(n)
		t.Mod(x)
		n.copy(x)
		x.copy(t)
		m %= 2
	}
	if m == 0 {
		return 1
	}
	return -1
}

/* serialization: big-endian, MODBYTES bytes */

func (r *BIG) ToBytes(b []byte) {
	c := NewBIGcopy(r)
	c.norm()
	for i := MODBYTES - 1; i >= 0; i-- {
		b[i] = byte(c.w[0] & 0xff)
		c.fshr(8)
	}
}

func FromBytes(b []byte) *BIG {
	m := NewBIG()
	for i := 0; i < MODBYTES; i++ {
		m.fshl(8)
		m.w[0] += Chunk(b[i]) & 0xff
	}
	return m
}

func (r *BIG) ToString() string {
	s := ""
	len := r.nbits()
	if len%4 == 0 {
		len /= 4
	} else {
		len /= 4
		len++
	}
	if len < 2*MODBYTES {
		len = 2 * MODBYTES
	}
	for i := len - 1; i >= 0; i-- {
		b := NewBIGcopy(r)
		b.shr(uint(i * 4))
		s += string("0123456789abcdef"[b.w[0]&15])
	}
	return s
}

/* modular helpers */

// Modmul returns a*b mod m
func Modmul(a1, b1, m *BIG) *BIG {
	a := NewBIGcopy(a1)
	b := NewBIGcopy(b1)
	a.Mod(m)
	b.Mod(m)
	d := mul(a, b)
	return d.mod(m)
}

// Modsqr returns a*a mod m
func Modsqr(a1, m *BIG) *BIG {
	a := NewBIGcopy(a1)
	a.Mod(m)
	d := sqr(a)
	return d.mod(m)
}

// Modneg returns -a mod m
func Modneg(a1, m *BIG) *BIG {
	a := NewBIGcopy(a1)
	a.Mod(m)
	a.rsub(m)
	a.Mod(m)
	return a
}

// Modadd returns a+b mod m
func Modadd(a1, b1, m *BIG) *BIG {
	a := NewBIGcopy(a1)
	b := NewBIGcopy(b1)
	a.Mod(m)
	b.Mod(m)
	a.add(b)
	a.norm()
	a.Mod(m)
	return a
}

// Randomnum returns a uniformly distributed value below q, fed from w.
func Randomnum(q *BIG, w io.Reader) (*BIG, error) {
	var raw [2 * MODBYTES]byte
	if _, err := io.ReadFull(w, raw[:]); err != nil {
		return nil, errors.New("entropy source failed")
	}
	d := NewDBIG()
	for i := 0; i < 2*MODBYTES; i++ {
		d.shl(8)
		d.w[0] += Chunk(raw[i]) & 0xff
	}
	return d.mod(q), nil
}

/* DBIG */

func NewDBIG() *DBIG {
	b := new(DBIG)
	for i := 0; i < DNLEN; i++ {
		b.w[i] = 0
	}
	return b
}

func NewDBIGcopy(x *DBIG) *DBIG {
	b := new(DBIG)
	for i := 0; i < DNLEN; i++ {
		b.w[i] = x.w[i]
	}
	return b
}

func NewDBIGscopy(x *BIG) *DBIG {
	b := new(DBIG)
	for i := 0; i < NLEN; i++ {
		b.w[i] = x.w[i]
	}
	for i := NLEN; i < DNLEN; i++ {
		b.w[i] = 0
	}
	return b
}

func (r *DBIG) copy(x *DBIG) {
	for i := 0; i < DNLEN; i++ {
		r.w[i] = x.w[i]
	}
}

// ucopy copies a BIG into the top half.
func (r *DBIG) ucopy(x *BIG) {
	for i := 0; i < NLEN; i++ {
		r.w[i] = 0
	}
	for i := NLEN; i < DNLEN; i++ {
		r.w[i] = x.w[i-NLEN]
	}
}

func (r *DBIG) norm() {
	carry := Chunk(0)
	for i := 0; i < DNLEN-1; i++ {
		d := r.w[i] + carry
		r.w[i] = d & BMASK
		carry = d >> BASEBITS
	}
	r.w[DNLEN-1] += carry
}

func (r *DBIG) add(x *DBIG) {
	for i := 0; i < DNLEN; i++ {
		r.w[i] += x.w[i]
	}
}

func (r *DBIG) sub(x *DBIG) {
	for i := 0; i < DNLEN; i++ {
		r.w[i] -= x.w[i]
	}
}

func (r *DBIG) rsub(x *DBIG) {
	for i := 0; i < DNLEN; i++ {
		r.w[i] = x.w[i] - r.w[i]
	}
}

func (r *DBIG) iszilch() bool {
	d := Chunk(0)
	for i := 0; i < DNLEN; i++ {
		d |= r.w[i]
	}
	return (1 & ((d - 1) >> BASEBITS)) != 0
}

func (r *DBIG) shl(k uint) {
	n := k % BASEBITS
	m := int(k / BASEBITS)
	r.w[DNLEN-1] = r.w[DNLEN-1-m] << n
	if DNLEN >= m+2 {
		r.w[DNLEN-1] |= r.w[DNLEN-m-2] >> (BASEBITS - n)
	}
	for i := DNLEN - 2; i > m; i-- {
		r.w[i] = ((r.w[i-m] << n) & BMASK) | (r.w[i-m-1] >> (BASEBITS - n))
	}
	r.w[m] = (r.w[0] << n) & BMASK
	for i := 0; i < m; i++ {
		r.w[i] = 0
	}
}

func (r *DBIG) shr(k uint) {
	n := k % BASEBITS
	m := int(k / BASEBITS)
	for i := 0; i < DNLEN-m-1; i++ {
		r.w[i] = (r.w[m+i] >> n) | ((r.w[m+i+1] << (BASEBITS - n)) & BMASK)
	}
	r.w[DNLEN-m-1] = r.w[DNLEN-1] >> n
	for i := DNLEN - m; i < DNLEN; i++ {
		r.w[i] = 0
	}
}

func dcomp(a *DBIG, b *DBIG) int {
	for i := DNLEN - 1; i >= 0; i-- {
		if a.w[i] == b.w[i] {
			continue
		}
		if a.w[i] > b.w[i] {
			return 1
		}
		return -1
	}
	return 0
}

func (r *DBIG) nbits() int {
	t := NewDBIGcopy(r)
	k := DNLEN - 1
	t.norm()
	for k >= 0 && t.w[k] == 0 {
		k--
	}
	if k < 0 {
		return 0
	}
	bts := int(BASEBITS) * k
	c := t.w[k]
	for c != 0 {
		c /= 2
		bts++
	}
	return bts
}

// mod reduces a DBIG to a BIG modulo m, classical shift-and-subtract.
func (r *DBIG) mod(m1 *BIG) *BIG {
	m := NewDBIGscopy(m1)
	dr := NewDBIG()
	r.norm()
	if dcomp(r, m) < 0 {
		return NewBIGdcopy(r)
	}
	k := 0
	for {
		m.shl(1)
		k++
		if dcomp(r, m) < 0 {
			break
		}
	}
	for k > 0 {
		m.shr(1)
		dr.copy(r)
		dr.sub(m)
		dr.norm()
		if (dr.w[DNLEN-1]>>63)&1 == 0 {
			r.copy(dr)
		}
		k--
	}
	return NewBIGdcopy(r)
}

// div divides a DBIG by a BIG, returning the quotient.
func (r *DBIG) div(m1 *BIG) *BIG {
	m := NewDBIGscopy(m1)
	dr := NewDBIG()
	e := NewBIGint(1)
	a := NewBIG()
	r.norm()

	k := 0
	for dcomp(r, m) >= 0 {
		e.fshl(1)
		m.shl(1)
		k++
	}
	for k > 0 {
		m.shr(1)
		e.shr(1)
		dr.copy(r)
		dr.sub(m)
		dr.norm()
		if (dr.w[DNLEN-1]>>63)&1 == 0 {
			r.copy(dr)
			a.add(e)
			a.norm()
		}
		k--
	}
	return a
}
