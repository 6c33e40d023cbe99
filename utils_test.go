package bn254

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

func fromHex(size int, hexStrs ...string) []byte {
	var out []byte
	for _, hexStr := range hexStrs {
		if hexStr[:2] == "0x" {
			hexStr = hexStr[2:]
		}
		if len(hexStr)%2 == 1 {
			hexStr = "0" + hexStr
		}
		bytes, err := hex.DecodeString(hexStr)
		if err != nil {
			panic(err)
		}
		if size > 0 {
			padded := make([]byte, size)
			copy(padded[size-len(bytes):], bytes)
			out = append(out, padded...)
		} else {
			out = append(out, bytes...)
		}
	}
	return out
}

func bigFromHex(hexStr string) *BIG {
	return FromBytes(fromHex(MODBYTES, hexStr))
}

// randScalar returns a random scalar below the group order.
func randScalar() *BIG {
	s, err := Randomnum(NewBIGints(CURVE_Order), rand.Reader)
	if err != nil {
		panic(err)
	}
	return s
}

// randFP returns a random reduced field element.
func randFP() *FP {
	s, err := Randomnum(NewBIGints(Modulus), rand.Reader)
	if err != nil {
		panic(err)
	}
	return NewFPbig(s)
}

func randFP2() *FP2 {
	return NewFP2fps(randFP(), randFP())
}

func randFP4() *FP4 {
	return NewFP4fp2s(randFP2(), randFP2())
}

func randFP12() *FP12 {
	return NewFP12fp4s(randFP4(), randFP4(), randFP4())
}

// randGT returns a random element of the cyclotomic subgroup of order r.
func randGT() *FP12 {
	return Fexp(Ate(ECP2_generator(), G1mul(ECP_generator(), randScalar())))
}

func bigToGoBig(b *BIG) *big.Int {
	var t [MODBYTES]byte
	b.ToBytes(t[:])
	return new(big.Int).SetBytes(t[:])
}

func goBigToBIG(b *big.Int) *BIG {
	bytes := b.Bytes()
	padded := make([]byte, MODBYTES)
	copy(padded[MODBYTES-len(bytes):], bytes)
	return FromBytes(padded)
}

var goModulus, _ = new(big.Int).SetString("2523648240000001ba344d80000000086121000000000013a700000000000013", 16)
