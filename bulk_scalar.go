package cm256

import "unsafe"

// Scalar fallback implementations of the bulk byte-buffer primitives.
// These are the specification: any accelerated backend (bulk_simd.go) must
// produce byte-identical output. The XOR loops work on 8-byte words with
// unsafe uint64 XORs and a byte tail, in the style the teacher codebase uses
// for its own slice XOR (gfAddSlice); the multiply loops take 8 bytes per
// outer iteration with one table lookup per byte, and divIntoScalar is a
// plain byte loop.

// xorIntoScalar: dst[i] ^= src[i] for i in [0,n).
func xorIntoScalar(dst, src []byte) {
	n := len(dst)
	i := 0
	for i+8 <= n {
		*(*uint64)(unsafe.Pointer(&dst[i])) ^= *(*uint64)(unsafe.Pointer(&src[i]))
		i += 8
	}
	for i < n {
		dst[i] ^= src[i]
		i++
	}
}

// xorXorIntoScalar: dst[i] = a[i] ^ b[i] for i in [0,n). Three-operand form
// used to seed the all-ones parity row without a separate zero-then-xor pass.
func xorXorIntoScalar(dst, a, b []byte) {
	n := len(dst)
	i := 0
	for i+8 <= n {
		*(*uint64)(unsafe.Pointer(&dst[i])) =
			*(*uint64)(unsafe.Pointer(&a[i])) ^ *(*uint64)(unsafe.Pointer(&b[i]))
		i += 8
	}
	for i < n {
		dst[i] = a[i] ^ b[i]
		i++
	}
}

// mulIntoScalar: dst[i] = c * src[i]. dst and src may alias.
func mulIntoScalar(dst, src []byte, c byte) {
	switch c {
	case 0:
		for i := range dst {
			dst[i] = 0
		}
		return
	case 1:
		if &dst[0] != &src[0] {
			copy(dst, src)
		}
		return
	}

	logC := tables.log[c]
	n := len(dst)
	i := 0
	for i+8 <= n {
		for j := i; j < i+8; j++ {
			if src[j] == 0 {
				dst[j] = 0
			} else {
				dst[j] = tables.exp[(int(tables.log[src[j]])+int(logC))%255]
			}
		}
		i += 8
	}
	for i < n {
		if src[i] == 0 {
			dst[i] = 0
		} else {
			dst[i] = tables.exp[(int(tables.log[src[i]])+int(logC))%255]
		}
		i++
	}
}

// muladdIntoScalar: dst[i] ^= c * src[i].
func muladdIntoScalar(dst []byte, c byte, src []byte) {
	if c == 0 {
		return
	}

	logC := tables.log[c]
	n := len(dst)
	i := 0
	for i+8 <= n {
		for j := i; j < i+8; j++ {
			if src[j] != 0 {
				dst[j] ^= tables.exp[(int(tables.log[src[j]])+int(logC))%255]
			}
		}
		i += 8
	}
	for i < n {
		if src[i] != 0 {
			dst[i] ^= tables.exp[(int(tables.log[src[i]])+int(logC))%255]
		}
		i++
	}
}

// divIntoScalar: dst[i] = src[i] / c. c must be non-zero. dst and src may alias.
func divIntoScalar(dst, src []byte, c byte) {
	if c == 0 {
		panic("cm256: division by zero in GF(256)")
	}
	if c == 1 {
		if &dst[0] != &src[0] {
			copy(dst, src)
		}
		return
	}

	logC := int(tables.log[c])
	for i := range dst {
		if src[i] == 0 {
			dst[i] = 0
		} else {
			dst[i] = tables.exp[(int(tables.log[src[i]])-logC+255)%255]
		}
	}
}
