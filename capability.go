package cm256

import (
	"github.com/klauspost/cpuid/v2"
	"github.com/templexxx/xorsimd"
)

// bulkOps is the capability set described by spec.md §9: the only place a
// SIMD/scalar implementation choice matters. Selected once at Init time and
// read-only thereafter.
type bulkOps struct {
	xorInto    func(dst, src []byte)
	xorXorInto func(dst, a, b []byte)
	mulInto    func(dst, src []byte, c byte)
	muladdInto func(dst []byte, c byte, src []byte)
	divInto    func(dst, src []byte, c byte)
}

var ops bulkOps

// selectBulkOps picks the fastest capability set the running CPU supports.
// Only xor_into/xor_xor_into have an accelerated path in the retrieved
// stack (templexxx/xorsimd does plain XOR, not GF(256) multiply-accumulate),
// so mul_into/muladd_into/div_into always run the scalar implementation.
func selectBulkOps() {
	ops = bulkOps{
		xorInto:    xorIntoScalar,
		xorXorInto: xorXorIntoScalar,
		mulInto:    mulIntoScalar,
		muladdInto: muladdIntoScalar,
		divInto:    divIntoScalar,
	}

	if cpuid.CPU.Supports(cpuid.AVX2) || cpuid.CPU.Supports(cpuid.SSE2) {
		ops.xorInto = xorIntoSIMD
		ops.xorXorInto = xorXorIntoSIMD
	}
}

// xorMany XORs an arbitrary number of equal-length buffers into dst. Used by
// the decoder's m=1 fast path, which reduces to "XOR of all surviving
// originals" (the encoder's row-0 parity uses xorXorInto and xorInto
// directly). Tries the SIMD multi-buffer
// encoder first and falls back to sequential xor_into on any rejection.
func xorMany(dst []byte, srcs [][]byte) {
	if len(srcs) == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}

	if cpuid.CPU.Supports(cpuid.AVX2) || cpuid.CPU.Supports(cpuid.SSE2) {
		if n := xorsimd.Encode(dst, srcs); n == len(dst) {
			return
		}
	}

	copy(dst, srcs[0])
	for _, s := range srcs[1:] {
		ops.xorInto(dst, s)
	}
}
