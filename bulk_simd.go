package cm256

import "github.com/templexxx/xorsimd"

// SIMD-accelerated XOR backend, selected at Init time by selectBulkOps when
// the host CPU supports AVX2/SSE2. mul_into/muladd_into/div_into have no
// GF(256)-aware SIMD implementation in the retrieved dependency stack and
// stay on the scalar path unconditionally (bulk_scalar.go), see DESIGN.md.

// xorIntoSIMD: dst[i] ^= src[i], accelerated.
func xorIntoSIMD(dst, src []byte) {
	xorsimd.Bytes(dst, dst, src)
}

// xorXorIntoSIMD: dst[i] = a[i] ^ b[i], accelerated.
func xorXorIntoSIMD(dst, a, b []byte) {
	xorsimd.Bytes(dst, a, b)
}
