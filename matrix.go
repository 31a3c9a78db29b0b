package cm256

// element computes a single entry of the normalized Cauchy generator
// matrix: (y_j XOR x_0) / (x_i XOR y_j). Row 0 (x_i == x_0) is all-ones by
// construction, since y_j XOR x_0 == x_i XOR y_j when x_i == x_0; element
// returns 1 for that row directly. The encoder skips element for row 0 and
// uses plain XOR parity; the decoder's elimination step calls it for row 0.
func element(xi, x0, yj byte) byte {
	if xi == x0 {
		return 1
	}
	return gfDiv(gfAdd(yj, x0), gfAdd(xi, yj))
}
