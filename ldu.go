package cm256

// lduDecomp holds the packed LDU factorization of the r×r submatrix
// selecting the provided recovery rows and erased original columns
// (spec.md §4.5.3). Total storage is r² bytes: U strictly-upper packed by
// column (u[j] has length j), diag length r, L strictly-lower packed by
// column (l[t] has length r-1-t) — matching the working-memory sizing
// spec.md §4.5.4 calls out. Go gives no portable caller-invisible
// stack/heap switch at a 2KiB threshold the way the reference C does, so
// this always allocates; the observable contract (identical solved output)
// is unchanged either way, which is what spec.md actually requires.
type lduDecomp struct {
	u    [][]byte // u[j][t] = U_{t,j}, t < j
	diag []byte   // length r
	l    [][]byte // l[t][i] = L_{t+1+i,t}, i in [0, r-1-t)
}

// buildLDU computes the LDU decomposition of M[t][s] = element(xs[t], x0, ys[s])
// via the Schur-complement Cauchy-structured recurrence of spec.md §4.5.3,
// without ever materializing M.
func buildLDU(xs, ys []byte, x0 byte) lduDecomp {
	r := len(xs)
	d := lduDecomp{
		u:    make([][]byte, r),
		diag: make([]byte, r),
		l:    make([][]byte, r),
	}
	for j := 0; j < r; j++ {
		d.u[j] = make([]byte, j)
	}
	for t := 0; t < r; t++ {
		d.l[t] = make([]byte, r-1-t)
	}

	g := make([]byte, r)
	b := make([]byte, r)
	for i := range g {
		g[i] = 1
		b[i] = 1
	}

	for t := 0; t < r-1; t++ {
		xt, yt := xs[t], ys[t]
		dtt := gfAdd(xt, yt)
		ltt := gfDiv(g[t], dtt)
		utt := gfMul(gfDiv(b[t], dtt), gfAdd(x0, yt))
		d.diag[t] = gfMul(gfMul(dtt, ltt), utt)

		width := r - t - 1
		lrow := make([]byte, width)
		urow := make([]byte, width)

		for i, s := 0, t+1; s < r; i, s = i+1, s+1 {
			lrow[i] = gfDiv(g[s], gfAdd(xs[s], yt))
			urow[i] = gfDiv(b[s], gfAdd(xt, ys[s]))

			g[s] = gfMul(g[s], gfDiv(gfAdd(xs[s], xt), gfAdd(xs[s], yt)))
			b[s] = gfMul(b[s], gfDiv(gfAdd(ys[s], yt), gfAdd(ys[s], xt)))
		}

		ops.divInto(lrow, lrow, ltt)
		ops.divInto(urow, urow, utt)

		copy(d.l[t], lrow)
		for i, s := 0, t+1; s < r; i, s = i+1, s+1 {
			d.u[s][t] = urow[i]
		}
	}

	last := r - 1
	d.diag[last] = gfDiv(gfMul(gfMul(g[last], b[last]), gfAdd(x0, ys[last])), gfAdd(xs[last], ys[last]))

	for j := 1; j < r; j++ {
		factor := gfAdd(x0, ys[j])
		ops.mulInto(d.u[j], d.u[j], factor)
	}

	return d
}

// solve runs forward substitution (L), diagonal division, then back
// substitution (U) over the r recovery buffers in place, per spec.md
// §4.5.3 step 3. recBufs[t] must hold the t-th recovery block's
// post-elimination contents on entry and holds the reconstructed original
// for erasure position t on return.
func (d lduDecomp) solve(recBufs [][]byte) {
	r := len(recBufs)

	for t := 0; t < r-1; t++ {
		for i, s := 0, t+1; s < r; i, s = i+1, s+1 {
			ops.muladdInto(recBufs[s], d.l[t][i], recBufs[t])
		}
	}

	for t := 0; t < r; t++ {
		ops.divInto(recBufs[t], recBufs[t], d.diag[t])
	}

	for t := r - 1; t > 0; t-- {
		for s := 0; s < t; s++ {
			ops.muladdInto(recBufs[s], d.u[t][s], recBufs[t])
		}
	}
}
