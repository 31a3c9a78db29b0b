package cm256

// Decode reconstructs all original block data in place from exactly
// p.OriginalCount block descriptors, each either an original or a recovery
// block. Indices must be distinct and in [0, OriginalCount+RecoveryCount).
// On success every descriptor's Index is rewritten to its logical original
// position in [0, OriginalCount) and its Buffer holds that original's data.
func Decode(p Params, blocks []Block) error {
	if err := Init(); err != nil {
		return err
	}
	if err := p.validate(); err != nil {
		return err
	}
	if blocks == nil {
		return wrapf(ErrNullInput, "Decode requires non-nil blocks")
	}
	k, m := p.OriginalCount, p.RecoveryCount
	if len(blocks) != k {
		return wrapf(ErrMalformedInput, "expected %d blocks, got %d", k, len(blocks))
	}
	for i, blk := range blocks {
		if len(blk.Buffer) != p.BlockBytes {
			return wrapf(ErrMalformedInput, "block %d has %d bytes, want %d", i, len(blk.Buffer), p.BlockBytes)
		}
	}

	erased := make([]bool, k)
	for i := range erased {
		erased[i] = true
	}

	recoverySeen := make([]bool, m)

	var originals []Block
	var recoverySlots []int // indices into blocks, for descriptors carrying a recovery index

	for i, blk := range blocks {
		switch {
		case blk.Index < 0 || blk.Index >= k+m:
			return wrapf(ErrMalformedInput, "block %d carries out-of-range index %d", i, blk.Index)
		case blk.Index < k:
			if !erased[blk.Index] {
				return wrapf(ErrMalformedInput, "duplicate original index %d", blk.Index)
			}
			erased[blk.Index] = false
			originals = append(originals, blk)
		default:
			ord := blk.Index - k
			if recoverySeen[ord] {
				return wrapf(ErrMalformedInput, "duplicate recovery index %d", blk.Index)
			}
			recoverySeen[ord] = true
			recoverySlots = append(recoverySlots, i)
		}
	}

	r := len(recoverySlots)

	erasures := make([]int, 0, r)
	for pos := 0; pos < k && len(erasures) < r; pos++ {
		if erased[pos] {
			erasures = append(erasures, pos)
		}
	}

	if r == 0 {
		return nil
	}
	if k == 1 {
		blocks[0].Index = 0
		return nil
	}

	n := p.BlockBytes
	x0 := byte(k)

	// Single-erasure fast path: only takes the all-XOR shortcut when m=1,
	// i.e. the lone recovery block is necessarily the all-ones parity row
	// (x_i = k+0 = k = x0). When r=1 but m>1 the provided recovery need not
	// be that row, so the general LDU path (below) applies instead — it
	// degenerates correctly to a 1x1 system in that case.
	if m == 1 {
		recSlot := recoverySlots[0]
		dst := blocks[recSlot].Buffer

		origBufs := make([][]byte, len(originals))
		for i, o := range originals {
			origBufs[i] = o.Buffer
		}

		scratch := make([]byte, n)
		xorMany(scratch, origBufs)
		ops.xorInto(dst, scratch)

		blocks[recSlot].Index = erasures[0]
		return nil
	}

	// General path, step 1: eliminate known originals from every provided
	// recovery row so each recovery buffer becomes a pure linear
	// combination of the r unknown originals.
	for _, orig := range originals {
		row := byte(orig.Index)
		for _, slot := range recoverySlots {
			xi := byte(blocks[slot].Index)
			e := element(xi, x0, row)
			ops.muladdInto(blocks[slot].Buffer, e, orig.Buffer)
		}
	}

	// Step 2: LDU-decompose the r×r submatrix selecting the provided
	// recovery rows (xs) and erased original columns (ys).
	xs := make([]byte, r)
	for t, slot := range recoverySlots {
		xs[t] = byte(blocks[slot].Index)
	}
	ys := make([]byte, r)
	for s, pos := range erasures {
		ys[s] = byte(pos)
	}

	decomp := buildLDU(xs, ys, x0)

	// Step 3: solve in place, then rewrite each recovery descriptor's index
	// to the erasure position it now holds.
	recBufs := make([][]byte, r)
	for t, slot := range recoverySlots {
		recBufs[t] = blocks[slot].Buffer
	}
	decomp.solve(recBufs)

	for t, slot := range recoverySlots {
		blocks[slot].Index = erasures[t]
	}

	return nil
}
