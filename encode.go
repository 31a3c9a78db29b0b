package cm256

// Encode produces p.RecoveryCount recovery blocks from p.OriginalCount
// original blocks. originals must hold exactly p.OriginalCount blocks with
// indices 0..OriginalCount-1 in order; outRecovery must be exactly
// p.RecoveryCount*p.BlockBytes bytes and receives the recovery blocks
// concatenated in ordinal order. On any error outRecovery's contents are
// unspecified.
func Encode(p Params, originals []Block, outRecovery []byte) error {
	if err := Init(); err != nil {
		return err
	}
	if err := p.validate(); err != nil {
		return err
	}
	if originals == nil || outRecovery == nil {
		return wrapf(ErrNullInput, "Encode requires non-nil originals and outRecovery")
	}
	if len(originals) != p.OriginalCount {
		return wrapf(ErrMalformedInput, "expected %d original blocks, got %d", p.OriginalCount, len(originals))
	}
	if len(outRecovery) != p.RecoveryCount*p.BlockBytes {
		return wrapf(ErrMalformedInput, "outRecovery must be %d bytes, got %d", p.RecoveryCount*p.BlockBytes, len(outRecovery))
	}
	for i, b := range originals {
		if b.Index != i {
			return wrapf(ErrMalformedInput, "original block %d carries index %d", i, b.Index)
		}
		if len(b.Buffer) != p.BlockBytes {
			return wrapf(ErrMalformedInput, "original block %d has %d bytes, want %d", i, len(b.Buffer), p.BlockBytes)
		}
	}

	n := p.BlockBytes
	k := p.OriginalCount

	// Trivial case: every Cauchy row collapses to 1 when there's only one
	// original, so each recovery block is a byte-for-byte copy.
	if k == 1 {
		for b := 0; b < p.RecoveryCount; b++ {
			copy(outRecovery[b*n:(b+1)*n], originals[0].Buffer)
		}
		return nil
	}

	x0 := byte(k)
	for b := 0; b < p.RecoveryCount; b++ {
		rec := outRecovery[b*n : (b+1)*n]
		xi := byte(k + b)

		if xi == x0 {
			// Row 0: all-ones, plain XOR parity.
			ops.xorXorInto(rec, originals[0].Buffer, originals[1].Buffer)
			for j := 2; j < k; j++ {
				ops.xorInto(rec, originals[j].Buffer)
			}
			continue
		}

		ops.mulInto(rec, originals[0].Buffer, element(xi, x0, 0))
		for j := 1; j < k; j++ {
			ops.muladdInto(rec, element(xi, x0, byte(j)), originals[j].Buffer)
		}
	}

	return nil
}
