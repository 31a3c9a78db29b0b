package cm256

import "errors"

func isSentinel(err, sentinel error) bool {
	return errors.Is(err, sentinel)
}

func mustBlocks(data [][]byte, baseIndex int) []Block {
	blocks := make([]Block, len(data))
	for i, d := range data {
		blocks[i] = Block{Buffer: d, Index: baseIndex + i}
	}
	return blocks
}

func fillConst(n int, v byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = v
	}
	return b
}
