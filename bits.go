package fit

// IsBitSet reports whether bit i (0 = least significant) of b is set.
func IsBitSet(b byte, i uint) bool {
	return b&(1<<i) != 0
}

// IsBitNotSet reports whether bit i of b is clear.
func IsBitNotSet(b byte, i uint) bool {
	return !IsBitSet(b, i)
}

// BitRange returns the zero-based, inclusive bit range [lo, hi] of b as an
// unsigned value, lo and hi counted from the least significant bit.
func BitRange(b byte, lo, hi uint) byte {
	width := hi - lo + 1
	mask := byte(1<<width - 1)
	return (b >> lo) & mask
}
