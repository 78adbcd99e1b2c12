package orderx

// PaddingDigits returns the prefix width used by the first entry (0 when
// there are none) and the width needed to write every index 0..len-1,
// never less than minWidth
func PaddingDigits(entries []Entry, minWidth int) (used, needed int) {
	needed = minWidth
	if len(entries) > 0 {
		needed = max(minWidth, DigitsFor(len(entries)-1))
		used = entries[0].Name.Width()
	}

	return used, needed
}

// DigitsFor returns the number of decimal digits of n. Negative n counts as 0
func DigitsFor(n int) int {
	digits := 1
	for n >= 10 {
		n /= 10
		digits++
	}

	return digits
}
