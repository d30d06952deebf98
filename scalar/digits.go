package scalar

// DigitRun returns the first contiguous run of decimal digits in text.
// Characters before the run are skipped, the run ends at the first non digit after it started.
func DigitRun(text string) (string, bool) {
	start := -1
	for i := 0; i < len(text); i++ {
		isDigit := text[i] >= '0' && text[i] <= '9'
		if start == -1 {
			if isDigit {
				start = i
			}
			continue
		}
		if !isDigit {
			return text[start:i], true
		}
	}
	if start == -1 {
		return "", false
	}
	return text[start:], true
}
