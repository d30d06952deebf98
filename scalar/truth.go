package scalar

// truthTokens is initialized once and never mutated
var truthTokens = map[string]struct{}{
	"t":    {},
	"true": {},
	"True": {},
	"y":    {},
	"yes":  {},
	"1":    {},
	"aye":  {},
	"T":    {},
	"TRUE": {},
	"ok":   {},
}

// IsTruthToken returns true if text is recognized as boolean true (case sensitive)
func IsTruthToken(text string) bool {
	_, ok := truthTokens[text]
	return ok
}

// TruthTokens returns a copy of recognized boolean true tokens
func TruthTokens() []string {
	ret := make([]string, 0, len(truthTokens))
	for token := range truthTokens {
		ret = append(ret, token)
	}
	return ret
}
