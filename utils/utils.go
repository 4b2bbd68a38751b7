package utils

// ContainsString returns true iff the provided string slice hay contains string
// needle.
func ContainsString(hay []string, needle string) bool {
	for _, str := range hay {
		if str == needle {
			return true
		}
	}
	return false
}

// DedupeStrings keeps the first occurrence of each string, preserving order.
func DedupeStrings(in []string) []string {
	out := []string{}
	for _, s := range in {
		if !ContainsString(out, s) {
			out = append(out, s)
		}
	}
	return out
}
