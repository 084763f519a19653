package members

import "strings"

// Matches reports whether term appears, ignoring case, in the name, email or
// role of r.
func Matches(term string, r Record) bool {
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(r.Name), t) ||
		strings.Contains(strings.ToLower(r.Email), t) ||
		strings.Contains(strings.ToLower(r.Role), t)
}

// Filter returns the records matching term, in their original order.
func Filter(records []Record, term string) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if Matches(term, r) {
			out = append(out, r)
		}
	}
	return out
}
