package cart

import "regexp"

var studentIDPattern = regexp.MustCompile(`^1010[0-9]{3}$`)

// ValidateStudentID checks the SUTD id format: "1010" followed by three digits.
// Input is not trimmed.
func ValidateStudentID(raw string) bool {
	return studentIDPattern.MatchString(raw)
}
