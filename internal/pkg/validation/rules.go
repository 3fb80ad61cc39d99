package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Person names: letters, spaces and limited punctuation only
	NamePattern = `^[A-Za-z][A-Za-z .'-]*$`

	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Name  *regexp.Regexp
	Email *regexp.Regexp
}{
	Name:  regexp.MustCompile(NamePattern),
	Email: regexp.MustCompile(EmailPattern),
}

// ValidName reports whether a person name is acceptable for persistence.
func ValidName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > NameMaxLength {
		return false
	}
	return CompiledPatterns.Name.MatchString(name)
}

// ValidEmail reports whether the string looks like an email address.
func ValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}
