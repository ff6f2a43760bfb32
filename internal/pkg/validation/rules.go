package validation

import "regexp"

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Phone pattern - digits with optional leading + and separators
	PhonePattern = `^\+?[0-9][0-9 \-]{6,19}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// IsValidEmail reports whether s looks like an email address
func IsValidEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(s)
}

// IsValidPhone reports whether s looks like a phone number
func IsValidPhone(s string) bool {
	return CompiledPatterns.Phone.MatchString(s)
}
