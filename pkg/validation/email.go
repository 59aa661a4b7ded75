package validation

import (
	"net/mail"
	"strings"
)

// Email checks that a non-empty value is a plain email address.
func Email(value any, opts Options) Result {
	if res := Required(value, opts); !res.Valid {
		return res
	}
	if IsEmpty(value) {
		return OK()
	}

	s, ok := value.(string)
	if !ok || !isEmail(s) {
		return Fail(CodeEmail, nil)
	}
	return OK()
}

// EmailValidator exposes Email as a Validator.
var EmailValidator Validator = Func(Email)

func isEmail(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil {
		return false
	}
	// reject "Name <addr>" forms
	if addr.Address != trimmed {
		return false
	}

	at := strings.LastIndex(trimmed, "@")
	if at <= 0 {
		return false
	}
	domain := trimmed[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
