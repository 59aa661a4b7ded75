package validation

import (
	"net/url"
	"strings"
)

// URL checks that a non-empty value is an absolute http(s) URL with a host.
func URL(value any, opts Options) Result {
	if res := Required(value, opts); !res.Valid {
		return res
	}
	if IsEmpty(value) {
		return OK()
	}

	s, ok := value.(string)
	if !ok {
		return Fail(CodeURL, nil)
	}
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Host == "" {
		return Fail(CodeURL, nil)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return OK()
	default:
		return Fail(CodeURL, nil)
	}
}

// URLValidator exposes URL as a Validator.
var URLValidator Validator = Func(URL)
