package sanitize

import (
	"encoding/base64"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

const svgDataPrefix = "data:image/svg+xml;base64,"

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy

	dashiconPattern = regexp.MustCompile(`^dashicons-[a-z0-9-]+$`)
)

// Icon cleans a menu icon reference. Accepted forms are a dashicons class,
// "none", "div", an http(s) image URL, a base64 SVG data URI and inline SVG
// markup, which is reduced to drawing elements. Anything else becomes "".
func Icon(raw string) string {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)

	switch {
	case trimmed == "", lower == "none", lower == "div":
		return lower
	case dashiconPattern.MatchString(lower):
		return lower
	case strings.HasPrefix(trimmed, svgDataPrefix):
		if _, err := base64.StdEncoding.DecodeString(trimmed[len(svgDataPrefix):]); err != nil {
			return ""
		}
		return trimmed
	case strings.HasPrefix(lower, "<svg"):
		return strings.TrimSpace(iconSanitizer().Sanitize(trimmed))
	}

	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	return trimmed
}

func iconSanitizer() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc", "defs", "clipPath",
		)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "aria-hidden", "role", "focusable",
		).OnElements("svg")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"fill-rule", "clip-rule",
			).OnElements(el)
		}
		policy.AllowAttrs("id").OnElements("clipPath", "defs", "g")

		iconPolicy = policy
	})
	return iconPolicy
}
