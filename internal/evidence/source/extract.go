package source

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	urlPattern   = regexp.MustCompile(`https?://[^\s'"<>]+`)
	tokenPattern = regexp.MustCompile(`[A-Za-z0-9.-]+\.[A-Za-z]{2,6}`)
)

// tokenCutset is stripped from both ends of a bare domain-like token.
const tokenCutset = `.,'"()[]<>`

// Extract returns the most plausible source domain mentioned in text.
// An embedded http(s) URL wins over a bare domain-like token; ok is false when
// neither is present. Extract never panics.
func Extract(text string) (domain string, ok bool) {
	if text == "" {
		return "", false
	}

	if raw := urlPattern.FindString(text); raw != "" {
		if u, err := url.Parse(raw); err == nil {
			if host := u.Hostname(); host != "" {
				return strings.ToLower(host), true
			}
		}
	}

	if token := tokenPattern.FindString(text); token != "" {
		token = strings.ToLower(strings.Trim(token, tokenCutset))
		if token != "" {
			return token, true
		}
	}

	return "", false
}
