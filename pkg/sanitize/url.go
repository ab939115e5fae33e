package sanitize

import (
	"net/url"
	"strings"
)

// allowedProtocols is the whitelist for href/src values. Everything else
// (javascript:, data:, vbscript:, file:, protocol-relative) is rejected.
var allowedProtocols = []string{"http://", "https://", "mailto:"}

// IsValidProtocol reports whether raw starts with a whitelisted protocol,
// case-insensitively. Empty and malformed strings are rejected.
func IsValidProtocol(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, p := range allowedProtocols {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// IsValidURL is the stricter variant of IsValidProtocol: the value must also
// parse as a well-formed URL with a non-empty host (or opaque part, for
// mailto). When requireHTTPS is set the scheme must be exactly https.
func IsValidURL(raw string, requireHTTPS bool) bool {
	if !IsValidProtocol(raw) {
		return false
	}
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	if requireHTTPS && scheme != "https" {
		return false
	}
	if scheme == "mailto" {
		return u.Opaque != ""
	}
	return u.Host != ""
}
