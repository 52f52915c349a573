package auth

import "strings"

const (
	ClientWeb    = "WEB"
	ClientMobile = "MOBILE"
	ClientAPI    = "API"
)

// resolveClientType prefers the explicit X-Client-Type header and falls back
// to sniffing the user agent.
func resolveClientType(header, userAgent string) string {
	switch strings.ToUpper(strings.TrimSpace(header)) {
	case ClientWeb:
		return ClientWeb
	case ClientMobile:
		return ClientMobile
	case ClientAPI:
		return ClientAPI
	}

	if strings.Contains(userAgent, "Mozilla/") {
		return ClientWeb
	}
	return ClientAPI
}
