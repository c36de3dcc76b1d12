package env

import (
	"net/url"
	"strings"
)

// RedactSecret masks a secret, showing only the first 4 and
// last 4 characters.
func RedactSecret(secret string) string {
	if len(secret) <= 8 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:4] +
		strings.Repeat("*", len(secret)-8) +
		secret[len(secret)-4:]
}

// RedactURL masks credentials in a URL string.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if u.User != nil {
		password, hasPassword := u.User.Password()
		if hasPassword {
			u.User = url.UserPassword(
				u.User.Username(), RedactSecret(password),
			)
		}
	}
	return u.String()
}

// RedactHeaders masks sensitive header values.
func RedactHeaders(
	headers map[string]string,
) map[string]string {
	sensitive := map[string]bool{
		"authorization":       true,
		"x-api-key":           true,
		"api-key":             true,
		"x-auth-token":        true,
		"cookie":              true,
		"set-cookie":          true,
		"proxy-authorization": true,
	}

	result := make(map[string]string, len(headers))
	for k, v := range headers {
		if sensitive[strings.ToLower(k)] {
			result[k] = RedactSecret(v)
		} else {
			result[k] = v
		}
	}
	return result
}
