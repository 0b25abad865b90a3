package util

import (
	"crypto/rand"
	"regexp"
	"strings"
)

const digits = "0123456789"

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Domains commonly used by throwaway inbox providers.
var disposableDomains = map[string]struct{}{
	"mailinator.com":     {},
	"guerrillamail.com":  {},
	"guerrillamail.net":  {},
	"10minutemail.com":   {},
	"tempmail.com":       {},
	"temp-mail.org":      {},
	"throwawaymail.com":  {},
	"yopmail.com":        {},
	"fakeinbox.com":      {},
	"trashmail.com":      {},
	"getnada.com":        {},
	"maildrop.cc":        {},
	"dispostable.com":    {},
	"mintemail.com":      {},
	"sharklasers.com":    {},
	"spam4.me":           {},
	"mailnesia.com":      {},
	"mohmal.com":         {},
	"emailondeck.com":    {},
	"tempinbox.com":      {},
	"mytemp.email":       {},
	"burnermail.io":      {},
	"spamgourmet.com":    {},
	"incognitomail.org":  {},
	"anonbox.net":        {},
	"mail-temporaire.fr": {},
}

// GenerateCode returns a numeric one-time code drawn from a CSPRNG.
// Bytes of 250 and above are discarded so every digit is equally likely.
func GenerateCode(length int) string {
	code := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(code) < length {
		if _, err := rand.Read(buf); err != nil {
			panic(err)
		}
		for _, b := range buf {
			if b >= 250 {
				continue
			}
			code = append(code, digits[int(b)%len(digits)])
			if len(code) == length {
				break
			}
		}
	}
	return string(code)
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsDisposableEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	_, found := disposableDomains[domain]
	return found
}

// TruncateRunes shortens s to at most max runes without splitting a
// multibyte character.
func TruncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}

func PtrString(s string) *string {
	return &s
}

func PtrUint64(i uint64) *uint64 {
	return &i
}
