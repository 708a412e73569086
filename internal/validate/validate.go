package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"lifelink/internal/domain"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	rePhone = regexp.MustCompile(`^\+?[0-9 ()-]{6,20}$`)
)

// MaxUnits caps a single request so a typo cannot ask for a blood bank's worth.
const MaxUnits = 100

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 80 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Name validates a displayable person or hospital name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 80 {
		return "", false
	}
	return s, true
}

// Text trims free text (reasons, cities) and clamps it to max bytes without
// splitting a multi-byte character.
func Text(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) > max {
		s = s[:max]
		for len(s) > 0 && !utf8.ValidString(s) {
			s = s[:len(s)-1]
		}
	}
	return s
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	return s, rePhone.MatchString(s)
}

// BloodType normalises case and checks membership in the ABO/Rh set.
func BloodType(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, bt := range domain.BloodTypes {
		if s == bt {
			return s, true
		}
	}
	return "", false
}

// Urgency accepts the four tiers case-insensitively; empty means Normal.
func Urgency(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.UrgencyNormal, true
	}
	for _, u := range []string{domain.UrgencyCritical, domain.UrgencyUrgent, domain.UrgencyActive, domain.UrgencyNormal} {
		if strings.EqualFold(s, u) {
			return u, true
		}
	}
	return "", false
}

func Units(n int) bool { return n >= 1 && n <= MaxUnits }

func Role(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return domain.RoleDonor, true
	}
	return s, s == domain.RoleDonor || s == domain.RoleHospital
}

// ID parses a positive integer path or query parameter.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Limit parses a page size, falling back to def and clamping to max.
func Limit(s string, def, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

// Password enforces length and character-class rules.
func Password(s string) bool {
	l := len(s)
	if l < 8 || l > 64 {
		return false
	}
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			hasLower = true
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasLower && hasUpper && hasDigit && hasSymbol
}
