package account

import "strconv"

// InvalidIdentifier is the sentinel stored on accounts whose national ID or
// tax ID failed format validation. Such accounts exist but are excluded from
// the uniqueness rule at the API boundary.
const InvalidIdentifier = "Invalid"

// ValidPESEL reports whether s is a syntactically valid national personal ID.
// Only the length is checked; no checksum validation is performed.
func ValidPESEL(s string) bool {
	return len(s) == 11
}

// ValidNIP reports whether s is a syntactically valid business tax ID.
func ValidNIP(s string) bool {
	return len(s) == 10
}

// BirthYear extracts the encoded birth year from a personal ID. The two
// leading digits are the year within the century and the next two encode the
// century through a month offset: 1-12 is 1900, 21-32 is 2000, 41-52 is 2100,
// 61-72 is 2200 and 81-92 is 1800. It returns false unless the ID is exactly
// 11 digits with a month code in one of those ranges.
func BirthYear(pesel string) (int, bool) {
	if len(pesel) != 11 || !digitsOnly(pesel) {
		return 0, false
	}
	yy, _ := strconv.Atoi(pesel[0:2])
	mm, _ := strconv.Atoi(pesel[2:4])

	var century int
	switch {
	case mm >= 1 && mm <= 12:
		century = 1900
	case mm >= 21 && mm <= 32:
		century = 2000
	case mm >= 41 && mm <= 52:
		century = 2100
	case mm >= 61 && mm <= 72:
		century = 2200
	case mm >= 81 && mm <= 92:
		century = 1800
	default:
		return 0, false
	}
	return century + yy, true
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
