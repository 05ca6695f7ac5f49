package circle

import "strings"

// InviteCodeLength is the fixed length of a normalized invite code.
const InviteCodeLength = 6

// NormalizeInviteCode uppercases the input, strips everything that is not
// an ASCII letter or digit, and truncates to InviteCodeLength. Applied to
// raw user input before validation or submission.
func NormalizeInviteCode(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == InviteCodeLength {
				break
			}
		}
	}
	return b.String()
}

// ValidateInviteCodeFormat reports whether code is exactly six uppercase
// alphanumerics. It does not check whether the code exists; that is the
// circle service's job.
func ValidateInviteCodeFormat(code string) bool {
	if len(code) != InviteCodeLength {
		return false
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// FormatInviteCode renders a code for display, splitting it into two
// hyphenated groups once it is long enough ("ABC-123").
func FormatInviteCode(code string) string {
	if len(code) <= InviteCodeLength/2 {
		return code
	}
	return code[:InviteCodeLength/2] + "-" + code[InviteCodeLength/2:]
}
