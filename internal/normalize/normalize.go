// Package normalize contains the pure field-level cleanup helpers that both
// the parser and the source feeds run their raw values through.
package normalize

import (
	"regexp"
	"strings"

	"github.com/surajikf/IKF-PhoneBook/internal/model"
)

var (
	nonDigits  = regexp.MustCompile(`\D`)
	emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// FormatPhoneNumber strips everything but digits from the input and prefixes
// a best-guess international dialing prefix. Inputs with fewer than 10 digits
// are returned unmodified so that no caller input is silently dropped;
// callers must re-validate the length before trusting the result.
func FormatPhoneNumber(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	switch {
	case len(digits) == 10:
		// North American number without country code.
		return "+1" + digits
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return "+" + digits
	case len(digits) == 12 && strings.HasPrefix(digits, "91"):
		// Indian number with country code.
		return "+" + digits
	case len(digits) >= 10:
		return "+" + digits
	}
	return raw
}

// DigitCount returns how many decimal digits the string contains.
func DigitCount(s string) int {
	return len(nonDigits.ReplaceAllString(s, ""))
}

// ValidateEmail returns the input unchanged if it has a basic
// local@domain.tld shape, and the empty string otherwise. No case or
// whitespace normalization is applied.
func ValidateEmail(raw string) string {
	if emailShape.MatchString(raw) {
		return raw
	}
	return ""
}

// ParseName splits a free-text name on whitespace runs. The first token
// becomes the first name and all remaining tokens, joined with single
// spaces, become the last name. Multi-word surnames and honorifics are not
// specially handled.
func ParseName(text string) (firstName string, lastName string) {
	tokens := strings.Fields(text)
	switch len(tokens) {
	case 0:
		return "", ""
	case 1:
		return tokens[0], ""
	}
	return tokens[0], strings.Join(tokens[1:], " ")
}

// relationshipRules are checked in this fixed order; the first rule whose
// keyword occurs in the text wins.
var relationshipRules = []struct {
	keywords []string
	result   model.RelationshipType
}{
	{[]string{"client", "customer"}, model.RelationshipClient},
	{[]string{"vendor", "supplier"}, model.RelationshipVendor},
	{[]string{"lead", "prospect"}, model.RelationshipLead},
	{[]string{"partner", "associate"}, model.RelationshipPartner},
}

// DetectRelationshipType maps free text onto a relationship type by keyword.
// Text matching none of the rules resolves to Other.
func DetectRelationshipType(text string) model.RelationshipType {
	lowered := strings.ToLower(text)
	for _, rule := range relationshipRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.result
			}
		}
	}
	return model.RelationshipOther
}

// CandidateValid reports whether a candidate may be handed to the duplicate
// detector: the first name must be non-empty and the phone number must
// normalize to at least 10 digits.
func CandidateValid(c model.CandidateContact) bool {
	return c.FirstName != "" && DigitCount(FormatPhoneNumber(c.Phone)) >= 10
}

// ValidateParsedContact is the stricter post-parse check used by the
// enhanced batch path. On top of CandidateValid it rejects candidates whose
// email, if present, does not contain an '@'.
func ValidateParsedContact(c model.CandidateContact) bool {
	if !CandidateValid(c) {
		return false
	}
	return c.Email == "" || strings.Contains(c.Email, "@")
}
