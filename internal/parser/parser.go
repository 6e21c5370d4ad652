// Package parser turns unstructured pasted text into candidate contact
// records. A fixed chain of strategies is tried per line; the first strategy
// that produces a result wins and the remaining ones are never attempted.
package parser

import (
	"regexp"
	"strings"

	"github.com/surajikf/IKF-PhoneBook/internal/model"
	"github.com/surajikf/IKF-PhoneBook/internal/normalize"
)

// strategy parses one trimmed, non-empty line into a candidate, or returns
// nil if the line does not fit its format.
type strategy func(line string) *model.CandidateContact

// lineStrategies is the default chain. The ordering favors high-confidence
// structured formats over best-effort text scraping so that the regex sweep
// cannot misread well-delimited input.
var lineStrategies = []strategy{
	parseCommaSeparated,
	parseTabSeparated,
	parseSpaceSeparated,
	parsePattern,
}

// enhancedStrategies additionally tries the "Name - Phone - Email" format
// after everything else has failed.
var enhancedStrategies = append(append([]strategy{}, lineStrategies...), parseDashSeparated)

// ParseLine runs the default strategy chain on one line. It returns nil if
// every strategy fails.
func ParseLine(line string) *model.CandidateContact {
	return runChain(lineStrategies, line)
}

// ParseLineEnhanced runs the strategy chain including the dash-separated
// fallback.
func ParseLineEnhanced(line string) *model.CandidateContact {
	return runChain(enhancedStrategies, line)
}

func runChain(chain []strategy, line string) *model.CandidateContact {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	for _, parse := range chain {
		if contact := parse(line); contact != nil {
			return contact
		}
	}
	return nil
}

// parseCommaSeparated handles "Name, Phone[, Email[, Type]]". Invalid phone
// or email values are carried through unchanged or dropped here; validity is
// enforced later at the batch level.
func parseCommaSeparated(line string) *model.CandidateContact {
	return parseDelimited(line, ",")
}

// parseTabSeparated handles the same field order with tab delimiters, as
// produced by pasting from a spreadsheet.
func parseTabSeparated(line string) *model.CandidateContact {
	return parseDelimited(line, "\t")
}

func parseDelimited(line string, delimiter string) *model.CandidateContact {
	if !strings.Contains(line, delimiter) {
		return nil
	}
	parts := strings.Split(line, delimiter)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 {
		return nil
	}
	firstName, lastName := normalize.ParseName(parts[0])
	contact := &model.CandidateContact{
		FirstName:        firstName,
		LastName:         lastName,
		Phone:            normalize.FormatPhoneNumber(parts[1]),
		RelationshipType: model.RelationshipOther,
		Source:           model.SourceRawData,
	}
	if len(parts) > 2 {
		contact.Email = normalize.ValidateEmail(parts[2])
	}
	if len(parts) > 3 {
		contact.RelationshipType = normalize.DetectRelationshipType(parts[3])
	}
	return contact
}

// phoneToken matches tokens that consist of digits and common phone
// punctuation. A token additionally needs at least 10 digits to be taken
// for a phone; shorter digit runs, including fragments of a grouped number
// like "(123)" or "456-7890", stay in the name so that the line falls
// through to the whole-line pattern sweep instead of capturing a partial
// phone here.
var phoneToken = regexp.MustCompile(`^\+?[\d().-]+$`)

var relationshipWords = map[string]model.RelationshipType{
	"client":  model.RelationshipClient,
	"vendor":  model.RelationshipVendor,
	"lead":    model.RelationshipLead,
	"partner": model.RelationshipPartner,
	"other":   model.RelationshipOther,
}

// parseSpaceSeparated classifies whitespace-separated tokens one by one:
// the first phone-shaped token becomes the phone, a token containing '@'
// becomes the email, a bare relationship keyword sets the type, and
// everything else accumulates into the name.
func parseSpaceSeparated(line string) *model.CandidateContact {
	tokens := strings.Fields(line)
	if len(tokens) < 3 {
		return nil
	}
	var nameTokens []string
	var phone, email string
	relationship := model.RelationshipOther
	for _, token := range tokens {
		switch {
		case phone == "" && phoneToken.MatchString(token) && normalize.DigitCount(token) >= 10:
			phone = token
		case email == "" && strings.Contains(token, "@"):
			email = token
		case isRelationshipWord(token):
			relationship = relationshipWords[strings.ToLower(token)]
		default:
			nameTokens = append(nameTokens, token)
		}
	}
	if len(nameTokens) == 0 || phone == "" {
		return nil
	}
	firstName, lastName := normalize.ParseName(strings.Join(nameTokens, " "))
	return &model.CandidateContact{
		FirstName:        firstName,
		LastName:         lastName,
		Phone:            normalize.FormatPhoneNumber(phone),
		Email:            normalize.ValidateEmail(email),
		RelationshipType: relationship,
		Source:           model.SourceRawData,
	}
}

func isRelationshipWord(token string) bool {
	_, ok := relationshipWords[strings.ToLower(token)]
	return ok
}

// phonePatterns are tried in order against the whole line; the first match
// wins. The grouped pattern comes first so that a formatted number is not
// truncated by the plain digit-run pattern. Its country code is optional:
// plain 10-digit grouped forms like "123-456-7890" and "(123) 456-7890"
// must match too.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\+?\d{10,15}`),
}

var emailPattern = regexp.MustCompile(`[^\s@,;]+@[^\s@,;]+\.[^\s@,;]+`)

// parsePattern sweeps the whole line for a phone-shaped and an email-shaped
// substring and treats whatever text remains as the name. It is the last
// resort before a line is given up on.
func parsePattern(line string) *model.CandidateContact {
	var phone string
	for _, pattern := range phonePatterns {
		if match := pattern.FindString(line); match != "" {
			phone = match
			break
		}
	}
	if phone == "" {
		return nil
	}
	email := emailPattern.FindString(line)

	nameText := strings.Replace(line, phone, " ", 1)
	if email != "" {
		nameText = strings.Replace(nameText, email, " ", 1)
	}
	nameText = strings.NewReplacer(",", " ", ";", " ").Replace(nameText)
	nameText = strings.Join(strings.Fields(nameText), " ")
	if nameText == "" {
		return nil
	}
	firstName, lastName := normalize.ParseName(nameText)
	return &model.CandidateContact{
		FirstName:        firstName,
		LastName:         lastName,
		Phone:            normalize.FormatPhoneNumber(phone),
		Email:            normalize.ValidateEmail(email),
		RelationshipType: model.RelationshipOther,
		Source:           model.SourceRawData,
	}
}

// parseDashSeparated handles "Name - Phone[ - Email]". This format carries
// no relationship type field.
func parseDashSeparated(line string) *model.CandidateContact {
	if !strings.Contains(line, " - ") {
		return nil
	}
	parts := strings.Split(line, " - ")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 {
		return nil
	}
	firstName, lastName := normalize.ParseName(parts[0])
	contact := &model.CandidateContact{
		FirstName:        firstName,
		LastName:         lastName,
		Phone:            normalize.FormatPhoneNumber(parts[1]),
		RelationshipType: model.RelationshipOther,
		Source:           model.SourceRawData,
	}
	if len(parts) > 2 {
		contact.Email = normalize.ValidateEmail(parts[2])
	}
	return contact
}
