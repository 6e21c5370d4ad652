package parser

import (
	"log"
	"strings"

	"github.com/surajikf/IKF-PhoneBook/internal/model"
	"github.com/surajikf/IKF-PhoneBook/internal/normalize"
)

// LineError reports one input line that produced no contact. Line numbers
// are 1-based and count every input line including blank ones.
type LineError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ParseRawText splits a block of raw text into lines and parses each line
// independently through the default strategy chain. Results are kept if they
// carry a first name and a phone value; everything else is dropped. The
// returned contacts preserve input line order.
func ParseRawText(text string) []model.CandidateContact {
	contacts := []model.CandidateContact{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		contact := parseLineSafely(ParseLine, line)
		if contact == nil {
			continue
		}
		if contact.FirstName != "" && contact.Phone != "" {
			contacts = append(contacts, *contact)
		}
	}
	return contacts
}

// ParseText is the enhanced batch path: the dash-separated fallback strategy
// is included, results must pass the strict post-parse validation, and every
// line that yields no contact is reported with its line number and reason. A
// single bad line never aborts the batch.
func ParseText(text string) ([]model.CandidateContact, []LineError) {
	contacts := []model.CandidateContact{}
	var failures []LineError
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		contact := parseLineSafely(ParseLineEnhanced, line)
		switch {
		case contact == nil:
			failures = append(failures, LineError{Line: i + 1, Reason: "no parsing strategy matched"})
		case !normalize.ValidateParsedContact(*contact):
			failures = append(failures, LineError{Line: i + 1, Reason: "parsed contact failed validation"})
		default:
			contacts = append(contacts, *contact)
		}
	}
	return contacts, failures
}

// parseLineSafely shields the batch from a panicking strategy. The line is
// logged and skipped.
func parseLineSafely(parse func(string) *model.CandidateContact, line string) (contact *model.CandidateContact) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("skipping unparseable line %q: %v", line, r)
			contact = nil
		}
	}()
	return parse(line)
}
