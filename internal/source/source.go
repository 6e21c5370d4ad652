// Package source funnels contact records fetched from external systems
// (Gmail, Zoho, CSV uploads) through the same normalization and validity
// filter as parsed raw text. OAuth and transport against the remote systems
// happen elsewhere; this package only sees already-fetched field tuples.
package source

import (
	"strings"

	"github.com/surajikf/IKF-PhoneBook/internal/model"
	"github.com/surajikf/IKF-PhoneBook/internal/normalize"
)

// RawRecord is one field tuple as delivered by a source feed. The
// relationship value is a free-text hint, not a validated enum.
type RawRecord struct {
	FirstName    string `json:"firstname"`
	LastName     string `json:"lastname"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Relationship string `json:"relationship"`
}

// Candidates normalizes the records and drops everything that fails the
// validity check. Records keep their input order.
func Candidates(records []RawRecord, src model.Source) []model.CandidateContact {
	candidates := []model.CandidateContact{}
	for _, record := range records {
		// Re-splitting the joined name tolerates feeds that put the whole
		// name into the first field.
		firstName, lastName := normalize.ParseName(strings.TrimSpace(record.FirstName + " " + record.LastName))
		candidate := model.CandidateContact{
			FirstName:        firstName,
			LastName:         lastName,
			Phone:            normalize.FormatPhoneNumber(record.Phone),
			Email:            normalize.ValidateEmail(record.Email),
			RelationshipType: model.RelationshipOther,
			Source:           src,
		}
		if record.Relationship != "" {
			candidate.RelationshipType = normalize.DetectRelationshipType(record.Relationship)
		}
		if normalize.CandidateValid(candidate) {
			candidates = append(candidates, candidate)
		}
	}
	return candidates
}
