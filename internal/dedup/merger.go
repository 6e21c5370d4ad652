package dedup

import (
	"errors"
	"fmt"

	"github.com/surajikf/IKF-PhoneBook/internal/model"
	"github.com/surajikf/IKF-PhoneBook/internal/repository"
)

// Merger collapses duplicate contacts into a primary record.
type Merger struct {
	repo repository.ContactRepository
}

// NewMerger creates a merger over the given repository.
func NewMerger(repo repository.ContactRepository) *Merger {
	return &Merger{repo: repo}
}

// Merge combines the primary record with the given duplicates. The
// primary's non-empty fields are never overwritten; empty fields are filled
// by the first duplicate, in the order given, that carries a value. Notes
// are not replaced but appended, each block marked with the id of the record
// it came from. After the primary has been updated the duplicates are
// deleted.
//
// The update and the delete are two separate statements. If the delete
// fails after a successful update, the primary is already correct and the
// stale duplicates remain; the error is returned so the caller can retry
// the delete.
//
// Duplicate ids that do not resolve to a record are skipped, as are the
// primary's own id and repeated ids. A missing primary fails the merge with
// repository.ErrNotFound.
func (m *Merger) Merge(primaryID int64, duplicateIDs []int64) (*model.MergeResult, error) {
	primary, err := m.repo.FindByID(primaryID)
	if err != nil {
		return nil, err
	}

	seen := map[int64]bool{primaryID: true}
	var duplicates []model.Contact
	for _, id := range duplicateIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		duplicate, err := m.repo.FindByID(id)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		duplicates = append(duplicates, *duplicate)
	}

	fields := mergeFields(*primary, duplicates)
	merged, err := m.repo.Update(primaryID, fields)
	if err != nil {
		return nil, err
	}

	deletedIds := make([]int64, 0, len(duplicates))
	for _, duplicate := range duplicates {
		deletedIds = append(deletedIds, duplicate.Id)
	}
	if _, err := m.repo.DeleteMany(deletedIds); err != nil {
		return nil, err
	}

	return &model.MergeResult{MergedContact: *merged, DeletedIds: deletedIds}, nil
}

// mergeFields computes the field-level update that fills the primary's
// empty fields from the duplicates and appends their notes.
func mergeFields(primary model.Contact, duplicates []model.Contact) model.ContactUpdate {
	var fields model.ContactUpdate

	firstName := primary.FirstName
	lastName := primary.LastName
	phone := primary.Phone
	email := primary.EmailValue()
	relationship := string(primary.RelationshipType)
	dataOwner := stringValue(primary.DataOwner)
	notes := stringValue(primary.Notes)

	for _, duplicate := range duplicates {
		fillIfMissing(&firstName, duplicate.FirstName)
		fillIfMissing(&lastName, duplicate.LastName)
		fillIfMissing(&phone, duplicate.Phone)
		fillIfMissing(&email, duplicate.EmailValue())
		fillIfMissing(&relationship, string(duplicate.RelationshipType))
		fillIfMissing(&dataOwner, stringValue(duplicate.DataOwner))
		if duplicateNotes := stringValue(duplicate.Notes); duplicateNotes != "" {
			if notes != "" {
				notes += "\n"
			}
			notes += fmt.Sprintf("--- Merged from contact %d ---\n%s", duplicate.Id, duplicateNotes)
		}
	}

	if firstName != primary.FirstName {
		fields.FirstName = &firstName
	}
	if lastName != primary.LastName {
		fields.LastName = &lastName
	}
	if phone != primary.Phone {
		fields.Phone = &phone
	}
	if email != primary.EmailValue() {
		fields.Email = &email
	}
	if relationship != string(primary.RelationshipType) {
		merged := model.RelationshipType(relationship)
		fields.RelationshipType = &merged
	}
	if dataOwner != stringValue(primary.DataOwner) {
		fields.DataOwner = &dataOwner
	}
	if notes != stringValue(primary.Notes) {
		fields.Notes = &notes
	}
	return fields
}

func fillIfMissing(target *string, value string) {
	if *target == "" && value != "" {
		*target = value
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
