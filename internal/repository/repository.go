// Package repository defines the persistence capability that the duplicate
// detector and merger are given, plus its MySQL implementation. The core
// packages only ever describe which predicate they need; rendering it into
// SQL happens here.
package repository

import (
	"errors"

	"github.com/surajikf/IKF-PhoneBook/internal/model"
)

// ErrNotFound is returned when a contact id does not resolve to a record.
var ErrNotFound = errors.New("contact not found")

// ContactRepository is the storage capability consumed by the dedup core and
// the HTTP handlers. Implementations must be safe for concurrent use.
type ContactRepository interface {
	// FindCandidates runs the broad, recall-favoring prefilter: it returns
	// every stored contact that shares the candidate's phone (exact,
	// normalized or digits-only), its exact email, or a case-insensitive
	// first, last or full name, newest first. A positive excludeID removes
	// that record from consideration.
	FindCandidates(candidate model.CandidateContact, excludeID int64) ([]model.Contact, error)

	// FindByID returns the contact with the given id or ErrNotFound.
	FindByID(id int64) (*model.Contact, error)

	// Insert persists a candidate and returns the stored contact with its
	// newly assigned id.
	Insert(candidate model.CandidateContact) (*model.Contact, error)

	// Update writes the non-nil fields of the update to the contact with
	// the given id and returns the new version, or ErrNotFound.
	Update(id int64, fields model.ContactUpdate) (*model.Contact, error)

	// DeleteMany removes the contacts with the given ids and returns how
	// many rows were actually deleted.
	DeleteMany(ids []int64) (int64, error)
}
