package model

import "time"

// RelationshipType classifies how a contact relates to the organization.
type RelationshipType string

const (
	RelationshipClient  RelationshipType = "Client"
	RelationshipVendor  RelationshipType = "Vendor"
	RelationshipLead    RelationshipType = "Lead"
	RelationshipPartner RelationshipType = "Partner"
	RelationshipOther   RelationshipType = "Other"
)

// Source identifies where a contact record was ingested from.
type Source string

const (
	SourceGmail   Source = "Gmail"
	SourceZoho    Source = "Zoho"
	SourceCSV     Source = "CSV"
	SourceRawData Source = "RawData"
)

// Status marks whether a stored contact is still in use.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Contact is the data structure for a person that we know, as stored on the
// database. Email, data owner and notes are optional columns.
type Contact struct {
	Id               int64            `json:"id"                   db:"id"`
	FirstName        string           `json:"firstname"            db:"firstname"`
	LastName         string           `json:"lastname,omitempty"   db:"lastname"`
	Phone            string           `json:"phone"                db:"phone"`
	Email            *string          `json:"email,omitempty"      db:"email"`
	RelationshipType RelationshipType `json:"relationship_type"    db:"relationship_type"`
	DataOwner        *string          `json:"data_owner,omitempty" db:"data_owner"`
	Source           Source           `json:"source"               db:"source"`
	Status           Status           `json:"status"               db:"status"`
	Notes            *string          `json:"notes,omitempty"      db:"notes"`
	CreatedAt        time.Time        `json:"created_at"           db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"           db:"updated_at"`
}

// FullName returns the contact's first and last name joined with a space.
func (c Contact) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// EmailValue returns the email column or the empty string if it is null.
func (c Contact) EmailValue() string {
	if c.Email == nil {
		return ""
	}
	return *c.Email
}

// CandidateContact is a parsed or source-fetched contact that has not been
// persisted yet. An empty Email means no email was supplied or it failed
// validation.
type CandidateContact struct {
	FirstName        string           `json:"firstname"`
	LastName         string           `json:"lastname,omitempty"`
	Phone            string           `json:"phone"`
	Email            string           `json:"email,omitempty"`
	RelationshipType RelationshipType `json:"relationship_type"`
	DataOwner        string           `json:"data_owner,omitempty"`
	Source           Source           `json:"source"`
}

// FullName returns the candidate's first and last name joined with a space.
func (c CandidateContact) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// ContactUpdate carries a partial update of a stored contact. Only the
// non-nil fields are written.
type ContactUpdate struct {
	FirstName        *string           `json:"firstname,omitempty"`
	LastName         *string           `json:"lastname,omitempty"`
	Phone            *string           `json:"phone,omitempty"`
	Email            *string           `json:"email,omitempty"`
	RelationshipType *RelationshipType `json:"relationship_type,omitempty"`
	DataOwner        *string           `json:"data_owner,omitempty"`
	Status           *Status           `json:"status,omitempty"`
	Notes            *string           `json:"notes,omitempty"`
}

// DuplicateMatch is an existing contact judged similar enough to a candidate
// to require the caller's attention. It is produced fresh per detection call
// and never persisted.
type DuplicateMatch struct {
	Contact         Contact  `json:"contact"`
	SimilarityScore float64  `json:"similarity_score"`
	MatchReasons    []string `json:"match_reasons"`
	IsExactMatch    bool     `json:"is_exact_match"`
}

// DuplicateResult is the outcome of running a candidate against the corpus.
type DuplicateResult struct {
	HasDuplicates   bool             `json:"has_duplicates"`
	Duplicates      []DuplicateMatch `json:"duplicates"`
	TotalDuplicates int              `json:"total_duplicates"`
}

// MergeResult reports a completed merge: the surviving record and the ids of
// the records that were collapsed into it.
type MergeResult struct {
	MergedContact Contact `json:"merged_contact"`
	DeletedIds    []int64 `json:"deleted_ids"`
}
