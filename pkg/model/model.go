// Package model is the wire model of the phone book service for external
// clients.
package model

import "time"

// Contact is a contact record as returned by the REST API.
type Contact struct {
	Id               int64     `json:"id"`
	FirstName        string    `json:"firstname"`
	LastName         string    `json:"lastname,omitempty"`
	Phone            string    `json:"phone"`
	Email            *string   `json:"email,omitempty"`
	RelationshipType string    `json:"relationship_type"`
	DataOwner        *string   `json:"data_owner,omitempty"`
	Source           string    `json:"source"`
	Status           string    `json:"status"`
	Notes            *string   `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
