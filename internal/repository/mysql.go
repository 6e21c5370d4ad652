package repository

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/surajikf/IKF-PhoneBook/internal/model"
	"github.com/surajikf/IKF-PhoneBook/internal/similarity"
)

// digitsOnlyPhone renders the phone column down to its digits so that stored
// formatting cannot hide a match.
const digitsOnlyPhone = `REPLACE(REPLACE(REPLACE(REPLACE(REPLACE(phone, '+', ''), '-', ''), ' ', ''), '(', ''), ')', '')`

// MySQL is the sqlx-backed ContactRepository.
type MySQL struct {
	db            *sqlx.DB
	insert        *sqlx.NamedStmt
	selectWhereId *sqlx.Stmt
}

// CreateDatabase initializes and returns a database connection. The
// connection parameters are taken from the system's environment variables.
func CreateDatabase() *sql.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/phonebook?parseTime=true",
		os.Getenv("DBUSER"), os.Getenv("DBPWD"), os.Getenv("DBHOST"))
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal(err)
	}
	return sqlDB
}

// NewMySQL wraps the specified sql database and prepares the hot statements.
// The database argument can be a real database for production use or a mock
// database within unit tests.
func NewMySQL(sqlDB *sql.DB) *MySQL {
	r := &MySQL{db: sqlx.NewDb(sqlDB, "mysql")}

	// Prepared statements offer a significant speed increase if executed many times.
	var err error
	r.insert, err = r.db.PrepareNamed(`
		INSERT INTO contacts
			(firstname, lastname, phone, email, relationship_type, data_owner,
			 source, status, notes, created_at, updated_at)
		VALUES
			(:firstname, :lastname, :phone, :email, :relationship_type, :data_owner,
			 :source, :status, :notes, :created_at, :updated_at)
	`)
	if err != nil {
		log.Fatal(err)
	}
	r.selectWhereId, err = r.db.Preparex(`
		SELECT * FROM contacts WHERE id = ?
	`)
	if err != nil {
		log.Fatal(err)
	}
	return r
}

// FindCandidates implements the prefilter query of the duplicate detector.
// The predicate is deliberately loose: an OR across phone, email and name so
// that no true duplicate is missed; precision is the detector's job.
func (r *MySQL) FindCandidates(candidate model.CandidateContact, excludeID int64) ([]model.Contact, error) {
	var clauses []string
	var args []interface{}

	if candidate.Phone != "" {
		clauses = append(clauses, "phone = ?")
		args = append(args, candidate.Phone)
		if normalized := similarity.NormalizePhoneNumber(candidate.Phone); normalized != "" {
			clauses = append(clauses, "phone LIKE ?", digitsOnlyPhone+" LIKE ?")
			args = append(args, "%"+normalized+"%", "%"+normalized+"%")
		}
	}
	if candidate.Email != "" {
		clauses = append(clauses, "email = ?")
		args = append(args, candidate.Email)
	}
	if candidate.FirstName != "" {
		clauses = append(clauses, "LOWER(firstname) = ?")
		args = append(args, strings.ToLower(candidate.FirstName))
	}
	if candidate.LastName != "" {
		clauses = append(clauses, "LOWER(lastname) = ?")
		args = append(args, strings.ToLower(candidate.LastName))
	}
	if fullName := candidate.FullName(); fullName != "" {
		clauses = append(clauses, "LOWER(TRIM(CONCAT(firstname, ' ', lastname))) = ?")
		args = append(args, strings.ToLower(fullName))
	}
	if len(clauses) == 0 {
		return nil, nil
	}

	query := "SELECT * FROM contacts WHERE (" + strings.Join(clauses, " OR ") + ")"
	if excludeID > 0 {
		query += " AND id != ?"
		args = append(args, excludeID)
	}
	query += " ORDER BY created_at DESC"

	var contacts []model.Contact
	if err := r.db.Select(&contacts, query, args...); err != nil {
		return nil, err
	}
	return contacts, nil
}

// FindByID returns the contact with the given id or ErrNotFound.
func (r *MySQL) FindByID(id int64) (*model.Contact, error) {
	var contacts []model.Contact
	if err := r.selectWhereId.Select(&contacts, id); err != nil {
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, ErrNotFound
	}
	return &contacts[0], nil
}

// Insert persists a candidate with default status and fresh timestamps.
func (r *MySQL) Insert(candidate model.CandidateContact) (*model.Contact, error) {
	now := time.Now().UTC().Truncate(time.Second)
	contact := model.Contact{
		FirstName:        candidate.FirstName,
		LastName:         candidate.LastName,
		Phone:            candidate.Phone,
		Email:            nullable(candidate.Email),
		RelationshipType: defaultRelationship(candidate.RelationshipType),
		DataOwner:        nullable(candidate.DataOwner),
		Source:           candidate.Source,
		Status:           model.StatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	result, err := r.insert.Exec(&contact)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	contact.Id = id
	return &contact, nil
}

// Update writes the non-nil fields and returns the new version of the
// contact. The SET list is built dynamically from the submitted fields.
func (r *MySQL) Update(id int64, fields model.ContactUpdate) (*model.Contact, error) {
	var assignments []string
	var args []interface{}
	appendField := func(column string, value interface{}) {
		assignments = append(assignments, column+" = ?")
		args = append(args, value)
	}
	if fields.FirstName != nil {
		appendField("firstname", *fields.FirstName)
	}
	if fields.LastName != nil {
		appendField("lastname", *fields.LastName)
	}
	if fields.Phone != nil {
		appendField("phone", *fields.Phone)
	}
	if fields.Email != nil {
		appendField("email", *fields.Email)
	}
	if fields.RelationshipType != nil {
		appendField("relationship_type", *fields.RelationshipType)
	}
	if fields.DataOwner != nil {
		appendField("data_owner", *fields.DataOwner)
	}
	if fields.Status != nil {
		appendField("status", *fields.Status)
	}
	if fields.Notes != nil {
		appendField("notes", *fields.Notes)
	}
	if len(assignments) == 0 {
		return r.FindByID(id)
	}
	appendField("updated_at", time.Now().UTC().Truncate(time.Second))

	query := "UPDATE contacts SET " + strings.Join(assignments, ", ") + " WHERE id = ?"
	args = append(args, id)
	if _, err := r.db.Exec(query, args...); err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// DeleteMany removes the contacts with the given ids in one statement.
func (r *MySQL) DeleteMany(ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In("DELETE FROM contacts WHERE id IN (?)", ids)
	if err != nil {
		return 0, err
	}
	result, err := r.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func defaultRelationship(r model.RelationshipType) model.RelationshipType {
	if r == "" {
		return model.RelationshipOther
	}
	return r
}
