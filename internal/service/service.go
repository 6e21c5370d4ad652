package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/surajikf/IKF-PhoneBook/internal/dedup"
	"github.com/surajikf/IKF-PhoneBook/internal/model"
	"github.com/surajikf/IKF-PhoneBook/internal/normalize"
	"github.com/surajikf/IKF-PhoneBook/internal/parser"
	"github.com/surajikf/IKF-PhoneBook/internal/repository"
	"github.com/surajikf/IKF-PhoneBook/internal/source"
)

// maxInt is the largest possible int value
const maxInt = int(^uint(0) >> 1)

// db is a handle to the database, used directly by the list endpoint.
var db *sqlx.DB

// repo is the contact repository shared by all handlers.
var repo repository.ContactRepository

// detector finds likely duplicates of a candidate contact.
var detector *dedup.Detector

// merger collapses confirmed duplicates into a primary record.
var merger *dedup.Merger

// allowedOrderby are the allowed values for the 'orderby' URL parameter.
var allowedOrderby = []string{"id", "firstname", "lastname", "phone", "created_at"}

// allowedAscending are the allowed values for the 'ascending' URL parameter.
var allowedAscending = []string{"true", "false"}

// SetupDatabaseWrapper initializes the repository and the dedup engine with
// the specified sql database. The database argument can be a real database
// for production use or a mock database within unit tests.
func SetupDatabaseWrapper(sqlDB *sql.DB) {
	db = sqlx.NewDb(sqlDB, "mysql")
	repo = repository.NewMySQL(sqlDB)
	detector = dedup.NewDetector(repo)
	merger = dedup.NewMerger(repo)
}

// SetupHttpRouter initializes the REST API router and registers all endpoints.
func SetupHttpRouter() *gin.Engine {
	var router *gin.Engine
	if strings.EqualFold(os.Getenv("GIN_LOGGING"), "off") {
		fmt.Println("Turning off HTTP request logging.")
		router = gin.New()
	} else {
		router = gin.Default()
	}
	router.GET("/contacts", findContacts)
	router.POST("/contacts", createContact)
	router.GET("/contacts/:id", findContactByID)
	router.PUT("/contacts/:id", updateContactByID)
	router.DELETE("/contacts/:id", deleteContactByID)
	router.POST("/contacts/parse", parseRawText)
	router.POST("/contacts/import", importRawText)
	router.POST("/contacts/import/records", importSourceRecords)
	router.POST("/contacts/import/csv", importCSV)
	router.POST("/contacts/check-duplicates", checkDuplicates)
	router.POST("/contacts/merge", mergeContacts)
	return router
}

// findContacts responds with a list of contacts as JSON.
//
// The URL parameters 'firstname', 'lastname' and 'phone' are interpreted as
// the beginning of the corresponding contact field. The URL parameters
// 'relationship_type' and 'status' filter on exact values.
//
// The URL parameter 'limit' specifies how many contacts matching the search
// criteria are returned. The URL parameter 'offset' specifies how many items
// from the sorted list of results are skipped in the beginning. Together,
// they implement search result paging.
//
// The URL parameter 'orderby' specifies the contact property by which the
// results shall be sorted. Valid values are 'id', 'firstname', 'lastname',
// 'phone', and 'created_at'. If this URL parameter is not specified, the
// contacts will be sorted by id. If the URL parameter 'ascending' is set to
// 'false' then the sort order is reversed.
//
// REST API calls:
//
//	> curl "http://localhost:8080/contacts"
//	> curl "http://localhost:8080/contacts?firstname=Ji"
//	> curl "http://localhost:8080/contacts?relationship_type=Client"
//	> curl "http://localhost:8080/contacts?limit=20&offset=60"
//	> curl "http://localhost:8080/contacts?orderby=created_at&ascending=false"
func findContacts(c *gin.Context) {
	var clauses []string
	var args []interface{}
	if firstname := c.Query("firstname"); firstname != "" {
		clauses = append(clauses, "firstname LIKE ?")
		args = append(args, firstname+"%")
	}
	if lastname := c.Query("lastname"); lastname != "" {
		clauses = append(clauses, "lastname LIKE ?")
		args = append(args, lastname+"%")
	}
	if phone := c.Query("phone"); phone != "" {
		clauses = append(clauses, "phone LIKE ?")
		args = append(args, phone+"%")
	}
	if relationship := c.Query("relationship_type"); relationship != "" {
		clauses = append(clauses, "relationship_type = ?")
		args = append(args, relationship)
	}
	if status := c.Query("status"); status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, status)
	}
	limit, offset, successLimitAndOffset := parseLimitAndOffset(c)
	if !successLimitAndOffset {
		return
	}
	orderby, ascending, successOrderbyAndAscending := parseOrderbyAndAscending(c)
	if !successOrderbyAndAscending {
		return
	}

	query := "SELECT * FROM contacts"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY %s %s LIMIT ? OFFSET ?", orderby, ascending)
	args = append(args, limit, offset)

	var contacts []model.Contact
	if err := db.Select(&contacts, query, args...); err != nil {
		log.Panicln(err)
	}
	if len(contacts) == 0 {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
	} else {
		c.IndentedJSON(http.StatusOK, contacts)
	}
}

// parseLimitAndOffset inspects the URL parameters and determines values for limit and offset of
// the result set.
func parseLimitAndOffset(c *gin.Context) (limit string, offset string, success bool) {
	limit = c.Query("limit")
	offset = c.Query("offset")
	if limit != "" {
		limitAsInt, errConv := strconv.Atoi(limit)
		if errConv != nil || limitAsInt < 1 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid limit parameter"})
			return "", "", false
		}
	} else {
		limit = strconv.Itoa(maxInt)
	}
	if offset != "" {
		offsetAsInt, errConv := strconv.Atoi(offset)
		if errConv != nil || offsetAsInt < 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid offset parameter"})
			return "", "", false
		}
	} else {
		offset = "0"
	}
	return limit, offset, true
}

// parseOrderbyAndAscending inspects the URL parameters and determines values for the orderby and
// ascending values of the result set.
func parseOrderbyAndAscending(c *gin.Context) (orderby string, ascending string, success bool) {
	orderby = c.Query("orderby")
	if orderby == "" {
		orderby = "id"
	}
	if !contains(allowedOrderby, orderby) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid orderby parameter"})
		return "", "", false
	}
	ascendingAsString := c.Query("ascending")
	if ascendingAsString == "" {
		ascendingAsString = "true"
	}
	if !contains(allowedAscending, ascendingAsString) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid ascending parameter"})
		return orderby, "", false
	}
	if ascendingAsString == "true" {
		ascending = "ASC"
	} else {
		ascending = "DESC"
	}
	return orderby, ascending, true
}

// contains returns true if a string is present in a slice.
func contains(slice []string, str string) bool {
	for _, v := range slice {
		if v == str {
			return true
		}
	}
	return false
}

// createContact inserts the contact specified in the request's JSON into the
// database after running it through the duplicate detector. If duplicates
// are found the request is rejected with a CONFLICT response carrying the
// matches, unless the URL parameter 'force' is set to 'true'.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts --request "POST" --include --header "Content-Type: application/json" --data '{"firstname": "Hans", "lastname": "Wurst", "phone": "9876543210", "email": "hans@example.com", "relationship_type": "Client"}'
func createContact(c *gin.Context) {
	var candidate model.CandidateContact
	if err := c.BindJSON(&candidate); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	normalizeCandidate(&candidate)
	if candidate.FirstName == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "firstname is required"})
		return
	}
	if !normalize.CandidateValid(candidate) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "phone must contain at least 10 digits"})
		return
	}

	if c.Query("force") != "true" {
		result, err := detector.Detect(candidate, 0)
		if err != nil {
			log.Panicln(err)
		}
		if result.HasDuplicates {
			c.IndentedJSON(http.StatusConflict, gin.H{
				"message":    "possible duplicates found",
				"duplicates": result,
			})
			return
		}
	}

	contact, err := repo.Insert(candidate)
	if err != nil {
		log.Panicln(err)
	}
	c.IndentedJSON(http.StatusCreated, contact)
}

// normalizeCandidate applies the field normalizers to a submitted candidate.
// An email that fails validation is discarded rather than rejected, matching
// the parser's behavior.
func normalizeCandidate(candidate *model.CandidateContact) {
	candidate.FirstName = strings.TrimSpace(candidate.FirstName)
	candidate.LastName = strings.TrimSpace(candidate.LastName)
	candidate.Phone = normalize.FormatPhoneNumber(candidate.Phone)
	candidate.Email = normalize.ValidateEmail(strings.TrimSpace(candidate.Email))
	if candidate.RelationshipType == "" {
		candidate.RelationshipType = model.RelationshipOther
	}
	if candidate.Source == "" {
		candidate.Source = model.SourceRawData
	}
}

// findContactByID locates the contact whose ID value matches the id parameter of the request URL,
// then returns that contact as a response.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/56
func findContactByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	contact, err := repo.FindByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	if err != nil {
		log.Panicln(err)
	}
	c.IndentedJSON(http.StatusOK, contact)
}

// updateContactByID updates the contact whose ID value matches the id parameter of the request
// URL, updates the values specified in the JSON (and only those), and finally responds with the
// new version of the contact.
//
// Example REST API calls:
//
//	> curl http://localhost:8080/contacts/56 --request "PUT" --include --header "Content-Type: application/json" --data '{"phone": "8197054321"}'
//	> curl http://localhost:8080/contacts/56 --request "PUT" --include --header "Content-Type: application/json" --data '{"status": "Inactive"}'
func updateContactByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var submitted model.ContactUpdate
	if errBind := c.BindJSON(&submitted); errBind != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}

	// It only makes sense to continue if we have at least one value to update.
	if submitted == (model.ContactUpdate{}) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "no values to be updated"})
		return
	}
	if submitted.Phone != nil {
		formatted := normalize.FormatPhoneNumber(*submitted.Phone)
		submitted.Phone = &formatted
	}

	contact, err := repo.Update(id, submitted)
	if errors.Is(err, repository.ErrNotFound) {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	if err != nil {
		log.Panicln(err)
	}
	c.IndentedJSON(http.StatusOK, contact)
}

// deleteContactByID deletes the contact whose ID value matches the id parameter of the request URL
// from the database.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/56 --request "DELETE"
func deleteContactByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	count, err := repo.DeleteMany([]int64{id})
	if err != nil {
		log.Panicln(err)
	}
	if count == 1 {
		c.IndentedJSON(http.StatusOK, gin.H{"message": "contact deleted"})
	} else {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
	}
}

// parseID reads the id URL parameter. A non-numeric id is answered with the
// NOT FOUND status code without reaching out to the database.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "invalid id parameter"})
		return 0, false
	}
	return id, true
}

// rawTextRequest is the body of the parse and import endpoints.
type rawTextRequest struct {
	Text string `json:"text"`
}

// parseRawText parses pasted raw text into candidate contacts without
// persisting anything. The response carries the parsed candidates plus the
// line numbers and reasons of every line that yielded none.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/parse --request "POST" --include --header "Content-Type: application/json" --data '{"text": "John Doe, 1234567890, john@example.com, Client"}'
func parseRawText(c *gin.Context) {
	var request rawTextRequest
	if err := c.BindJSON(&request); err != nil || strings.TrimSpace(request.Text) == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "text is required"})
		return
	}
	contacts, failures := parser.ParseText(request.Text)
	c.IndentedJSON(http.StatusOK, gin.H{
		"contacts": contacts,
		"failures": failures,
		"total":    len(contacts),
	})
}

// importRawText parses pasted raw text and inserts every candidate that has
// no duplicates in the corpus. Candidates with duplicates are reported back
// with their matches instead of being inserted.
func importRawText(c *gin.Context) {
	var request rawTextRequest
	if err := c.BindJSON(&request); err != nil || strings.TrimSpace(request.Text) == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "text is required"})
		return
	}
	candidates, failures := parser.ParseText(request.Text)
	respondWithImport(c, candidates, failures)
}

// sourceRecordsRequest is the body of the source-feed import endpoint.
type sourceRecordsRequest struct {
	Source  model.Source       `json:"source"`
	Records []source.RawRecord `json:"records"`
}

// importSourceRecords ingests already-fetched field tuples from an external
// source (Gmail, Zoho) through the same validity filter and duplicate check
// as parsed raw text.
func importSourceRecords(c *gin.Context) {
	var request sourceRecordsRequest
	if err := c.BindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	switch request.Source {
	case model.SourceGmail, model.SourceZoho, model.SourceCSV:
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid source"})
		return
	}
	candidates := source.Candidates(request.Records, request.Source)
	respondWithImport(c, candidates, nil)
}

// importCSV ingests an uploaded CSV file. The request body is the file
// itself.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/import/csv --request "POST" --include --header "Content-Type: text/csv" --data-binary @contacts.csv
func importCSV(c *gin.Context) {
	records, err := source.ReadCSV(c.Request.Body)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid CSV"})
		return
	}
	candidates := source.Candidates(records, model.SourceCSV)
	respondWithImport(c, candidates, nil)
}

// importConflict reports one candidate that was held back because of
// duplicates.
type importConflict struct {
	Candidate  model.CandidateContact `json:"candidate"`
	Duplicates model.DuplicateResult  `json:"duplicates"`
}

// respondWithImport runs the shared import loop: every candidate is checked
// against the corpus, clean candidates are inserted, conflicting ones are
// reported back for the caller's merge-or-force decision.
func respondWithImport(c *gin.Context, candidates []model.CandidateContact, failures []parser.LineError) {
	imported := []model.Contact{}
	conflicts := []importConflict{}
	for _, candidate := range candidates {
		if !normalize.CandidateValid(candidate) {
			continue
		}
		result, err := detector.Detect(candidate, 0)
		if err != nil {
			log.Panicln(err)
		}
		if result.HasDuplicates {
			conflicts = append(conflicts, importConflict{Candidate: candidate, Duplicates: *result})
			continue
		}
		contact, err := repo.Insert(candidate)
		if err != nil {
			log.Panicln(err)
		}
		imported = append(imported, *contact)
	}
	c.IndentedJSON(http.StatusOK, gin.H{
		"total":      len(candidates),
		"imported":   len(imported),
		"duplicates": len(conflicts),
		"contacts":   imported,
		"conflicts":  conflicts,
		"failures":   failures,
	})
}

// checkDuplicates runs the duplicate detector for the candidate in the
// request's JSON without persisting anything. The URL parameter
// 'exclude_id' removes an existing record from consideration, used when
// re-checking a record against the rest of the corpus.
//
// Example REST API call:
//
//	> curl "http://localhost:8080/contacts/check-duplicates?exclude_id=56" --request "POST" --include --header "Content-Type: application/json" --data '{"firstname": "John", "lastname": "Doe", "phone": "1234567890"}'
func checkDuplicates(c *gin.Context) {
	var candidate model.CandidateContact
	if err := c.BindJSON(&candidate); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	normalizeCandidate(&candidate)
	var excludeID int64
	if excludeParam := c.Query("exclude_id"); excludeParam != "" {
		var err error
		excludeID, err = strconv.ParseInt(excludeParam, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid exclude_id parameter"})
			return
		}
	}
	result, err := detector.Detect(candidate, excludeID)
	if err != nil {
		log.Panicln(err)
	}
	c.IndentedJSON(http.StatusOK, result)
}

// mergeRequest is the body of the merge endpoint.
type mergeRequest struct {
	PrimaryID    int64   `json:"primary_id"`
	DuplicateIDs []int64 `json:"duplicate_ids"`
}

// mergeContacts collapses the given duplicate contacts into the primary
// record. The primary's non-empty fields win; its empty fields are filled
// from the duplicates, and the duplicates are deleted afterwards.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/merge --request "POST" --include --header "Content-Type: application/json" --data '{"primary_id": 56, "duplicate_ids": [57, 61]}'
func mergeContacts(c *gin.Context) {
	var request mergeRequest
	if err := c.BindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	if request.PrimaryID == 0 || len(request.DuplicateIDs) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "primary_id and duplicate_ids are required"})
		return
	}
	result, err := merger.Merge(request.PrimaryID, request.DuplicateIDs)
	if errors.Is(err, repository.ErrNotFound) {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	if err != nil {
		log.Panicln(err)
	}
	c.IndentedJSON(http.StatusOK, result)
}
