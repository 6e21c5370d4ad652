package service

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// contactColumns is the full column set of the contacts table, in schema
// order.
var contactColumns = []string{
	"id", "firstname", "lastname", "phone", "email", "relationship_type",
	"data_owner", "source", "status", "notes", "created_at", "updated_at",
}

// createMockObjects builds a mock database handle and a mock object for defining our expected SQL
// calls.
func createMockObjects(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	return db, mock
}

// expectPreparedStatements instructs the mock object to expect that the repository statements are
// being prepared.
func expectPreparedStatements(mock sqlmock.Sqlmock) {
	mock.ExpectPrepare("INSERT INTO contacts")
	mock.ExpectPrepare("SELECT \\* FROM contacts WHERE id = ?")
}

// addContactRow appends a stored contact with default enum values to a result set.
func addContactRow(rows *sqlmock.Rows, id int64, firstname, lastname, phone string, email interface{}) *sqlmock.Rows {
	now := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	return rows.AddRow(id, firstname, lastname, phone, email, "Other", nil, "RawData", "Active", nil, now, now)
}

// initializeContactsService sets up the contacts service with the mock database and returns a
// handle to the gin engine against which requests can be executed.
func initializeContactsService(db *sql.DB) *gin.Engine {
	SetupDatabaseWrapper(db)
	gin.SetMode(gin.ReleaseMode)
	return SetupHttpRouter()
}

// runTest executes the HTTP request with the specified arguments and returns the response.
func runTest(db *sql.DB, method string, url string, body *strings.Reader) *httptest.ResponseRecorder {
	router := initializeContactsService(db)
	recorder := httptest.NewRecorder()
	if body == nil {
		body = strings.NewReader("")
	}
	request, _ := http.NewRequest(method, url, body)
	router.ServeHTTP(recorder, request)
	return recorder
}

// TestGetAll executes a GET request for all contacts in the database. It expects that the JSON
// for a list of contacts is returned.
func TestGetAll(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	rows := sqlmock.NewRows(contactColumns)
	addContactRow(rows, 1, "Aaron", "Abbot", "+11112223333", nil)
	addContactRow(rows, 2, "Berta", "Brown", "+12223334444", "berta@example.com")
	addContactRow(rows, 3, "Carla", "Cruz", "+13334445555", nil)
	mock.ExpectQuery("SELECT \\* FROM contacts ORDER BY id ASC").
		WillReturnRows(rows)

	recorder := runTest(db, "GET", "/contacts", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var contacts []map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &contacts)
	assert.Equal(t, 3, len(contacts))
	assert.Equal(t, "Aaron", contacts[0]["firstname"])
	assert.Equal(t, "berta@example.com", contacts[1]["email"])
	assert.Equal(t, "Carla", contacts[2]["firstname"])

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestGetAllFiltered executes a GET request with filter and ordering URL parameters. It expects
// the filters to appear in the WHERE clause.
func TestGetAllFiltered(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	rows := sqlmock.NewRows(contactColumns)
	addContactRow(rows, 1, "Erika", "Mustermann", "+11112223333", nil)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE firstname LIKE \\? AND relationship_type = \\? ORDER BY created_at DESC").
		WithArgs("Er%", "Client", strconv.Itoa(int(^uint(0)>>1)), "0").
		WillReturnRows(rows)

	url := "/contacts?firstname=Er&relationship_type=Client&orderby=created_at&ascending=false"
	recorder := runTest(db, "GET", url, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestGetAllInvalidOrderby executes a GET request with an invalid orderby parameter. It expects
// the BAD REQUEST status code without reaching out to the database.
func TestGetAllInvalidOrderby(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)

	recorder := runTest(db, "GET", "/contacts?orderby=INVALID", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestGet executes a GET request for a single contact with a valid ID. It expects that the JSON
// for the contact is returned.
func TestGet(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	rows := sqlmock.NewRows(contactColumns)
	addContactRow(rows, 29, "Erika", "Mustermann", "+11234567890", "erika@example.com")
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE id = ?").
		WithArgs(int64(29)).
		WillReturnRows(rows)

	recorder := runTest(db, "GET", "/contacts/29", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	var getBody map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &getBody)
	assert.Equal(t, 29.0, getBody["id"])
	assert.Equal(t, "Erika", getBody["firstname"])
	assert.Equal(t, "Mustermann", getBody["lastname"])
	assert.Equal(t, "+11234567890", getBody["phone"])
	assert.Equal(t, "erika@example.com", getBody["email"])
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestGetInvalidCharacterID executes a GET request with an invalid ID consisting of characters.
// It expects that the HTTP request is answered with the NOT FOUND status code. It also expects
// that we do not reach out to the database in the first place.
func TestGetInvalidCharacterID(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)

	recorder := runTest(db, "GET", "/contacts/INVALID", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestPost executes a POST request with a valid body and no duplicates in the corpus. It expects
// the CREATED status code, the normalized phone number and the newly assigned id.
func TestPost(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE \\(phone = \\?").
		WillReturnRows(sqlmock.NewRows(contactColumns))
	mock.ExpectExec("INSERT INTO contacts").
		WillReturnResult(sqlmock.NewResult(42, 1))

	recorder := runTest(db, "POST", "/contacts", strings.NewReader(`
		{
			"firstname": "Erika",
			"lastname": "Mustermann",
			"phone": "123-456-7890",
			"email": "erika@example.com",
			"relationship_type": "Client"
		}
	`))
	assert.Equal(t, http.StatusCreated, recorder.Code)
	var postBody map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &postBody)
	assert.Equal(t, 42.0, postBody["id"])
	assert.Equal(t, "Erika", postBody["firstname"])
	assert.Equal(t, "+11234567890", postBody["phone"])
	assert.Equal(t, "Active", postBody["status"])
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestPostDuplicateConflict executes a POST request for a candidate whose phone already exists in
// the corpus. It expects the CONFLICT status code with the duplicate matches in the body and no
// insert.
func TestPostDuplicateConflict(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	rows := sqlmock.NewRows(contactColumns)
	addContactRow(rows, 7, "Quentin", "Quill", "1234567890", nil)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE \\(phone = \\?").
		WillReturnRows(rows)

	recorder := runTest(db, "POST", "/contacts", strings.NewReader(`
		{
			"firstname": "Erika",
			"phone": "123-456-7890"
		}
	`))
	assert.Equal(t, http.StatusConflict, recorder.Code)
	var conflictBody map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &conflictBody)
	assert.Equal(t, "possible duplicates found", conflictBody["message"])
	assert.NotNil(t, conflictBody["duplicates"])
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestPostForce executes a POST request with the force parameter. It expects that the duplicate
// check is skipped entirely.
func TestPostForce(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	mock.ExpectExec("INSERT INTO contacts").
		WillReturnResult(sqlmock.NewResult(43, 1))

	recorder := runTest(db, "POST", "/contacts?force=true", strings.NewReader(`
		{
			"firstname": "Erika",
			"phone": "123-456-7890"
		}
	`))
	assert.Equal(t, http.StatusCreated, recorder.Code)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestPostInvalidBodies executes POST requests with invalid or incomplete bodies. It expects
// that the HTTP requests are all answered with the BAD REQUEST status code.
func TestPostInvalidBodies(t *testing.T) {
	invalidRequestBodies := []string{
		"",
		"not JSON",
		`{"phone": "123-456-7890"}`,           // firstname missing
		`{"firstname": "Erika"}`,              // phone missing
		`{"firstname": "Erika", "phone": "12345"}`, // phone too short
	}
	for _, body := range invalidRequestBodies {
		db, mock := createMockObjects(t)
		defer db.Close()

		expectPreparedStatements(mock) // we expect that the call will fail before the SQL statements

		recorder := runTest(db, "POST", "/contacts", strings.NewReader(body))
		assert.Equal(t, http.StatusBadRequest, recorder.Code, "request body: "+body)
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("there were unfulfilled expectations: %s", err)
		}
	}
}

// TestPut executes a PUT request with a valid ID and a partial body. It expects the OK status
// code and the new version of the contact.
func TestPut(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	mock.ExpectExec("UPDATE contacts SET firstname = \\?, updated_at = \\? WHERE id = \\?").
		WithArgs("Rudi", sqlmock.AnyArg(), int64(17)).
		WillReturnResult(sqlmock.NewResult(-1, 1))
	rows := sqlmock.NewRows(contactColumns)
	addContactRow(rows, 17, "Rudi", "Völler", "+11234567890", nil)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE id = ?").
		WithArgs(int64(17)).
		WillReturnRows(rows)

	recorder := runTest(db, "PUT", "/contacts/17", strings.NewReader(`
		{
			"firstname": "Rudi"
		}
	`))
	assert.Equal(t, http.StatusOK, recorder.Code)
	var putBody map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &putBody)
	assert.Equal(t, 17.0, putBody["id"])
	assert.Equal(t, "Rudi", putBody["firstname"])
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestPutNoValues executes a PUT request with an empty JSON body. It expects the BAD REQUEST
// status code without reaching out to the database.
func TestPutNoValues(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)

	recorder := runTest(db, "PUT", "/contacts/17", strings.NewReader("{}"))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestDelete executes a DELETE request for a single contact with a valid ID. It expects that the
// status OK is returned.
func TestDelete(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	mock.ExpectExec("DELETE FROM contacts WHERE id IN").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(-1, 1))

	recorder := runTest(db, "DELETE", "/contacts/42", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestDeleteInvalidNumericID executes a DELETE request with an invalid but still numeric ID. It
// expects that the HTTP request is answered with the NOT FOUND status code.
func TestDeleteInvalidNumericID(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	mock.ExpectExec("DELETE FROM contacts WHERE id IN").
		WithArgs(int64(9999)).
		WillReturnResult(sqlmock.NewResult(-1, 0))

	recorder := runTest(db, "DELETE", "/contacts/9999", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestParse executes a POST request against the parse endpoint. It expects parsed candidates and
// per-line failures without any database access.
func TestParse(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)

	recorder := runTest(db, "POST", "/contacts/parse", strings.NewReader(`
		{
			"text": "John Doe, 1234567890, john@example.com, Client\n!!!"
		}
	`))
	assert.Equal(t, http.StatusOK, recorder.Code)
	var parseBody map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &parseBody)
	assert.Equal(t, 1.0, parseBody["total"])
	contacts := parseBody["contacts"].([]interface{})
	assert.Equal(t, 1, len(contacts))
	failures := parseBody["failures"].([]interface{})
	assert.Equal(t, 1, len(failures))
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestImportRawText executes a POST request against the import endpoint with one clean and one
// conflicting line. It expects the clean contact to be inserted and the conflicting one to be
// reported with its matches.
func TestImportRawText(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	// First candidate: no duplicates, inserted.
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE \\(phone = \\?").
		WillReturnRows(sqlmock.NewRows(contactColumns))
	mock.ExpectExec("INSERT INTO contacts").
		WillReturnResult(sqlmock.NewResult(1, 1))
	// Second candidate: an existing contact shares the phone.
	duplicateRows := sqlmock.NewRows(contactColumns)
	addContactRow(duplicateRows, 9, "Janet", "Smithe", "9876543210", nil)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE \\(phone = \\?").
		WillReturnRows(duplicateRows)

	recorder := runTest(db, "POST", "/contacts/import", strings.NewReader(`
		{
			"text": "John Doe, 1234567890, john@example.com, Client\nJane Smith 987-654-3210"
		}
	`))
	assert.Equal(t, http.StatusOK, recorder.Code)
	var importBody map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &importBody)
	assert.Equal(t, 2.0, importBody["total"])
	assert.Equal(t, 1.0, importBody["imported"])
	assert.Equal(t, 1.0, importBody["duplicates"])
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestImportCSV executes a POST request with a CSV body. It expects the rows to run through the
// same duplicate check and insert as parsed text.
func TestImportCSV(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE \\(phone = \\?").
		WillReturnRows(sqlmock.NewRows(contactColumns))
	mock.ExpectExec("INSERT INTO contacts").
		WillReturnResult(sqlmock.NewResult(1, 1))

	csv := "firstname,lastname,phone,email\nJohn,Doe,1234567890,john@example.com\n"
	recorder := runTest(db, "POST", "/contacts/import/csv", strings.NewReader(csv))
	assert.Equal(t, http.StatusOK, recorder.Code)
	var importBody map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &importBody)
	assert.Equal(t, 1.0, importBody["imported"])
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestImportSourceRecords executes a POST request with already-fetched Gmail tuples. It expects
// them to pass the shared validity filter and duplicate check.
func TestImportSourceRecords(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE \\(phone = \\?").
		WillReturnRows(sqlmock.NewRows(contactColumns))
	mock.ExpectExec("INSERT INTO contacts").
		WillReturnResult(sqlmock.NewResult(1, 1))

	recorder := runTest(db, "POST", "/contacts/import/records", strings.NewReader(`
		{
			"source": "Gmail",
			"records": [
				{"firstname": "John", "lastname": "Doe", "phone": "1234567890", "email": "john@example.com"},
				{"firstname": "", "lastname": "", "phone": "123"}
			]
		}
	`))
	assert.Equal(t, http.StatusOK, recorder.Code)
	var importBody map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &importBody)
	assert.Equal(t, 1.0, importBody["total"])
	assert.Equal(t, 1.0, importBody["imported"])
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestImportSourceRecordsInvalidSource expects the BAD REQUEST status code for an unknown source.
func TestImportSourceRecordsInvalidSource(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)

	recorder := runTest(db, "POST", "/contacts/import/records", strings.NewReader(`
		{
			"source": "Facebook",
			"records": []
		}
	`))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestCheckDuplicates executes a POST request against the check endpoint for a candidate whose
// phone exists in the corpus. It expects the match to be reported without anything being
// persisted.
func TestCheckDuplicates(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	rows := sqlmock.NewRows(contactColumns)
	addContactRow(rows, 7, "Quentin", "Quill", "1234567890", nil)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE \\(phone = \\?").
		WillReturnRows(rows)

	recorder := runTest(db, "POST", "/contacts/check-duplicates", strings.NewReader(`
		{
			"firstname": "Erika",
			"phone": "123-456-7890"
		}
	`))
	assert.Equal(t, http.StatusOK, recorder.Code)
	var checkBody map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &checkBody)
	assert.Equal(t, true, checkBody["has_duplicates"])
	assert.Equal(t, 1.0, checkBody["total_duplicates"])
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestMerge executes a POST request against the merge endpoint. It expects the primary to be
// filled from the duplicate, the duplicate to be deleted, and the merge result to be returned.
func TestMerge(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	primaryRows := sqlmock.NewRows(contactColumns)
	addContactRow(primaryRows, 1, "Erika", "Mustermann", "+11234567890", nil)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE id = ?").
		WithArgs(int64(1)).
		WillReturnRows(primaryRows)
	duplicateRows := sqlmock.NewRows(contactColumns)
	addContactRow(duplicateRows, 2, "Erika", "Mustermann", "+11234567890", "erika@example.com")
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE id = ?").
		WithArgs(int64(2)).
		WillReturnRows(duplicateRows)
	mock.ExpectExec("UPDATE contacts SET email = \\?, updated_at = \\? WHERE id = \\?").
		WithArgs("erika@example.com", sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(-1, 1))
	mergedRows := sqlmock.NewRows(contactColumns)
	addContactRow(mergedRows, 1, "Erika", "Mustermann", "+11234567890", "erika@example.com")
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE id = ?").
		WithArgs(int64(1)).
		WillReturnRows(mergedRows)
	mock.ExpectExec("DELETE FROM contacts WHERE id IN").
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(-1, 1))

	recorder := runTest(db, "POST", "/contacts/merge", strings.NewReader(`
		{
			"primary_id": 1,
			"duplicate_ids": [2]
		}
	`))
	assert.Equal(t, http.StatusOK, recorder.Code)
	var mergeBody map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &mergeBody)
	mergedContact := mergeBody["merged_contact"].(map[string]interface{})
	assert.Equal(t, 1.0, mergedContact["id"])
	assert.Equal(t, "erika@example.com", mergedContact["email"])
	deletedIds := mergeBody["deleted_ids"].([]interface{})
	assert.Equal(t, []interface{}{2.0}, deletedIds)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestMergePrimaryNotFound executes a POST request against the merge endpoint with a nonexistent
// primary. It expects the NOT FOUND status code.
func TestMergePrimaryNotFound(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE id = ?").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(contactColumns))

	recorder := runTest(db, "POST", "/contacts/merge", strings.NewReader(`
		{
			"primary_id": 99,
			"duplicate_ids": [2]
		}
	`))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
