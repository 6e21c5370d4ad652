package source

import (
	"encoding/csv"
	"io"
	"strings"
)

// csvColumns maps recognized header names onto record fields.
var csvColumns = map[string]string{
	"firstname":         "firstname",
	"first_name":        "firstname",
	"first":             "firstname",
	"lastname":          "lastname",
	"last_name":         "lastname",
	"last":              "lastname",
	"phone":             "phone",
	"phone_number":      "phone",
	"mobile":            "phone",
	"email":             "email",
	"email_address":     "email",
	"relationship":      "relationship",
	"relationship_type": "relationship",
	"type":              "relationship",
}

// ReadCSV parses an uploaded CSV file into raw records. The first row is
// treated as a header if any of its cells is a recognized column name;
// otherwise rows are read positionally as firstname, lastname, phone,
// email, relationship. Short rows are tolerated.
func ReadCSV(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []RawRecord{}, nil
	}

	positions := map[int]string{0: "firstname", 1: "lastname", 2: "phone", 3: "email", 4: "relationship"}
	if header := headerPositions(rows[0]); header != nil {
		positions = header
		rows = rows[1:]
	}

	records := make([]RawRecord, 0, len(rows))
	for _, row := range rows {
		var record RawRecord
		empty := true
		for i, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			empty = false
			switch positions[i] {
			case "firstname":
				record.FirstName = cell
			case "lastname":
				record.LastName = cell
			case "phone":
				record.Phone = cell
			case "email":
				record.Email = cell
			case "relationship":
				record.Relationship = cell
			}
		}
		if !empty {
			records = append(records, record)
		}
	}
	return records, nil
}

// headerPositions returns the column layout described by a header row, or
// nil if no cell is a recognized column name.
func headerPositions(row []string) map[int]string {
	positions := map[int]string{}
	for i, cell := range row {
		name := strings.ToLower(strings.TrimSpace(cell))
		if field, ok := csvColumns[name]; ok {
			positions[i] = field
		}
	}
	if len(positions) == 0 {
		return nil
	}
	return positions
}
