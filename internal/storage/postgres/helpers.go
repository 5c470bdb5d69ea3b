package postgres

import (
	"fmt"

	"jobtrack/internal/transport/dto"
)

// buildJobUpdateSets constructs the SET clauses for a partial update from
// exactly the fields present in the request.
func buildJobUpdateSets(req *dto.UpdateJobRequest) ([]string, []interface{}) {
	var sets []string
	var args []interface{}

	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Company != nil {
		set("company", *req.Company)
	}
	if req.Position != nil {
		set("position", *req.Position)
	}
	if req.Location != nil {
		set("location", *req.Location)
	}
	if req.Status != nil {
		set("status", *req.Status)
	}
	if req.Date != nil {
		set("date", *req.Date)
	}
	// A provided empty optional clears the column to NULL so absent
	// optionals never round-trip as empty strings.
	if req.Notes != nil {
		set("notes", emptyToNil(*req.Notes))
	}
	if req.Salary != nil {
		set("salary", emptyToNil(*req.Salary))
	}
	if req.Contact != nil {
		set("contact", emptyToNil(*req.Contact))
	}
	if req.URL != nil {
		set("url", emptyToNil(*req.URL))
	}

	return sets, args
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
