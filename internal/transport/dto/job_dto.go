package dto

// CreateJobRequest is bound from the multipart/urlencoded form posted by
// the client when adding an application. Optional fields left empty are
// omitted from the stored record.
type CreateJobRequest struct {
	Company  string `form:"company" validate:"required"`
	Position string `form:"position" validate:"required"`
	Location string `form:"location" validate:"required"`
	Date     string `form:"date" validate:"required,datetime=2006-01-02"`
	Status   string `form:"status" validate:"required"`
	Notes    string `form:"notes"`
	Salary   string `form:"salary"`
	Contact  string `form:"contact"`
	URL      string `form:"url"`
}

// UpdateJobRequest carries a partial JSON object for PUT /jobs/:id.
// Pointer fields distinguish "absent" (leave unchanged) from "present".
// A provided required field must be non-empty; a provided empty optional
// field clears the stored value.
type UpdateJobRequest struct {
	Company  *string `json:"company" validate:"omitnil,min=1"`
	Position *string `json:"position" validate:"omitnil,min=1"`
	Location *string `json:"location" validate:"omitnil,min=1"`
	Date     *string `json:"date" validate:"omitnil,datetime=2006-01-02"`
	Status   *string `json:"status" validate:"omitnil,min=1"`
	Notes    *string `json:"notes"`
	Salary   *string `json:"salary"`
	Contact  *string `json:"contact"`
	URL      *string `json:"url"`
}

// IsEmpty reports whether the request names no fields at all, in which
// case an update is a no-op read.
func (r *UpdateJobRequest) IsEmpty() bool {
	return r.Company == nil && r.Position == nil && r.Location == nil &&
		r.Date == nil && r.Status == nil && r.Notes == nil &&
		r.Salary == nil && r.Contact == nil && r.URL == nil
}
