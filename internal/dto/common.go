package dto

// MutationResult is the uniform outcome of a validated mutation. Field errors
// are keyed by the form field name, Message carries a human-readable summary,
// and RedirectTo names the dashboard route the client should navigate to on
// success. A nil Errors map with an empty Message means the mutation succeeded.
type MutationResult struct {
	Errors     map[string][]string `json:"errors,omitempty"`
	Message    string              `json:"message,omitempty"`
	RedirectTo string              `json:"redirect_to,omitempty"`
}

// OK reports whether the mutation completed without validation or system errors.
func (r *MutationResult) OK() bool {
	return len(r.Errors) == 0 && r.Message == ""
}

// AddFieldError appends a message to the error list for the given field.
func (r *MutationResult) AddFieldError(field, message string) {
	if r.Errors == nil {
		r.Errors = make(map[string][]string)
	}
	r.Errors[field] = append(r.Errors[field], message)
}

// PaginationMeta describes the pagination state of a list response. Window is
// the page-number strip to render, with -1 marking an ellipsis gap.
type PaginationMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	Window     []int `json:"window"`
}
