package models

// CreateNoteRequest is the body of POST /api/notes. Every field is
// optional; missing text fields default to empty strings and missing
// tags to an empty list.
type CreateNoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// TitleOnlyRequest is the body of POST /api/notes/title-only.
type TitleOnlyRequest struct {
	Title string `json:"title"`
}

// UpdateNoteRequest represents a partial update of a single note.
// Only non-nil fields are applied; nil fields keep their stored value.
type UpdateNoteRequest struct {
	Title       *string   `json:"title,omitempty"`
	Content     *string   `json:"content,omitempty"`
	Summary     *string   `json:"summary,omitempty"`
	Elaboration *string   `json:"elaboration,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

// IsEmpty reports whether the request carries no fields to apply.
func (u UpdateNoteRequest) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Summary == nil &&
		u.Elaboration == nil && u.Tags == nil
}
