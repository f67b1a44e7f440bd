package models

import "time"

// Note is the single persisted entity of the application: a short text
// record with three AI-derived fields that are written back by the
// generation operations.
type Note struct {
	// ID is the unique identifier of the note, assigned by the store on
	// creation. Immutable afterwards.
	ID string `json:"id"`

	// Title is the user-supplied (or AI-generated) heading. Optional.
	Title string `json:"title"`

	// Content is the primary note body. Optional.
	Content string `json:"content"`

	// Summary holds the last AI-generated summary of Content.
	Summary string `json:"summary"`

	// Elaboration holds the last AI-generated expansion of Content.
	Elaboration string `json:"elaboration"`

	// Tags is an ordered list of labels. Entries are trimmed non-empty
	// strings; the list is never null in API responses.
	Tags []string `json:"tags"`

	// CreatedAt and UpdatedAt are maintained by the store. UpdatedAt is
	// refreshed on every mutation, including generation writes.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
