package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/mkarpenko/gonotes/models"
)

const (
	noteColumns = `id, title, content, summary, elaboration, tags, created_at, updated_at`

	createNote = `INSERT INTO notes (id, title, content, summary, elaboration, tags)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, content, summary, elaboration, tags, created_at, updated_at;`

	listNotes = `SELECT id, title, content, summary, elaboration, tags, created_at, updated_at
		FROM notes
		ORDER BY created_at DESC;`

	getNoteByID = `SELECT id, title, content, summary, elaboration, tags, created_at, updated_at
		FROM notes
		WHERE id = $1;`

	deleteNoteByID = `DELETE FROM notes
		WHERE id = $1;`
)

// buildUpdateNoteQuery assembles a partial UPDATE from the non-nil
// fields of upd. updated_at is always refreshed, so the query is valid
// even for an empty request.
func buildUpdateNoteQuery(id string, upd models.UpdateNoteRequest) (string, []any, error) {
	builder := sq.Update("notes").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + noteColumns).
		PlaceholderFormat(sq.Dollar)

	if upd.Title != nil {
		builder = builder.Set("title", *upd.Title)
	}
	if upd.Content != nil {
		builder = builder.Set("content", *upd.Content)
	}
	if upd.Summary != nil {
		builder = builder.Set("summary", *upd.Summary)
	}
	if upd.Elaboration != nil {
		builder = builder.Set("elaboration", *upd.Elaboration)
	}
	if upd.Tags != nil {
		tags, err := marshalTags(*upd.Tags)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		builder = builder.Set("tags", tags)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// marshalTags encodes tags for the jsonb column. A nil slice is stored
// as an empty array so reads never produce null tags.
func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}

	return json.Marshal(tags)
}

func unmarshalTags(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}

	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}

	return tags, nil
}
