package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyNotFound reports whether a driver error should surface to
// callers as [ErrNoteNotFound].
//
// Besides sql.ErrNoRows this covers PostgreSQL class 22 data exceptions
// raised when a malformed identifier reaches the uuid column
// (22P02 invalid_text_representation). Treating those the same as a
// missing row keeps the id format an implementation detail of the
// store.
func classifyNotFound(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgerrcode.InvalidTextRepresentation,
		pgerrcode.DataException:
		return true
	}

	return false
}
