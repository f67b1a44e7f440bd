package http

import (
	"errors"
	"net/http"

	"github.com/mkarpenko/gonotes/internal/service"
	"github.com/mkarpenko/gonotes/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrGenerationFailed: http.StatusBadGateway,

	store.ErrNoteNotFound: http.StatusNotFound,
	store.ErrNoteNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
