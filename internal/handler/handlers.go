package handler

import (
	"github.com/mkarpenko/gonotes/internal/handler/http"
	"github.com/mkarpenko/gonotes/internal/logger"
	"github.com/mkarpenko/gonotes/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
