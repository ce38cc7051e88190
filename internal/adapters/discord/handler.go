package discord

import (
	"log/slog"

	"smartz/internal/ports/input"
	"smartz/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	messages      input.MessageUseCase
	tr            output.T
	defaultLocale string
	logger        *slog.Logger
}

// NewHandler creates a Handler. defaultLocale is used when an interaction
// carries no locale.
func NewHandler(
	messages input.MessageUseCase,
	tr output.T,
	defaultLocale string,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		messages:      messages,
		tr:            tr,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
}
