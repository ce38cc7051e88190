package input

import (
	"context"

	"golang.org/x/text/language"

	"smartz/internal/domain/entities"
)

type MessageUseCase interface {
	Resolve(ctx context.Context, contract *entities.Contract, key entities.MessageKey, locale language.Tag) (*entities.ResolvedMessage, error)
	ResolveNamed(ctx context.Context, contract string, key entities.MessageKey, locale language.Tag) (*entities.ResolvedMessage, error)
	Contracts() []*entities.Contract
}
