package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/text/language"

	"smartz/internal/domain"
	"smartz/internal/domain/entities"
	"smartz/internal/ports/input"
	"smartz/internal/ports/output"
	"smartz/pkg/msgformat"
)

var _ input.MessageUseCase = (*MessageService)(nil)

// MessageService resolves message contracts against a ResourceStore. It holds
// no per-call state and is safe for concurrent use.
type MessageService struct {
	store     output.ResourceStore
	contracts *ContractRegistry
	logger    *slog.Logger
}

func NewMessageService(
	store output.ResourceStore,
	contracts *ContractRegistry,
	logger *slog.Logger,
) *MessageService {
	if contracts == nil {
		contracts = NewContractRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MessageService{
		store:     store,
		contracts: contracts,
		logger:    logger,
	}
}

// Registry returns the contracts ResolveNamed looks names up in.
func (s *MessageService) Registry() *ContractRegistry {
	return s.contracts
}

func (s *MessageService) Contracts() []*entities.Contract {
	return s.contracts.Contracts()
}

// ResolveNamed resolves the contract registered under name.
func (s *MessageService) ResolveNamed(ctx context.Context, name string, key entities.MessageKey, locale language.Tag) (*entities.ResolvedMessage, error) {
	c, ok := s.contracts.Get(name)
	if !ok {
		return nil, fmt.Errorf("contract %q: %w", name, domain.ErrUnknownContract)
	}
	return s.Resolve(ctx, c, key, locale)
}

// Resolve looks every field of c up for key under locale. Fields are
// processed in declaration order; the first required field whose resource is
// missing aborts the call with a *domain.ResolutionError and no message.
// Optional fields with a missing resource are absent from the result. Texts
// of an entities.EnhancedMessageKey have their {n} placeholders replaced by
// the key's context; texts of a plain key are returned as stored.
// language.Und resolves through the store's default locale.
func (s *MessageService) Resolve(ctx context.Context, c *entities.Contract, key entities.MessageKey, locale language.Tag) (*entities.ResolvedMessage, error) {
	if key == nil || key.MessageKey() == "" {
		return nil, fmt.Errorf("contract %q: %w", c.Name(), domain.ErrEmptyMessageKey)
	}
	msgKey := key.MessageKey()

	bundle, err := s.store.Bundle(ctx, c.Bundle(), locale)
	if err != nil {
		if errors.Is(err, domain.ErrBundleNotFound) {
			return nil, &domain.ResolutionError{
				Kind:     domain.KindBundleNotFound,
				Contract: c.Name(),
				Bundle:   c.Bundle(),
				Locale:   locale.String(),
				Err:      err,
			}
		}
		return nil, fmt.Errorf("resolve %s: %w", c.Name(), err)
	}

	var args []any
	var formatter *msgformat.Formatter
	if enhanced, ok := key.(entities.EnhancedMessageKey); ok {
		args = enhanced.Context()
		formatter = msgformat.New(locale)
	}

	fields := c.Fields()
	texts := make(map[string]string, len(fields))
	for _, field := range fields {
		compositeKey := c.CompositeKey(msgKey, field)
		text, err := bundle.Text(compositeKey)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrMissingResource) && !field.Required:
			s.logger.Debug("message: optional field absent",
				"contract", c.Name(), "field", field.Name, "key", compositeKey, "locale", locale.String())
			continue
		case errors.Is(err, domain.ErrMissingResource):
			return nil, &domain.ResolutionError{
				Kind:     domain.KindMissingResource,
				Contract: c.Name(),
				Bundle:   c.Bundle(),
				Field:    field.Name,
				Key:      compositeKey,
				Locale:   locale.String(),
				Err:      err,
			}
		default:
			return nil, fmt.Errorf("resolve %s: field %s: %w", c.Name(), field.Name, err)
		}

		if formatter != nil {
			text = formatter.Format(text, args...)
		}
		texts[field.Name] = text
	}

	return entities.NewResolvedMessage(c, msgKey, locale, texts)
}
