package domain

import (
	"errors"
	"fmt"
)

// Contract definition errors. All of them wrap ErrContractInvalid.
var (
	ErrContractInvalid     = errors.New("contract invalid")
	ErrEmptyContract       = fmt.Errorf("%w: no fields declared", ErrContractInvalid)
	ErrDuplicateSuffix     = fmt.Errorf("%w: duplicate suffix", ErrContractInvalid)
	ErrDuplicateField      = fmt.Errorf("%w: duplicate field name", ErrContractInvalid)
	ErrIllegalFieldName    = fmt.Errorf("%w: illegal field name", ErrContractInvalid)
	ErrMissingBundle       = fmt.Errorf("%w: bundle name is required", ErrContractInvalid)
	ErrUnnamedContract     = fmt.Errorf("%w: contract name is required", ErrContractInvalid)
	ErrConflictingContract = fmt.Errorf("%w: conflicting registration", ErrContractInvalid)
)

// Resolution errors.
var (
	ErrBundleNotFound  = errors.New("bundle not found")
	ErrMissingResource = errors.New("missing resource")
	ErrEmptyMessageKey = errors.New("empty message key")
	ErrUnknownContract = errors.New("unknown contract")
	ErrInvalidLocale   = errors.New("invalid locale")
)

// Kind classifies a ResolutionError.
type Kind int

const (
	KindMissingResource Kind = iota + 1
	KindBundleNotFound
	KindContractInvalid
)

func (k Kind) String() string {
	switch k {
	case KindMissingResource:
		return "MissingResource"
	case KindBundleNotFound:
		return "BundleNotFound"
	case KindContractInvalid:
		return "ContractInvalid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ResolutionError reports why a message could not be resolved. Field and Key
// are set for MissingResource and name the first failing field in declaration
// order together with the composite key that was probed.
type ResolutionError struct {
	Kind     Kind
	Contract string
	Bundle   string
	Field    string
	Key      string
	Locale   string
	Err      error
}

func (e *ResolutionError) Error() string {
	switch e.Kind {
	case KindMissingResource:
		return fmt.Sprintf("resolve %s: field %s: key %q not found in bundle %s (locale %q): %v",
			e.Contract, e.Field, e.Key, e.Bundle, e.Locale, e.Err)
	case KindBundleNotFound:
		return fmt.Sprintf("resolve %s: bundle %s (locale %q): %v", e.Contract, e.Bundle, e.Locale, e.Err)
	default:
		return fmt.Sprintf("resolve %s: %s: %v", e.Contract, e.Kind, e.Err)
	}
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Code maps err to a short stable identifier, or "" when err is not a known
// domain error. Adapters use it to pick a user-facing message.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingResource):
		return "missing_resource"
	case errors.Is(err, ErrBundleNotFound):
		return "bundle_not_found"
	case errors.Is(err, ErrUnknownContract):
		return "unknown_contract"
	case errors.Is(err, ErrEmptyMessageKey):
		return "empty_message_key"
	case errors.Is(err, ErrInvalidLocale):
		return "invalid_locale"
	case errors.Is(err, ErrContractInvalid):
		return "contract_invalid"
	default:
		return ""
	}
}
