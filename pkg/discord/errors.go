package discord

import (
	"errors"

	"smartz/internal/domain"
	"smartz/internal/ports/output"
)

// DomainErrorMessage renders err for the user in locale. Errors that carry a
// domain code use the "error.<code>" translation, everything else
// "error.generic". data fills the translation placeholders and is completed
// from a *domain.ResolutionError when err wraps one.
func DomainErrorMessage(t output.T, locale string, err error, data map[string]any) string {
	if err == nil {
		return ""
	}
	key := "error.generic"
	if code := domain.Code(err); code != "" {
		key = "error." + code
	}
	return t.T(locale, key, ErrorData(err, data))
}

// ErrorData merges the details of a *domain.ResolutionError into data.
// Values already in data win.
func ErrorData(err error, data map[string]any) map[string]any {
	out := make(map[string]any, len(data)+5)
	var resErr *domain.ResolutionError
	if errors.As(err, &resErr) {
		out["Contract"] = resErr.Contract
		out["Bundle"] = resErr.Bundle
		out["Field"] = resErr.Field
		out["Key"] = resErr.Key
		out["Locale"] = resErr.Locale
	}
	for k, v := range data {
		out[k] = v
	}
	return out
}
