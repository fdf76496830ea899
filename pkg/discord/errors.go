package discord

import (
	"localebot/internal/domain"
	"localebot/internal/domain/entities"
)

// Translator is the part of the translation use case error messages need.
type Translator interface {
	Translate(scope string, opts ...entities.Options) string
}

const (
	errorScope   = "bot.errors."
	genericError = "generic"
)

// DomainErrorMessage resolves err to a translated user-facing message under
// bot.errors.<code>. Errors without a domain code get the generic message.
func DomainErrorMessage(tr Translator, err error) string {
	if err == nil {
		return ""
	}
	code := domain.Code(err)
	if code == "" {
		code = genericError
	}
	msg := tr.Translate(errorScope + code)
	if isMissing(msg) {
		msg = tr.Translate(errorScope + genericError)
	}
	return "❌ " + msg
}

func isMissing(msg string) bool {
	return len(msg) > 1 && msg[0] == '[' && msg[len(msg)-1] == ']'
}
