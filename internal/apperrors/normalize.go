package apperrors

import (
	"errors"
	"strings"
)

// Kind is the normalized error taxonomy bucket.
type Kind string

const (
	KindNetwork            Kind = "network"
	KindDuplicateEmail     Kind = "duplicate_email"
	KindInvalidEmail       Kind = "invalid_email"
	KindEmailNotFound      Kind = "email_not_found"
	KindWrongPassword      Kind = "wrong_password"
	KindWeakPassword       Kind = "weak_password"
	KindUsernameTaken      Kind = "username_taken"
	KindInvalidUsername    Kind = "invalid_username"
	KindStorage            Kind = "storage"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindSignupFailed       Kind = "signup_failed"
	KindNoUserLoggedIn     Kind = "no_user"
	KindProductNotFound    Kind = "product_not_found"
	KindUnknown            Kind = "unknown"
)

// Field routes a normalized error to the form field it concerns.
type Field string

const (
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
	FieldUsername Field = "username"
	FieldGlobal   Field = "global"
)

// AppError is the normalized error held in state and read by the UI.
// Message carries the user-facing copy; technical detail stays in Debug and
// must never be shown to the user.
type AppError struct {
	Kind    Kind
	Field   Field
	Message string
	Debug   string
}

func (e *AppError) Error() string {
	if e.Debug != "" {
		return e.Debug
	}
	return e.Message
}

// userMessages maps each taxonomy bucket to its user-facing copy.
var userMessages = map[Kind]string{
	KindNetwork:            "Problème de connexion réseau. Veuillez réessayer.",
	KindDuplicateEmail:     "Cet email est déjà utilisé.",
	KindInvalidEmail:       "Format d'email invalide.",
	KindEmailNotFound:      "Aucun compte associé à cet email.",
	KindWrongPassword:      "Mot de passe incorrect.",
	KindWeakPassword:       "Mot de passe trop faible (6 caractères minimum).",
	KindUsernameTaken:      "Ce nom d'utilisateur est déjà pris.",
	KindInvalidUsername:    "Nom d'utilisateur invalide.",
	KindStorage:            "Impossible d'enregistrer les données localement.",
	KindInvalidCredentials: "Email ou mot de passe incorrect.",
	KindSignupFailed:       "L'inscription a échoué. Veuillez réessayer.",
	KindNoUserLoggedIn:     "Aucun utilisateur connecté.",
	KindProductNotFound:    "Produit introuvable.",
	KindUnknown:            "Une erreur est survenue. Veuillez réessayer.",
}

// fields maps each taxonomy bucket to the form field it should highlight.
var fields = map[Kind]Field{
	KindDuplicateEmail:  FieldEmail,
	KindInvalidEmail:    FieldEmail,
	KindEmailNotFound:   FieldEmail,
	KindWrongPassword:   FieldPassword,
	KindWeakPassword:    FieldPassword,
	KindUsernameTaken:   FieldUsername,
	KindInvalidUsername: FieldUsername,
}

// New builds an AppError for a known kind, with the standard user message
// and field routing.
func New(kind Kind, debug string) *AppError {
	field, ok := fields[kind]
	if !ok {
		field = FieldGlobal
	}
	return &AppError{Kind: kind, Field: field, Message: userMessages[kind], Debug: debug}
}

// Normalize classifies an arbitrary error into the taxonomy. Tagged sentinel
// errors are matched first with errors.Is; anything untagged falls back to a
// case-insensitive keyword scan of the message text, and finally to
// KindUnknown.
func Normalize(err error) *AppError {
	return NormalizeAs(err, KindUnknown)
}

// NormalizeAs is Normalize with a caller-chosen fallback bucket, used by
// signup so that unrecognized failures surface as KindSignupFailed.
func NormalizeAs(err error, fallback Kind) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrDuplicateEmail):
		return New(KindDuplicateEmail, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return New(KindInvalidCredentials, err.Error())
	case errors.Is(err, ErrUserNotFound):
		return New(KindEmailNotFound, err.Error())
	case errors.Is(err, ErrProductNotFound):
		return New(KindProductNotFound, err.Error())
	case errors.Is(err, ErrNoUserLoggedIn):
		return New(KindNoUserLoggedIn, err.Error())
	case errors.Is(err, ErrStorage):
		return New(KindStorage, err.Error())
	}

	if kind, ok := classifyMessage(err.Error()); ok {
		return New(kind, err.Error())
	}
	return New(fallback, err.Error())
}

// classifyMessage is the legacy heuristic: a keyword scan over the message
// text. It only runs for errors that carry no sentinel tag.
func classifyMessage(msg string) (Kind, bool) {
	m := strings.ToLower(msg)

	switch {
	case strings.Contains(m, "network") || strings.Contains(m, "réseau") || strings.Contains(m, "timeout"):
		return KindNetwork, true
	case strings.Contains(m, "already registered") || strings.Contains(m, "already exists") || strings.Contains(m, "already in use") || strings.Contains(m, "déjà utilisé"):
		return KindDuplicateEmail, true
	case strings.Contains(m, "invalid email") || strings.Contains(m, "email invalide"):
		return KindInvalidEmail, true
	case strings.Contains(m, "user not found") || strings.Contains(m, "email not found") || strings.Contains(m, "no such user"):
		return KindEmailNotFound, true
	case strings.Contains(m, "wrong password") || strings.Contains(m, "incorrect password"):
		return KindWrongPassword, true
	case strings.Contains(m, "weak password") || strings.Contains(m, "password too short"):
		return KindWeakPassword, true
	case strings.Contains(m, "username taken") || strings.Contains(m, "username already"):
		return KindUsernameTaken, true
	case strings.Contains(m, "invalid username"):
		return KindInvalidUsername, true
	case strings.Contains(m, "storage") || strings.Contains(m, "database") || strings.Contains(m, "disk"):
		return KindStorage, true
	case strings.Contains(m, "invalid credentials") || strings.Contains(m, "invalid login"):
		return KindInvalidCredentials, true
	}
	return KindUnknown, false
}
