package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Nil(t *testing.T) {
	assert.Nil(t, Normalize(nil))
}

func TestNormalize_SentinelsBeatMessageScan(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"duplicate email", fmt.Errorf("%w: a@b.com", ErrDuplicateEmail), KindDuplicateEmail},
		{"invalid credentials", ErrInvalidCredentials, KindInvalidCredentials},
		{"user not found", fmt.Errorf("%w: a@b.com", ErrUserNotFound), KindEmailNotFound},
		{"product not found", fmt.Errorf("%w: 123", ErrProductNotFound), KindProductNotFound},
		{"no user logged in", ErrNoUserLoggedIn, KindNoUserLoggedIn},
		{"storage", fmt.Errorf("%w: disk on fire", ErrStorage), KindStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.kind, got.Kind)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestNormalize_MessageScanFallback(t *testing.T) {
	tests := []struct {
		msg  string
		kind Kind
	}{
		{"Network request failed", KindNetwork},
		{"this email already exists", KindDuplicateEmail},
		{"invalid email address", KindInvalidEmail},
		{"user not found", KindEmailNotFound},
		{"wrong password entered", KindWrongPassword},
		{"weak password", KindWeakPassword},
		{"username taken", KindUsernameTaken},
		{"invalid username", KindInvalidUsername},
		{"database is locked", KindStorage},
		{"invalid credentials", KindInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			got := Normalize(errors.New(tt.msg))
			assert.Equal(t, tt.kind, got.Kind)
		})
	}
}

func TestNormalize_UnrecognizedFallsThroughToUnknown(t *testing.T) {
	got := Normalize(errors.New("quelque chose d'imprévu"))
	assert.Equal(t, KindUnknown, got.Kind)
	assert.Equal(t, FieldGlobal, got.Field)
}

func TestNormalizeAs_SignupFallback(t *testing.T) {
	got := NormalizeAs(errors.New("quelque chose d'imprévu"), KindSignupFailed)
	assert.Equal(t, KindSignupFailed, got.Kind)

	// Tagged errors keep their own bucket regardless of the fallback.
	got = NormalizeAs(ErrDuplicateEmail, KindSignupFailed)
	assert.Equal(t, KindDuplicateEmail, got.Kind)
}

func TestNormalize_PassesThroughAppError(t *testing.T) {
	original := New(KindWrongPassword, "debug detail")
	got := Normalize(fmt.Errorf("wrapped: %w", original))
	assert.Same(t, original, got)
}

func TestFieldRouting(t *testing.T) {
	assert.Equal(t, FieldEmail, New(KindDuplicateEmail, "").Field)
	assert.Equal(t, FieldEmail, New(KindEmailNotFound, "").Field)
	assert.Equal(t, FieldPassword, New(KindWrongPassword, "").Field)
	assert.Equal(t, FieldPassword, New(KindWeakPassword, "").Field)
	assert.Equal(t, FieldUsername, New(KindUsernameTaken, "").Field)
	assert.Equal(t, FieldGlobal, New(KindInvalidCredentials, "").Field)
	assert.Equal(t, FieldGlobal, New(KindStorage, "").Field)
}

func TestMessage_NeverLeaksTechnicalDetail(t *testing.T) {
	got := Normalize(errors.New("pq: relation \"users\" does not exist at /src/db.go:42"))
	assert.NotContains(t, got.Message, "db.go")
	assert.Contains(t, got.Debug, "db.go")
}
