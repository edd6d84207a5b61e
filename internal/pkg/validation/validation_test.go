package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

type sample struct {
	Email   string  `validate:"required,email"`
	Premium float64 `validate:"gt=0"`
}

func TestStruct_Valid(t *testing.T) {
	if err := Struct(sample{Email: "a@example.com", Premium: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_Messages(t *testing.T) {
	err := Struct(sample{Email: "nope", Premium: 0})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "email must be a valid email") {
		t.Fatalf("missing email message: %s", msg)
	}
	if !strings.Contains(msg, "premium must be greater than 0") {
		t.Fatalf("missing premium message: %s", msg)
	}
}

func TestVar_LabelsField(t *testing.T) {
	err := Var("password", "abc", "min=6")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "password must be at least 6 characters") {
		t.Fatalf("unexpected message: %s", err)
	}
}
