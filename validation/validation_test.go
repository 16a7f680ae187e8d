package validation

import (
	"strings"
	"testing"

	apperrors "github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/errors"
)

type sample struct {
	Name     string   `json:"product_name" validate:"required"`
	Variants []string `json:"variants" validate:"required,min=1"`
	Kind     string   `json:"kind" validate:"omitempty,oneof=serum cream"`
}

func TestValidate_Passes(t *testing.T) {
	err := Validate(sample{Name: "GlowBoost", Variants: []string{"30ml"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	err := Validate(sample{Variants: []string{"30ml"}})
	if err == nil {
		t.Fatal("expected error for missing name")
	}
	if apperrors.CodeOf(err) != apperrors.ErrCodeInvalidInput {
		t.Fatalf("expected INVALID_INPUT, got %s", apperrors.CodeOf(err))
	}
	if !strings.Contains(err.Error(), "product_name") {
		t.Fatalf("expected json tag name in message, got %q", err.Error())
	}
}

func TestValidate_Oneof(t *testing.T) {
	err := Validate(sample{Name: "x", Variants: []string{"a"}, Kind: "oil"})
	if err == nil {
		t.Fatal("expected error for unrecognized kind")
	}
	if !strings.Contains(err.Error(), "must be one of") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestValidate_FieldDetails(t *testing.T) {
	err := Validate(sample{})
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T", err)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) == 0 {
		t.Fatalf("expected field details, got %v", appErr.Details)
	}
}
