package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	err := New(ErrCodeMalformedGeneration, "bad shape")
	want := "MALFORMED_GENERATION: bad shape"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestAppError_ErrorWithCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := ExternalService("llm", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be in the error chain")
	}
	if err.Error() == "" {
		t.Fatal("expected non-empty error string")
	}
}

func TestNew_RetryableDetection(t *testing.T) {
	if !New(ErrCodeExternalService, "x").Retryable {
		t.Fatal("external service errors should be retryable")
	}
	if New(ErrCodeMalformedGeneration, "x").Retryable {
		t.Fatal("malformed generation should not be retryable")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(MissingDependency("questions")); got != ErrCodeMissingDependency {
		t.Fatalf("expected MISSING_DEPENDENCY, got %s", got)
	}
	if got := CodeOf(errors.New("plain")); got != ErrCodeInternal {
		t.Fatalf("plain errors should classify as INTERNAL_ERROR, got %s", got)
	}
}

func TestCodeOf_Wrapped(t *testing.T) {
	inner := Timeout("generate")
	wrapped := fmt.Errorf("stage questions: %w", inner)
	if got := CodeOf(wrapped); got != ErrCodeTimeout {
		t.Fatalf("expected TIMEOUT through wrapping, got %s", got)
	}
	if !IsRetryable(wrapped) {
		t.Fatal("wrapped timeout should still be retryable")
	}
}

func TestIsFatalCode(t *testing.T) {
	for _, code := range []ErrorCode{ErrCodeDuplicateWrite, ErrCodeCyclicGraph, ErrCodeMissingDependency} {
		if !IsFatalCode(code) {
			t.Fatalf("expected %s to be fatal", code)
		}
	}
	for _, code := range []ErrorCode{ErrCodeMalformedGeneration, ErrCodeIncompleteAssembly, ErrCodeSinkWrite, ErrCodeStageSkipped} {
		if IsFatalCode(code) {
			t.Fatalf("expected %s to be branch-local", code)
		}
	}
}

func TestDuplicateWrite_Details(t *testing.T) {
	err := DuplicateWrite("faq_page", "faq", "faq_v2")
	if err.Details["slot"] != "faq_page" {
		t.Fatalf("expected slot detail, got %v", err.Details)
	}
}

func TestWithDetail(t *testing.T) {
	err := MalformedGeneration("empty answer").WithDetail("index", 3)
	if err.Details["index"] != 3 {
		t.Fatalf("expected detail index=3, got %v", err.Details)
	}
}
