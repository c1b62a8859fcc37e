package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestFromTypedError(t *testing.T) {
	err := Conflict("already there")

	got := From(err)
	if got.Kind != KindConflict {
		t.Fatalf("kind = %q, want conflict", got.Kind)
	}
	if got.Message != "already there" {
		t.Fatalf("message = %q", got.Message)
	}
}

func TestFromWrappedError(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("missing"))

	if !IsKind(err, KindNotFound) {
		t.Fatalf("wrapped error lost its kind: %v", err)
	}
}

func TestFromPlainError(t *testing.T) {
	err := errors.New("disk on fire")

	got := From(err)
	if got.Kind != KindInternal {
		t.Fatalf("kind = %q, want internal", got.Kind)
	}
	// The cause stays wrapped for logs but out of the client message.
	if got.Message != "Internal server error" {
		t.Fatalf("message = %q, leaks internals", got.Message)
	}
	if !errors.Is(got, err) {
		t.Fatal("cause not wrapped")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("s3 timeout")
	err := Upload("Image upload failed", cause)

	if !errors.Is(err, cause) {
		t.Fatal("Unwrap does not reach the cause")
	}
	if !IsKind(err, KindUpload) {
		t.Fatal("upload kind lost")
	}
}
