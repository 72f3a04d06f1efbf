package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	if got := KindOf(New(NotFound, "missing")); got != NotFound {
		t.Errorf("KindOf = %v, want NotFound", got)
	}
	if got := KindOf(errors.New("plain")); got != Unknown {
		t.Errorf("KindOf(plain) = %v, want Unknown", got)
	}

	wrapped := fmt.Errorf("outer: %w", New(Conflict, "dup"))
	if got := KindOf(wrapped); got != Conflict {
		t.Errorf("KindOf(wrapped) = %v, want Conflict", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		NotFound:   http.StatusNotFound,
		Forbidden:  http.StatusUnauthorized,
		Validation: http.StatusBadRequest,
		Conflict:   http.StatusConflict,
		Store:      http.StatusBadGateway,
		Unknown:    http.StatusInternalServerError,
	}
	for kind, want := range cases {
		if got := HTTPStatus(New(kind, "x")); got != want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", kind, got, want)
		}
	}
	if got := HTTPStatus(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("HTTPStatus(plain) = %d, want 500", got)
	}
}

func TestErrorMessage(t *testing.T) {
	err := Wrap(Store, "failed to upload image", errors.New("timeout"))
	if err.Error() != "failed to upload image: timeout" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, New(Store, "anything")) {
		t.Error("errors.Is should match by kind")
	}
}
