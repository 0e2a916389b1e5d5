package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"atrium/shared/failure"
)

func TestFailureConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "bad request from error",
			err:      failure.BadRequest(errors.New("email is required")),
			wantCode: http.StatusBadRequest,
			wantMsg:  "email is required",
		},
		{
			name:     "bad request from string",
			err:      failure.BadRequestFromString("room does not exist"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "room does not exist",
		},
		{
			name:     "not found",
			err:      failure.NotFound("room not found"),
			wantCode: http.StatusNotFound,
			wantMsg:  "room not found",
		},
		{
			name:     "conflict",
			err:      failure.Conflict("room is referenced by existing bookings"),
			wantCode: http.StatusConflict,
			wantMsg:  "room is referenced by existing bookings",
		},
		{
			name:     "internal error",
			err:      failure.InternalError(errors.New("boom")),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, got)
			}

			if tt.err.Error() != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, tt.err.Error())
			}
		})
	}
}

func TestGetCode_WrappedFailure(t *testing.T) {
	wrapped := fmt.Errorf("failed to delete room: %w", failure.Conflict("room is referenced by existing bookings"))

	if got := failure.GetCode(wrapped); got != http.StatusConflict {
		t.Errorf("expected code %d for wrapped failure, got %d", http.StatusConflict, got)
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected fallback code %d, got %d", http.StatusInternalServerError, got)
	}
}

func TestBadRequest_NilError(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil for nil input, got %v", err)
	}

	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil for nil input, got %v", err)
	}
}
