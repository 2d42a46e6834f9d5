package cli

import (
	"errors"
	"testing"
)

func TestCommandError(t *testing.T) {
	cause := errors.New("file not found")
	err := NewCommandError("validate", cause)

	if got := err.Error(); got != "command validate failed: file not found" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}
