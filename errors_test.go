package gamebryo

import "testing"

func TestTruncationErrorMessage(t *testing.T) {
	err := truncated(42, 4)
	want := `unexpected end of file at "42" (read of "4" bytes)`
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestTruncationSkipErrorMessage(t *testing.T) {
	err := truncatedSkip(7, 16)
	want := `unexpected end of file at "7" (skip of "16" bytes)`
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}
