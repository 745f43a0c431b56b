package render

import (
	"errors"
	"strings"
	"testing"
)

func TestSessionFullSetup(t *testing.T) {
	var out strings.Builder
	s := NewSession(&out, DefaultSessionOptions())

	if err := s.Enter(); err != nil {
		t.Fatalf("Enter() error = %v", err)
	}
	if err := s.Write("art"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	got := out.String()
	want := "\x1b[?1049h\x1b[?7l\x1b[?25l\x1b[2J\x1b[Hart\x1b[0m\x1b[?25h\x1b[?7h\x1b[?1049l"
	if got != want {
		t.Errorf("session bytes = %q, want %q", got, want)
	}
}

func TestSessionPartialSetup(t *testing.T) {
	var out strings.Builder
	s := NewSession(&out, SessionOptions{HideCursor: true})

	if err := s.Enter(); err != nil {
		t.Fatalf("Enter() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	got := out.String()
	want := "\x1b[?25l\x1b[0m\x1b[?25h"
	if got != want {
		t.Errorf("session bytes = %q, want %q", got, want)
	}
	if strings.Contains(got, "\x1b[?1049") {
		t.Error("partial session must not touch the alternate screen")
	}
}

func TestSessionEnterTwice(t *testing.T) {
	s := NewSession(&strings.Builder{}, DefaultSessionOptions())
	if err := s.Enter(); err != nil {
		t.Fatalf("Enter() error = %v", err)
	}
	if err := s.Enter(); !errors.Is(err, ErrSessionActive) {
		t.Errorf("second Enter() error = %v, want ErrSessionActive", err)
	}
}

func TestSessionCloseInactive(t *testing.T) {
	var out strings.Builder
	s := NewSession(&out, DefaultSessionOptions())
	if err := s.Close(); err != nil {
		t.Errorf("Close() on inactive session error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Close() on inactive session wrote %q", out.String())
	}
}

func TestSessionCloseIsIdempotent(t *testing.T) {
	var out strings.Builder
	s := NewSession(&out, DefaultSessionOptions())
	if err := s.Enter(); err != nil {
		t.Fatalf("Enter() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	n := out.Len()
	if err := s.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	if out.Len() != n {
		t.Error("second Close() wrote more restore sequences")
	}
}
