package clipboard

import (
	"errors"
	"testing"
)

func TestServiceCopyWritesText(testingInstance *testing.T) {
	var captured string
	service := &Service{write: func(text string) error {
		captured = text
		return nil
	}}
	if err := service.Copy("File structure:\n"); err != nil {
		testingInstance.Fatalf("Copy error: %v", err)
	}
	if captured != "File structure:\n" {
		testingInstance.Fatalf("unexpected clipboard contents %q", captured)
	}
}

func TestServiceCopyUnsupported(testingInstance *testing.T) {
	service := &Service{unsupported: true, write: func(string) error {
		testingInstance.Fatalf("write must not be called when unsupported")
		return nil
	}}
	if err := service.Copy("text"); !errors.Is(err, ErrUnsupported) {
		testingInstance.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestServiceCopyWrapsWriteError(testingInstance *testing.T) {
	writeError := errors.New("xclip missing")
	service := &Service{write: func(string) error { return writeError }}
	err := service.Copy("text")
	if !errors.Is(err, writeError) {
		testingInstance.Fatalf("expected wrapped write error, got %v", err)
	}
}
