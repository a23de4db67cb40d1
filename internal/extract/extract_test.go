package extract

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jobhunt-backend/internal/shared/storage/object"
	local "jobhunt-backend/internal/shared/storage/object/local"
)

func TestTextRejectsNonPDF(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte(""),
		[]byte("plain text resume"),
		[]byte("%PDF-1.7 truncated garbage"),
	}
	for _, data := range inputs {
		if _, err := Text(data); !errors.Is(err, ErrNotPDF) {
			t.Fatalf("Text(%q): expected ErrNotPDF, got %v", data, err)
		}
	}
}

func TestTextFromStoreMissingResume(t *testing.T) {
	store := local.New(t.TempDir())
	_, err := TextFromStore(context.Background(), store, "missing.pdf")
	if !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTextFromStoreSurfacesParseError(t *testing.T) {
	store := local.New(t.TempDir())
	ctx := context.Background()
	if _, _, err := store.Save(ctx, "bad.pdf", strings.NewReader("not a pdf")); err != nil {
		t.Fatalf("save: %v", err)
	}
	_, err := TextFromStore(ctx, store, "bad.pdf")
	if !errors.Is(err, ErrNotPDF) {
		t.Fatalf("expected ErrNotPDF, got %v", err)
	}
}
