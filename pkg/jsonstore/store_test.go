package jsonstore_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"personal-ai-partner/pkg/jsonstore"
)

type record struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

func TestLoadMissingFile(t *testing.T) {
	s := jsonstore.New[record](filepath.Join(t.TempDir(), "missing.json"))

	records, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty store, got %d records", len(records))
	}
}

func TestAppendAndLoad(t *testing.T) {
	s := jsonstore.New[record](filepath.Join(t.TempDir(), "conversation.json"))
	ctx := context.Background()

	if err := s.Append(ctx, record{Role: "user", Text: "椅子を買いたい"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append(ctx, record{Role: "assistant", Text: "メッシュ素材がおすすめです"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Role != "user" || records[1].Role != "assistant" {
		t.Errorf("records out of order: %+v", records)
	}
}

func TestAppendPairIsSingleWrite(t *testing.T) {
	s := jsonstore.New[record](filepath.Join(t.TempDir(), "conversation.json"))
	ctx := context.Background()

	err := s.Append(ctx,
		record{Role: "user", Text: "hello"},
		record{Role: "assistant", Text: "hi"},
	)
	if err != nil {
		t.Fatalf("append pair: %v", err)
	}

	records, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestRoundTripPreservesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conversation.json")
	s := jsonstore.New[record](path)
	ctx := context.Background()

	if err := s.Append(ctx, record{Role: "user", Text: "first"}, record{Role: "assistant", Text: "second"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	records, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := s.Overwrite(ctx, records); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Errorf("load+persist round trip changed the document:\nbefore: %s\nafter: %s", before, after)
	}
}

func TestCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s := jsonstore.New[record](path)

	_, err := s.Load(context.Background())
	if !errors.Is(err, jsonstore.ErrCorrupted) {
		t.Errorf("expected ErrCorrupted, got %v", err)
	}

	// Appends must not clobber a corrupted file either.
	if err := s.Append(context.Background(), record{Role: "user", Text: "x"}); !errors.Is(err, jsonstore.ErrCorrupted) {
		t.Errorf("expected ErrCorrupted on append, got %v", err)
	}
	raw, _ := os.ReadFile(path)
	if string(raw) != "{not json" {
		t.Errorf("corrupted file was modified: %s", raw)
	}
}
