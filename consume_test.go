package main

import (
	"context"
	"errors"
	"testing"

	"github.com/prasad-kakudi/proposal-writer-generic/internal/database"
)

// scriptedGenerator fails a fixed number of times before answering, so the
// worker's retry policy can be exercised without a live model.
type scriptedGenerator struct {
	failures int
	calls    int
	reply    string
}

func (g *scriptedGenerator) Generate(_ context.Context, _ string) (string, error) {
	g.calls++
	if g.calls <= g.failures {
		return "", errors.New("transient upstream error")
	}
	return g.reply, nil
}

func TestGenerate_RetriesTransientFailure(t *testing.T) {
	gen := &scriptedGenerator{failures: 1, reply: "ok"}
	cfg := &WorkerConfig{Generator: gen}

	got, err := generate(context.Background(), cfg, "prompt")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != "ok" {
		t.Errorf("got %q, want ok", got)
	}
	if gen.calls != 2 {
		t.Errorf("generator called %d times, want 2", gen.calls)
	}
}

func TestGenerate_GivesUpAfterRetries(t *testing.T) {
	gen := &scriptedGenerator{failures: 5}
	cfg := &WorkerConfig{Generator: gen}

	_, err := generate(context.Background(), cfg, "prompt")
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if gen.calls != 2 {
		t.Errorf("generator called %d times, want 2", gen.calls)
	}
}

func TestProcessJob_UnknownKind(t *testing.T) {
	err := processJob(context.Background(), &WorkerConfig{}, database.Session{}, ProposalJob{Kind: "reindex"})
	if err == nil {
		t.Fatal("expected error for unknown job kind")
	}
}
