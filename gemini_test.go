package main

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestCandidateModels_PreferredFirstDeduped(t *testing.T) {
	models := candidateModels("gemini-1.5-pro")
	if models[0] != "gemini-1.5-pro" {
		t.Errorf("first candidate = %q, want preferred", models[0])
	}
	count := 0
	for _, m := range models {
		if m == "gemini-1.5-pro" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("preferred model appears %d times, want 1", count)
	}
	if len(models) != len(fallbackModels) {
		t.Errorf("len = %d, want %d", len(models), len(fallbackModels))
	}
}

func TestCandidateModels_UnknownPreferredPrepended(t *testing.T) {
	models := candidateModels("gemini-x")
	if models[0] != "gemini-x" {
		t.Errorf("first candidate = %q, want gemini-x", models[0])
	}
	if len(models) != len(fallbackModels)+1 {
		t.Errorf("len = %d, want %d", len(models), len(fallbackModels)+1)
	}
	for i, m := range fallbackModels {
		if models[i+1] != m {
			t.Errorf("fallback order broken at %d: got %q, want %q", i, models[i+1], m)
		}
	}
}

func TestResolveModel_StopsAtFirstHealthyCandidate(t *testing.T) {
	var probed []string
	probe := func(_ context.Context, model string) error {
		probed = append(probed, model)
		if model == "model-b" {
			return nil
		}
		return fmt.Errorf("quota exceeded")
	}
	listCalled := false
	list := func(context.Context) ([]string, error) {
		listCalled = true
		return nil, nil
	}

	model, err := resolveModel(context.Background(), []string{"gemini-x", "model-a", "model-b", "model-c"}, probe, list)
	if err != nil {
		t.Fatalf("resolveModel: %v", err)
	}
	if model != "model-b" {
		t.Errorf("resolved %q, want model-b", model)
	}
	if len(probed) != 3 || probed[2] != "model-b" {
		t.Errorf("probed %v, want exactly [gemini-x model-a model-b]", probed)
	}
	if listCalled {
		t.Error("model listing must not run when a candidate succeeds")
	}
}

func TestResolveModel_FallsBackToFirstListedModel(t *testing.T) {
	probe := func(context.Context, string) error { return errors.New("not found") }
	list := func(context.Context) ([]string, error) {
		return []string{"models/listed-a", "models/listed-b"}, nil
	}

	model, err := resolveModel(context.Background(), []string{"a", "b"}, probe, list)
	if err != nil {
		t.Fatalf("resolveModel: %v", err)
	}
	if model != "models/listed-a" {
		t.Errorf("resolved %q, want first listed model", model)
	}
}

func TestResolveModel_FailsWhenNothingResolves(t *testing.T) {
	probe := func(context.Context, string) error { return errors.New("not found") }

	_, err := resolveModel(context.Background(), []string{"a"}, probe,
		func(context.Context) ([]string, error) { return nil, nil })
	if !errors.Is(err, ErrModelResolution) {
		t.Errorf("empty listing: err = %v, want ErrModelResolution", err)
	}

	_, err = resolveModel(context.Background(), []string{"a"}, probe,
		func(context.Context) ([]string, error) { return nil, errors.New("api down") })
	if !errors.Is(err, ErrModelResolution) {
		t.Errorf("listing error: err = %v, want ErrModelResolution", err)
	}
}
