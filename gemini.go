package main

import (
	"context"
	"fmt"
	"log"
	"slices"

	"google.golang.org/genai"
)

// TextGenerator is the single generation call the pipeline depends on,
// kept as an interface so workers can be exercised without the network.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const defaultModel = "gemini-2.0-flash"

// Known working models, tried in order after the configured one. Upstream
// renames models often enough that a fixed ladder beats a single name.
var fallbackModels = []string{
	"gemini-2.0-flash",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
	"gemini-1.0-pro",
	"models/gemini-1.5-flash",
	"models/gemini-1.5-pro",
	"models/gemini-1.0-pro",
}

// GeminiService executes generation calls against a model resolved once at
// construction. The model name is never mutated afterwards, so the service
// is safe to share across workers.
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService binds a working model before returning. Resolution is
// fail-fast: if no candidate binds and answers a probe, and the model
// listing yields nothing usable, the service cannot be constructed.
func NewGeminiService(ctx context.Context, apiKey, preferred string) (*GeminiService, error) {
	if preferred == "" {
		preferred = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	svc := &GeminiService{client: client}
	model, err := resolveModel(ctx, candidateModels(preferred), svc.probe, svc.listGenerativeModels)
	if err != nil {
		return nil, err
	}
	svc.model = model
	return svc, nil
}

// Model reports the resolved model name.
func (s *GeminiService) Model() string { return s.model }

// Generate runs one atomic prompt-to-text call. No retries here; callers
// own retry policy.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generating content with model %s: %w", s.model, err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", s.model)
	}
	return text, nil
}

// candidateModels puts the preferred model first and appends the fallback
// ladder with the preferred entry deduplicated, order preserved.
func candidateModels(preferred string) []string {
	models := []string{preferred}
	for _, m := range fallbackModels {
		if m != preferred {
			models = append(models, m)
		}
	}
	return models
}

// resolveModel tries each candidate with a liveness probe and stops at the
// first success. When the whole ladder fails it falls back to the first
// listed model that supports content generation.
func resolveModel(ctx context.Context, candidates []string, probe func(context.Context, string) error, list func(context.Context) ([]string, error)) (string, error) {
	for _, model := range candidates {
		log.Printf("trying generation model: %s", model)
		if err := probe(ctx, model); err != nil {
			log.Printf("model %s failed probe: %v", model, err)
			continue
		}
		log.Printf("resolved generation model: %s", model)
		return model, nil
	}

	names, err := list(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: listing models: %v", ErrModelResolution, err)
	}
	if len(names) == 0 {
		return "", ErrModelResolution
	}
	log.Printf("resolved generation model from listing: %s", names[0])
	return names[0], nil
}

func (s *GeminiService) probe(ctx context.Context, model string) error {
	_, err := s.client.Models.GenerateContent(ctx, model, genai.Text("Hello"), nil)
	return err
}

func (s *GeminiService) listGenerativeModels(ctx context.Context) ([]string, error) {
	var names []string
	for model, err := range s.client.Models.All(ctx) {
		if err != nil {
			return nil, err
		}
		if slices.Contains(model.SupportedActions, "generateContent") {
			names = append(names, model.Name)
		}
	}
	return names, nil
}
