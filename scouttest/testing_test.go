package scouttest_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/krastod/airdropscout"
	"github.com/krastod/airdropscout/scouttest"
)

func TestMockGeneratorGenerate(t *testing.T) {
	generator := scouttest.NewMockGenerator()

	generation1 := airdropscout.Generation{Text: "Hello, world!"}
	generation3 := airdropscout.Generation{
		Text:      "Goodbye, world!",
		Citations: []airdropscout.Citation{{URI: "https://example.com"}},
	}

	generator.EnqueueGenerateResult(
		scouttest.NewMockGenerateResultGeneration(generation1),
		scouttest.NewMockGenerateResultError(errors.New("generate error")),
		scouttest.NewMockGenerateResultText("Goodbye, world!", "https://example.com"),
	)

	ctx := t.Context()
	temperature := 0.4
	options := airdropscout.GenerateOptions{Temperature: &temperature, SearchGrounding: true}

	res1, err := generator.Generate(ctx, "first", options)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if diff := cmp.Diff(&generation1, res1); diff != "" {
		t.Errorf("unexpected first generation (-want +got):\n%s", diff)
	}

	if _, err := generator.Generate(ctx, "second", options); err == nil || err.Error() != "generate error" {
		t.Fatalf("expected generate error, got %v", err)
	}

	res3, err := generator.Generate(ctx, "third", airdropscout.GenerateOptions{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if diff := cmp.Diff(&generation3, res3); diff != "" {
		t.Errorf("unexpected third generation (-want +got):\n%s", diff)
	}

	if _, err := generator.Generate(ctx, "fourth", options); err == nil {
		t.Fatal("expected error once results are exhausted")
	}

	tracked := generator.TrackedGenerateInputs()
	want := []scouttest.TrackedGenerateInput{
		{Prompt: "first", Options: options},
		{Prompt: "second", Options: options},
		{Prompt: "third"},
	}
	if diff := cmp.Diff(want, tracked); diff != "" {
		t.Errorf("tracked inputs mismatch (-want +got):\n%s", diff)
	}
}

func TestMockGeneratorResetAndRestore(t *testing.T) {
	generator := scouttest.NewMockGenerator()
	generator.EnqueueGenerateResult(
		scouttest.NewMockGenerateResultText("one"),
		scouttest.NewMockGenerateResultText("two"),
	)

	if _, err := generator.Generate(t.Context(), "p", airdropscout.GenerateOptions{}); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	generator.Reset()
	if got := len(generator.TrackedGenerateInputs()); got != 0 {
		t.Fatalf("expected tracked inputs cleared, got %d", got)
	}
	if _, err := generator.Generate(t.Context(), "p", airdropscout.GenerateOptions{}); err != nil {
		t.Fatalf("Reset must keep enqueued results: %v", err)
	}

	generator.EnqueueGenerateResult(scouttest.NewMockGenerateResultText("three"))
	generator.Restore()
	if _, err := generator.Generate(t.Context(), "p", airdropscout.GenerateOptions{}); err == nil {
		t.Fatal("Restore must drop enqueued results")
	}
}

func TestMockGeneratorIdentity(t *testing.T) {
	generator := scouttest.NewMockGenerator()
	if generator.Provider() != "mock" || generator.ModelID() != "mock-model" {
		t.Fatalf("unexpected defaults: %s/%s", generator.Provider(), generator.ModelID())
	}
	generator.SetProvider("google")
	generator.SetModelID("gemini-2.5-flash")
	if generator.Provider() != "google" || generator.ModelID() != "gemini-2.5-flash" {
		t.Fatalf("setters not applied: %s/%s", generator.Provider(), generator.ModelID())
	}
}
