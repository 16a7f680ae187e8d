package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/content"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/dag"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/errors"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/llm"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/sink"
)

// scriptedProvider routes completions by prompt content so each reasoning
// stage gets a canned response.
type scriptedProvider struct {
	questions  string
	competitor string
	repaired   string

	questionsErr error
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	switch {
	case strings.Contains(req.SystemPrompt, "question generator"):
		if p.questionsErr != nil {
			return nil, p.questionsErr
		}
		return &llm.CompletionResponse{Content: p.questions}, nil
	case strings.Contains(req.SystemPrompt, "product generation"):
		return &llm.CompletionResponse{Content: p.competitor}, nil
	case strings.Contains(req.SystemPrompt, "data parser"):
		return &llm.CompletionResponse{Content: p.repaired}, nil
	default:
		return nil, fmt.Errorf("unexpected prompt: %s", req.SystemPrompt)
	}
}

func cannedQuestions(t *testing.T, n int) string {
	t.Helper()
	cats := content.Categories()
	qs := make([]content.Question, n)
	for i := range qs {
		qs[i] = content.Question{
			Question: fmt.Sprintf("Question %d?", i),
			Category: cats[i%len(cats)],
			Answer:   fmt.Sprintf("Answer %d with some detail.", i),
		}
	}
	raw, err := json.Marshal(qs)
	if err != nil {
		t.Fatal(err)
	}
	return string(raw)
}

const cannedCompetitor = `{
	"product_name": "RadiantGlow Niacinamide Serum",
	"concentration": "12% Niacinamide",
	"skin_type": ["Oily", "Sensitive"],
	"key_ingredients": ["Niacinamide", "Hyaluronic Acid"],
	"benefits": ["Brightening", "Pore refinement"],
	"how_to_use": "Apply at night after cleansing",
	"side_effects": "None reported",
	"price": "$24"
}`

func validRecord() map[string]any {
	return map[string]any{
		"product_name":    "GlowBoost Vitamin C Serum",
		"concentration":   "10% Vitamin C",
		"skin_type":       []any{"Oily", "Combination"},
		"key_ingredients": []any{"Vitamin C", "Hyaluronic Acid"},
		"benefits":        []any{"Brightening", "Fades dark spots"},
		"how_to_use":      "Apply 2-3 drops in the morning before sunscreen",
		"side_effects":    "Mild tingling for sensitive skin",
		"price":           "$29",
	}
}

func newTestWorkflow(t *testing.T, provider llm.Provider, store sink.Sink) *Workflow {
	t.Helper()
	w, err := New(Config{}, provider, store, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestRun_HappyPath(t *testing.T) {
	provider := &scriptedProvider{
		questions:  cannedQuestions(t, 15),
		competitor: cannedCompetitor,
	}
	store := sink.NewMemorySink()
	w := newTestWorkflow(t, provider, store)

	run, err := w.Run(context.Background(), validRecord())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(run.Artifacts) != 3 {
		t.Errorf("artifacts = %d, want 3", len(run.Artifacts))
	}
	if len(run.Errors) != 0 {
		t.Errorf("errors = %v", run.Errors)
	}
	for _, name := range []string{SlotFAQPage, SlotProductPage, SlotComparisonPage} {
		if !run.HasArtifact(name) {
			t.Errorf("missing artifact %s", name)
		}
	}
	for id, sr := range run.Stages {
		if sr.Status != dag.StatusCompleted {
			t.Errorf("stage %s = %s", id, sr.Status)
		}
	}
}

func TestRun_QuestionFailureIsolatesFAQ(t *testing.T) {
	provider := &scriptedProvider{
		questions:  "I'm sorry, I cannot produce JSON right now.",
		competitor: cannedCompetitor,
	}
	store := sink.NewMemorySink()
	w := newTestWorkflow(t, provider, store)

	run, err := w.Run(context.Background(), validRecord())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if run.HasArtifact(SlotFAQPage) {
		t.Error("faq page should be absent")
	}
	if !run.HasArtifact(SlotProductPage) || !run.HasArtifact(SlotComparisonPage) {
		t.Errorf("independent pages should survive: %v", run.Artifacts)
	}
	if len(run.Artifacts) != 2 {
		t.Errorf("artifacts = %d, want 2", len(run.Artifacts))
	}

	// Exactly one ledger entry for the failed stage.
	var questionErrs []dag.StageError
	for _, e := range run.Errors {
		if e.StageID == StageQuestions {
			questionErrs = append(questionErrs, e)
		}
	}
	if len(questionErrs) != 1 {
		t.Fatalf("question stage entries = %d, want 1", len(questionErrs))
	}
	if questionErrs[0].Code != errors.ErrCodeMalformedGeneration {
		t.Errorf("code = %s", questionErrs[0].Code)
	}

	// The FAQ stage is recorded as skipped, not failed.
	if sr := run.Stages[StageFAQ]; sr.Status != dag.StatusSkipped || sr.SkippedOn != StageQuestions {
		t.Errorf("faq stage = %+v", sr)
	}
}

func TestRun_TooFewQuestionsIsMalformed(t *testing.T) {
	provider := &scriptedProvider{
		questions:  cannedQuestions(t, 8),
		competitor: cannedCompetitor,
	}
	w := newTestWorkflow(t, provider, sink.NewMemorySink())

	run, err := w.Run(context.Background(), validRecord())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sr := run.Stages[StageQuestions]; sr.Status != dag.StatusFailed {
		t.Errorf("questions = %s", sr.Status)
	}
	if run.HasArtifact(SlotFAQPage) {
		t.Error("faq should not be assembled from a rejected question set")
	}
}

func TestRun_MissingPriceOnlyFailsComparison(t *testing.T) {
	provider := &scriptedProvider{
		questions:  cannedQuestions(t, 15),
		competitor: cannedCompetitor,
	}
	store := sink.NewMemorySink()
	w := newTestWorkflow(t, provider, store)

	record := validRecord()
	delete(record, "price")
	run, err := w.Run(context.Background(), record)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(run.Artifacts) != 2 {
		t.Errorf("artifacts = %d, want 2", len(run.Artifacts))
	}
	if run.HasArtifact(SlotComparisonPage) {
		t.Error("comparison page should be absent")
	}
	if !run.HasArtifact(SlotFAQPage) || !run.HasArtifact(SlotProductPage) {
		t.Errorf("other pages should survive: %v", run.Artifacts)
	}

	var comparisonErrs []dag.StageError
	for _, e := range run.Errors {
		if e.StageID == StageComparison {
			comparisonErrs = append(comparisonErrs, e)
		}
	}
	if len(comparisonErrs) != 1 || comparisonErrs[0].Code != errors.ErrCodeMissingField {
		t.Errorf("comparison entries = %+v", comparisonErrs)
	}
}

func TestRun_MalformedCompetitorIsRejected(t *testing.T) {
	provider := &scriptedProvider{
		questions:  cannedQuestions(t, 15),
		competitor: `{"product_name": "Nameless Serum"}`,
	}
	w := newTestWorkflow(t, provider, sink.NewMemorySink())

	run, err := w.Run(context.Background(), validRecord())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if run.HasArtifact(SlotComparisonPage) {
		t.Error("incomplete competitor must not produce a page")
	}
	if sr := run.Stages[StageComparison]; sr.Status != dag.StatusFailed {
		t.Errorf("comparison = %s", sr.Status)
	}
	if code := errors.CodeOf(run.Stages[StageComparison].Error); code != errors.ErrCodeMalformedGeneration {
		t.Errorf("code = %s", code)
	}
}

func TestRun_SameNameCompetitorIsRejected(t *testing.T) {
	clone := `{
		"product_name": "GlowBoost Vitamin C Serum",
		"skin_type": ["Oily"],
		"key_ingredients": ["Vitamin C"],
		"benefits": ["Brightening"],
		"how_to_use": "Apply daily",
		"price": "$19"
	}`
	provider := &scriptedProvider{
		questions:  cannedQuestions(t, 15),
		competitor: clone,
	}
	w := newTestWorkflow(t, provider, sink.NewMemorySink())

	run, err := w.Run(context.Background(), validRecord())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if run.HasArtifact(SlotComparisonPage) {
		t.Error("comparison against the product itself must be rejected")
	}
	if code := errors.CodeOf(run.Stages[StageComparison].Error); code != errors.ErrCodeMalformedGeneration {
		t.Errorf("code = %s", code)
	}
}

func TestRun_SinkFailureIsPartial(t *testing.T) {
	provider := &scriptedProvider{
		questions:  cannedQuestions(t, 15),
		competitor: cannedCompetitor,
	}
	store := sink.NewMemorySink()
	store.FailOn = map[string]bool{SlotComparisonPage: true}
	w := newTestWorkflow(t, provider, store)

	run, err := w.Run(context.Background(), validRecord())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(run.Artifacts) != 2 {
		t.Errorf("artifacts = %d, want 2", len(run.Artifacts))
	}
	if sr := run.Stages[StageSink]; sr.Status != dag.StatusCompleted {
		t.Errorf("sink stage = %s", sr.Status)
	}

	found := false
	for _, e := range run.Errors {
		if e.StageID == StageSink && e.Code == errors.ErrCodeSinkWrite {
			found = true
		}
	}
	if !found {
		t.Errorf("sink write failure not recorded: %v", run.Errors)
	}
}

func TestRun_RecordRepair(t *testing.T) {
	repairedRecord, err := json.Marshal(validRecord())
	if err != nil {
		t.Fatal(err)
	}
	provider := &scriptedProvider{
		questions:  cannedQuestions(t, 15),
		competitor: cannedCompetitor,
		repaired:   string(repairedRecord),
	}
	store := sink.NewMemorySink()
	w := newTestWorkflow(t, provider, store)

	// Record is missing how_to_use, so direct decoding fails and the
	// repair path kicks in.
	record := validRecord()
	delete(record, "how_to_use")
	run, err := w.Run(context.Background(), record)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(run.Artifacts) != 3 {
		t.Errorf("artifacts = %d, want 3 after repair", len(run.Artifacts))
	}
}

func TestRun_UnrepairableRecordFailsEverything(t *testing.T) {
	provider := &scriptedProvider{
		questions:  cannedQuestions(t, 15),
		competitor: cannedCompetitor,
		repaired:   `{"product_name": "still broken"}`,
	}
	store := sink.NewMemorySink()
	w := newTestWorkflow(t, provider, store)

	record := validRecord()
	delete(record, "how_to_use")
	run, err := w.Run(context.Background(), record)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(run.Artifacts) != 0 {
		t.Errorf("artifacts = %d, want 0", len(run.Artifacts))
	}
	if sr := run.Stages[StageParse]; sr.Status != dag.StatusFailed {
		t.Errorf("parse = %s", sr.Status)
	}
	// Everything downstream is skipped, but the sink still runs (its page
	// inputs are optional) and records an empty artifact set.
	if sr := run.Stages[StageSink]; sr.Status != dag.StatusCompleted {
		t.Errorf("sink = %s", sr.Status)
	}
}

func TestRun_Deterministic(t *testing.T) {
	provider := &scriptedProvider{
		questions:  cannedQuestions(t, 20),
		competitor: cannedCompetitor,
	}

	runOnce := func() map[string][]byte {
		store := sink.NewMemorySink()
		w := newTestWorkflow(t, provider, store)
		if _, err := w.Run(context.Background(), validRecord()); err != nil {
			t.Fatalf("Run: %v", err)
		}
		out := make(map[string][]byte)
		for _, name := range []string{SlotFAQPage, SlotProductPage, SlotComparisonPage} {
			data, ok := store.Get(name)
			if !ok {
				t.Fatalf("missing %s", name)
			}
			out[name] = data
		}
		return out
	}

	first := runOnce()
	for i := 0; i < 5; i++ {
		again := runOnce()
		for name := range first {
			if !bytes.Equal(first[name], again[name]) {
				t.Fatalf("artifact %s differs between identical runs", name)
			}
		}
	}
}

func TestRun_EmptyRecord(t *testing.T) {
	w := newTestWorkflow(t, &scriptedProvider{}, sink.NewMemorySink())
	_, err := w.Run(context.Background(), nil)
	if code := errors.CodeOf(err); code != errors.ErrCodeInvalidInput {
		t.Errorf("code = %s", code)
	}
}
