package workflow

import (
	"context"
	"strings"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/content"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/dag"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/errors"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/llm"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/product"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/sink"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/template"
)

// parseStage converts the raw record into a validated product. A structurally
// broken record gets one bounded repair attempt through the reasoning
// service; if the repaired record still fails validation the stage fails.
func parseStage(provider llm.Provider) dag.Stage {
	return dag.New(dag.StageConfig{
		ID:         StageParse,
		Reads:      []dag.Input{dag.Req(SlotRawRecord)},
		Writes:     []string{SlotParsed},
		Capability: dag.CapabilityReasoning,
		Run: func(ctx context.Context, state *dag.State) error {
			record, err := dag.Read(state, portRawRecord)
			if err != nil {
				return err
			}

			p, err := product.DecodeRecord(record)
			if err != nil {
				p, err = repairRecord(ctx, provider, record)
				if err != nil {
					return err
				}
			}

			return dag.Write(state, portParsed, p)
		},
	})
}

func repairRecord(ctx context.Context, provider llm.Provider, record map[string]any) (*product.Product, error) {
	system, user := repairRecordPrompt(record)
	var repaired map[string]any
	if err := llm.CompleteStructured(ctx, provider, system, user, &repaired); err != nil {
		return nil, err
	}
	p, err := product.DecodeRecord(repaired)
	if err != nil {
		return nil, errors.MalformedGeneration("repaired record still invalid: " + err.Error())
	}
	return p, nil
}

// blocksStage derives the reusable content blocks. Pure transformation.
func blocksStage() dag.Stage {
	return dag.New(dag.StageConfig{
		ID:     StageBlocks,
		Reads:  []dag.Input{dag.Req(SlotParsed)},
		Writes: []string{SlotBlocks},
		Run: func(_ context.Context, state *dag.State) error {
			p, err := dag.Read(state, portParsed)
			if err != nil {
				return err
			}
			return dag.Write(state, portBlocks, content.BuildBlocks(p))
		},
	})
}

// questionsStage generates the categorized question set. The generated set
// is validated structurally; a malformed set fails the stage rather than
// being patched.
func questionsStage(provider llm.Provider, minQuestions int) dag.Stage {
	return dag.New(dag.StageConfig{
		ID:         StageQuestions,
		Reads:      []dag.Input{dag.Req(SlotParsed)},
		Writes:     []string{SlotQuestions},
		Capability: dag.CapabilityReasoning,
		Run: func(ctx context.Context, state *dag.State) error {
			p, err := dag.Read(state, portParsed)
			if err != nil {
				return err
			}

			system, user := questionsPrompt(p, minQuestions)
			var questions []content.Question
			if err := llm.CompleteStructured(ctx, provider, system, user, &questions); err != nil {
				return err
			}
			if err := content.ValidateQuestions(questions, minQuestions); err != nil {
				return err
			}

			return dag.Write(state, portQuestions, questions)
		},
	})
}

// faqStage assembles the FAQ page from the question set.
func faqStage(faqSize int) dag.Stage {
	return dag.New(dag.StageConfig{
		ID:     StageFAQ,
		Reads:  []dag.Input{dag.Req(SlotParsed), dag.Req(SlotQuestions)},
		Writes: []string{SlotFAQPage},
		Run: func(_ context.Context, state *dag.State) error {
			p, err := dag.Read(state, portParsed)
			if err != nil {
				return err
			}
			questions, err := dag.Read(state, portQuestions)
			if err != nil {
				return err
			}

			page, err := template.BuildFAQPage(p, questions, faqSize)
			if err != nil {
				return err
			}
			return dag.Write(state, portFAQPage, page)
		},
	})
}

// productPageStage assembles the product description page.
func productPageStage() dag.Stage {
	return dag.New(dag.StageConfig{
		ID:     StageProductPage,
		Reads:  []dag.Input{dag.Req(SlotParsed), dag.Req(SlotBlocks)},
		Writes: []string{SlotProductPage},
		Run: func(_ context.Context, state *dag.State) error {
			p, err := dag.Read(state, portParsed)
			if err != nil {
				return err
			}
			blocks, err := dag.Read(state, portBlocks)
			if err != nil {
				return err
			}

			page, err := template.BuildProductPage(p, blocks)
			if err != nil {
				return err
			}
			return dag.Write(state, portProductPage, page)
		},
	})
}

// comparisonStage invents a fictional competitor and assembles the
// comparison page. It is the only stage that needs the price, so it checks
// before spending a reasoning call.
func comparisonStage(provider llm.Provider) dag.Stage {
	return dag.New(dag.StageConfig{
		ID:         StageComparison,
		Reads:      []dag.Input{dag.Req(SlotParsed), dag.Req(SlotBlocks)},
		Writes:     []string{SlotComparisonPage, SlotComparisonProduct},
		Capability: dag.CapabilityReasoning,
		Run: func(ctx context.Context, state *dag.State) error {
			p, err := dag.Read(state, portParsed)
			if err != nil {
				return err
			}
			if p.Price == "" {
				return errors.MissingField("price")
			}

			system, user := fictionalProductPrompt(p)
			var competitor product.ComparisonProduct
			if err := llm.CompleteStructured(ctx, provider, system, user, &competitor); err != nil {
				return err
			}
			competitor.Normalize()
			if err := competitor.Validate(); err != nil {
				return errors.MalformedGeneration("generated competitor incomplete: " + err.Error())
			}
			if strings.EqualFold(competitor.Name, p.Name) {
				return errors.MalformedGeneration("generated competitor has the same name as the product")
			}

			page, err := template.BuildComparisonPage(p, &competitor)
			if err != nil {
				return err
			}
			if err := dag.Write(state, portComparisonPage, page); err != nil {
				return err
			}
			return dag.Write(state, portComparisonProduct, &competitor)
		},
	})
}

// sinkStage persists whichever pages were produced. Page inputs are optional
// so an upstream failure reduces the artifact set instead of skipping
// persistence entirely, and one failed write never blocks the others.
func sinkStage(store sink.Sink) dag.Stage {
	return dag.New(dag.StageConfig{
		ID: StageSink,
		Reads: []dag.Input{
			dag.Opt(SlotFAQPage),
			dag.Opt(SlotProductPage),
			dag.Opt(SlotComparisonPage),
		},
		Writes: []string{SlotArtifacts},
		Run: func(ctx context.Context, state *dag.State) error {
			var artifacts []sink.Artifact

			write := func(name string, doc any) {
				art, err := store.Write(ctx, name, doc)
				if err != nil {
					state.AppendError(StageSink, err)
					return
				}
				artifacts = append(artifacts, art)
			}

			if page, ok, err := dag.ReadOptional(state, portFAQPage); err != nil {
				return err
			} else if ok {
				write(SlotFAQPage, page)
			}
			if page, ok, err := dag.ReadOptional(state, portProductPage); err != nil {
				return err
			} else if ok {
				write(SlotProductPage, page)
			}
			if page, ok, err := dag.ReadOptional(state, portComparisonPage); err != nil {
				return err
			} else if ok {
				write(SlotComparisonPage, page)
			}

			return dag.Write(state, portArtifacts, artifacts)
		},
	})
}
