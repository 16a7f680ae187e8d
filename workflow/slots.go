package workflow

import (
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/content"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/dag"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/product"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/sink"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/template"
)

// Stage identifiers.
const (
	StageParse       = "data_parser"
	StageBlocks      = "content_blocks"
	StageQuestions   = "question_generator"
	StageFAQ         = "faq_generator"
	StageProductPage = "product_page_generator"
	StageComparison  = "comparison_generator"
	StageSink        = "json_output"
)

// Slot names. Each slot has exactly one producer.
const (
	SlotRawRecord         = "raw_record" // seed
	SlotParsed            = "parsed_product"
	SlotBlocks            = "content_blocks"
	SlotQuestions         = "questions"
	SlotFAQPage           = "faq_page"
	SlotProductPage       = "product_page"
	SlotComparisonPage    = "comparison_page"
	SlotComparisonProduct = "comparison_product"
	SlotArtifacts         = "artifacts_written"
)

// Typed ports over the slots.
var (
	portRawRecord         = dag.Port[map[string]any]{Slot: SlotRawRecord}
	portParsed            = dag.Port[*product.Product]{Slot: SlotParsed}
	portBlocks            = dag.Port[content.Blocks]{Slot: SlotBlocks}
	portQuestions         = dag.Port[[]content.Question]{Slot: SlotQuestions}
	portFAQPage           = dag.Port[*template.FAQPage]{Slot: SlotFAQPage}
	portProductPage       = dag.Port[*template.ProductPage]{Slot: SlotProductPage}
	portComparisonPage    = dag.Port[*template.ComparisonPage]{Slot: SlotComparisonPage}
	portComparisonProduct = dag.Port[*product.ComparisonProduct]{Slot: SlotComparisonProduct}
	portArtifacts         = dag.Port[[]sink.Artifact]{Slot: SlotArtifacts}
)
