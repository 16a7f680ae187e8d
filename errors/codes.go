package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Construction-time errors. These are programming errors in the stage graph
// and abort a run before any stage executes.
const (
	// ErrCodeDuplicateWrite indicates two stages declared the same output slot,
	// or a stage wrote a slot that already holds a value.
	ErrCodeDuplicateWrite ErrorCode = "DUPLICATE_WRITE"
	// ErrCodeCyclicGraph indicates the stage graph contains a dependency cycle.
	ErrCodeCyclicGraph ErrorCode = "CYCLIC_GRAPH"
	// ErrCodeMissingDependency indicates a stage read a slot before its producer
	// completed, or a declared read has no producer at all.
	ErrCodeMissingDependency ErrorCode = "MISSING_DEPENDENCY"
)

// Run-time errors. These are local to one branch of the graph: recorded in the
// error ledger, the affected output is omitted, and sibling branches continue.
const (
	// ErrCodeMalformedGeneration indicates a reasoning-service response failed
	// structural validation.
	ErrCodeMalformedGeneration ErrorCode = "MALFORMED_GENERATION"
	// ErrCodeExternalService indicates a failure calling the reasoning service.
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
	// ErrCodeTimeout indicates an external call exceeded its deadline.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeIncompleteAssembly indicates an assembler's required input was
	// never produced.
	ErrCodeIncompleteAssembly ErrorCode = "INCOMPLETE_ASSEMBLY"
	// ErrCodeSinkWrite indicates a persistence failure for one artifact.
	ErrCodeSinkWrite ErrorCode = "SINK_WRITE_ERROR"
	// ErrCodeStageSkipped indicates a stage was not attempted because an
	// upstream producer failed or was itself skipped.
	ErrCodeStageSkipped ErrorCode = "STAGE_SKIPPED"
)

// Input and internal errors.
const (
	// ErrCodeInvalidInput indicates the input record failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeExternalService: true,
	ErrCodeTimeout:         true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}

// fatalCodes are programming errors: a run that observes one at execution time
// must abort rather than isolate the failure to a branch.
var fatalCodes = map[ErrorCode]bool{
	ErrCodeDuplicateWrite:    true,
	ErrCodeCyclicGraph:       true,
	ErrCodeMissingDependency: true,
}

// IsFatalCode returns true if the error code indicates an unrecoverable
// programming error.
func IsFatalCode(code ErrorCode) bool {
	return fatalCodes[code]
}
