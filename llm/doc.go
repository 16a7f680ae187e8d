// Package llm provides a provider-agnostic client for chat completion APIs.
//
// Provider-specific request/response mapping lives in Dialect implementations
// (openai, ollama). A Client composes a Dialect with an HTTP transport and
// classifies transport failures into retryable and non-retryable errors so
// callers can wrap completions with bounded retry.
package llm
