// Package template assembles the three output pages from the parsed product,
// generated questions, and content blocks. Assemblers are pure: given the
// same inputs they produce the same page, and a missing required input is an
// incomplete-assembly error rather than a page with invented filler.
package template
