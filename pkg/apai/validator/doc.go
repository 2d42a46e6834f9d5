// Package validator applies the APAI schema rules to a composed
// specification document.
//
// Two kinds of checks run:
//
// 1. Section validation: each top-level section (openapia, info, models,
// prompts, constraints, tasks, context, evaluation) is checked in
// isolation for required fields, enumerated values, and duplicate ids.
//
// 2. Cross-reference validation: task steps that reference models,
// prompts, or MCP servers are checked against the ids declared in the
// composed document, so inherited declarations satisfy references in
// descendants.
//
// All violations are accumulated as diagnostics; validation never stops
// at the first problem. Validity is derived from the diagnostic list:
// valid means no error-severity diagnostics, warnings are advisory.
//
//	diags := validator.New().Validate(doc)
//	result := validator.NewResult("spec.yaml", diags)
package validator
