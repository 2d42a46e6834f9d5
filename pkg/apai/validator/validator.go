package validator

import (
	"github.com/google/uuid"

	"github.com/FabioGuin/open-apia/pkg/apai/diag"
	"github.com/FabioGuin/open-apia/pkg/apai/document"
)

// Validator applies the schema rules to a composed specification
// document: section-by-section structural checks followed by the
// cross-reference pass. It holds no state between runs.
type Validator struct{}

// New creates a validator.
func New() *Validator {
	return &Validator{}
}

// Validate runs every validation pass against doc and returns the
// accumulated diagnostics. It never stops at the first problem; the
// result carries the full set of violations.
func (v *Validator) Validate(doc *document.Document) *diag.List {
	diags := diag.NewList()

	validateRequiredSections(doc, diags)

	if section, ok := doc.Get("openapia"); ok {
		validateVersion(section, diags)
	}
	if section, ok := doc.Get("info"); ok {
		validateInfo(section, diags)
	}
	if section, ok := doc.Get("models"); ok {
		validateModels(section, diags)
	}
	if section, ok := doc.Get("prompts"); ok {
		validatePrompts(section, diags)
	}
	if section, ok := doc.Get("constraints"); ok {
		validateConstraints(section, diags)
	}
	if section, ok := doc.Get("tasks"); ok {
		validateTasks(section, diags)
	}
	if section, ok := doc.Get("context"); ok {
		validateContext(section, diags)
	}
	if section, ok := doc.Get("evaluation"); ok {
		validateEvaluation(section, diags)
	}

	diags.Extend(CheckReferences(doc))

	return diags
}

// Result is the outcome of one validation run, shaped for JSON output.
type Result struct {
	RunID    string   `json:"run_id"`
	File     string   `json:"file"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// NewResult derives a Result from the diagnostics of one run. Each run
// gets a fresh id so log lines and reports can be correlated.
func NewResult(file string, diags *diag.List) *Result {
	return &Result{
		RunID:    uuid.NewString(),
		File:     file,
		Valid:    diags.Valid(),
		Errors:   diags.Errors(),
		Warnings: diags.Warnings(),
	}
}
