package validator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/FabioGuin/open-apia/pkg/apai/diag"
)

const validSpec = `
openapia: 0.1.0
info:
  title: Support Triage
  version: 1.0.0
  description: Routes support tickets
  author: Platform Team
  license: MIT
  ai_metadata:
    domain: customer-support
    complexity: medium
models:
  - id: gpt-4
    type: LLM
    provider: openai
    name: GPT-4
    purpose: Ticket analysis
prompts:
  - id: classify
    role: system
    template: Classify the ticket.
constraints:
  - id: no-pii
    rule: Output must not contain PII
    severity: critical
tasks:
  - id: triage
    description: Classify and route tickets
    steps:
      - name: classify
        action: classify
        model: gpt-4
        prompt: classify
context:
  memory: persistent
  mcp_servers:
    - id: kb
      name: Knowledge Base
      description: Internal KB access
      version: 1.0.0
      transport:
        type: stdio
        command: kb-server
      capabilities: [tools]
      authentication:
        type: none
evaluation:
  metrics:
    - accuracy
`

func TestValidate_ValidSpec(t *testing.T) {
	diags := New().Validate(parse(t, validSpec))

	if !diags.Valid() {
		t.Errorf("errors = %v, want none", diags.Errors())
	}
	if len(diags.Warnings()) != 0 {
		t.Errorf("warnings = %v, want none", diags.Warnings())
	}
}

func TestValidate_EmptyDocument(t *testing.T) {
	diags := New().Validate(parse(t, "{}"))

	errors := diags.Errors()
	if len(errors) != 8 {
		t.Fatalf("errors = %v, want one per required section", errors)
	}
	for _, msg := range errors {
		if !strings.HasPrefix(msg, "Missing required section: ") {
			t.Errorf("unexpected error %q", msg)
		}
	}
}

func TestValidate_CollectsAcrossSections(t *testing.T) {
	// One run reports structural and cross-reference problems together.
	source := strings.Replace(validSpec, "model: gpt-4", "model: claude-3", 1)
	source = strings.Replace(source, "severity: critical", "severity: fatal", 1)

	diags := New().Validate(parse(t, source))
	errors := diags.Errors()

	wantMessages := []string{
		"Invalid constraint severity: fatal",
		"Task references unknown model: claude-3",
	}
	for _, want := range wantMessages {
		var found bool
		for _, msg := range errors {
			if msg == want {
				found = true
			}
		}
		if !found {
			t.Errorf("errors %v missing %q", errors, want)
		}
	}
}

func TestValidate_WarningsDoNotInvalidate(t *testing.T) {
	source := strings.Replace(validSpec, "openapia: 0.1.0", "openapia: 0.2.0", 1)

	diags := New().Validate(parse(t, source))
	if !diags.Valid() {
		t.Errorf("errors = %v, want none", diags.Errors())
	}
	if len(diags.Warnings()) == 0 {
		t.Error("version 0.2.0 should warn")
	}
}

func TestNewResult(t *testing.T) {
	diags := diag.NewList()
	diags.Errorf("Missing required section: info")
	diags.Warnf("Version 0.2.0 may not be supported")

	result := NewResult("spec.yaml", diags)

	if result.RunID == "" {
		t.Error("RunID should be set")
	}
	if result.File != "spec.yaml" {
		t.Errorf("File = %q", result.File)
	}
	if result.Valid {
		t.Error("Valid should be false with errors present")
	}
	if len(result.Errors) != 1 || len(result.Warnings) != 1 {
		t.Errorf("Errors = %v, Warnings = %v", result.Errors, result.Warnings)
	}

	other := NewResult("spec.yaml", diags)
	if other.RunID == result.RunID {
		t.Error("each run should get a fresh id")
	}
}

func TestResult_JSONShape(t *testing.T) {
	// A clean result serializes with empty arrays, not null.
	result := NewResult("spec.yaml", diag.NewList())

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if strings.Contains(s, "null") {
		t.Errorf("JSON = %s, want empty arrays instead of null", s)
	}
	for _, key := range []string{`"run_id"`, `"file"`, `"valid"`, `"errors"`, `"warnings"`} {
		if !strings.Contains(s, key) {
			t.Errorf("JSON = %s, missing %s", s, key)
		}
	}
}
