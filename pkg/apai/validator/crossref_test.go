package validator

import (
	"reflect"
	"testing"
)

func TestCheckReferences_AllResolved(t *testing.T) {
	doc := parse(t, `
models:
  - id: gpt-4
prompts:
  - id: classify
context:
  mcp_servers:
    - id: kb
tasks:
  - id: triage
    steps:
      - name: classify
        action: classify
        model: gpt-4
        prompt: classify
      - name: lookup
        action: mcp_tool
        mcp_server: kb
        mcp_tool: search
`)

	diags := CheckReferences(doc)
	if diags.Len() != 0 {
		t.Errorf("diagnostics = %v, want none", diags.All())
	}
}

func TestCheckReferences_UnknownModel(t *testing.T) {
	doc := parse(t, `
models:
  - id: m1
tasks:
  - id: t1
    steps:
      - name: s1
        action: analyze
        model: m2
`)

	diags := CheckReferences(doc)
	if got := diags.Errors(); !reflect.DeepEqual(got, []string{"Task references unknown model: m2"}) {
		t.Errorf("errors = %v, want exactly one unknown-model error", got)
	}
}

func TestCheckReferences_UnknownPromptAndServer(t *testing.T) {
	doc := parse(t, `
models:
  - id: m1
prompts:
  - id: p1
context:
  mcp_servers:
    - id: kb
tasks:
  - id: t1
    steps:
      - name: s1
        action: generate
        model: m1
        prompt: ghost
      - name: s2
        action: mcp_tool
        mcp_server: nowhere
        mcp_tool: search
`)

	diags := CheckReferences(doc)
	want := []string{
		"Task references unknown prompt: ghost",
		"Task references unknown MCP server: nowhere",
	}
	if got := diags.Errors(); !reflect.DeepEqual(got, want) {
		t.Errorf("errors = %v, want %v", got, want)
	}
}

func TestCheckReferences_MCPCompanionFields(t *testing.T) {
	doc := parse(t, `
context:
  mcp_servers:
    - id: kb
tasks:
  - id: t1
    steps:
      - name: tool-without-fields
        action: mcp_tool
      - name: resource-without-fields
        action: mcp_resource
`)

	diags := CheckReferences(doc)
	want := []string{
		"Task 0 step 0 MCP action missing mcp_server field",
		"Task 0 step 0 mcp_tool action missing mcp_tool field",
		"Task 0 step 1 MCP action missing mcp_server field",
		"Task 0 step 1 mcp_resource action missing mcp_resource field",
	}
	if got := diags.Errors(); !reflect.DeepEqual(got, want) {
		t.Errorf("errors = %v, want %v", got, want)
	}
}

func TestCheckReferences_NoTasks(t *testing.T) {
	doc := parse(t, "models:\n  - id: m1\n")

	if diags := CheckReferences(doc); diags.Len() != 0 {
		t.Errorf("diagnostics = %v, want none", diags.All())
	}
}

func TestCheckReferences_EveryStepChecked(t *testing.T) {
	// One run reports all violations, not just the first.
	doc := parse(t, `
models:
  - id: m1
tasks:
  - id: t1
    steps:
      - name: s1
        action: analyze
        model: ghost-a
  - id: t2
    steps:
      - name: s1
        action: analyze
        model: ghost-b
`)

	diags := CheckReferences(doc)
	want := []string{
		"Task references unknown model: ghost-a",
		"Task references unknown model: ghost-b",
	}
	if got := diags.Errors(); !reflect.DeepEqual(got, want) {
		t.Errorf("errors = %v, want %v", got, want)
	}
}
