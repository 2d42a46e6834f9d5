package validator

import (
	"github.com/FabioGuin/open-apia/pkg/apai/diag"
	"github.com/FabioGuin/open-apia/pkg/apai/document"
)

// CheckReferences inspects a composed document for dangling references
// between sections: every task step that names a model, prompt, or MCP
// server must point at an id declared in the corresponding section of
// the same document. Steps with an MCP action are additionally required
// to carry the companion field of the matching kind.
//
// The check runs against the composed document only; an id declared by
// any ancestor counts once inheritance has been merged in. Every step of
// every task is checked, so a single run reports all violations.
func CheckReferences(doc *document.Document) *diag.List {
	diags := diag.NewList()

	modelIDs := declaredIDs(doc, "models")
	promptIDs := declaredIDs(doc, "prompts")
	serverIDs := mcpServerIDs(doc)

	tasks, ok := doc.Get("tasks")
	if !ok || !tasks.IsSequence() {
		return diags
	}

	for taskIndex, task := range tasks.Items {
		if !task.IsMapping() {
			continue
		}
		steps, ok := task.Get("steps")
		if !ok || !steps.IsSequence() {
			continue
		}
		for stepIndex, step := range steps.Items {
			if !step.IsMapping() {
				continue
			}
			checkStepReferences(step, taskIndex, stepIndex, modelIDs, promptIDs, serverIDs, diags)
		}
	}

	return diags
}

func checkStepReferences(step *document.Document, taskIndex, stepIndex int, modelIDs, promptIDs, serverIDs map[string]bool, diags *diag.List) {
	if model, ok := step.StringField("model"); ok && !modelIDs[model] {
		diags.Errorf("Task references unknown model: %s", model)
	}
	if prompt, ok := step.StringField("prompt"); ok && !promptIDs[prompt] {
		diags.Errorf("Task references unknown prompt: %s", prompt)
	}
	if server, ok := step.StringField("mcp_server"); ok && !serverIDs[server] {
		diags.Errorf("Task references unknown MCP server: %s", server)
	}

	// Companion fields for MCP actions are a local structural check on
	// the step, evaluated here so one pass covers each step.
	action, ok := step.StringField("action")
	if !ok || (action != "mcp_tool" && action != "mcp_resource") {
		return
	}
	if !step.Has("mcp_server") {
		diags.Errorf("Task %d step %d MCP action missing mcp_server field", taskIndex, stepIndex)
	}
	if action == "mcp_tool" && !step.Has("mcp_tool") {
		diags.Errorf("Task %d step %d mcp_tool action missing mcp_tool field", taskIndex, stepIndex)
	}
	if action == "mcp_resource" && !step.Has("mcp_resource") {
		diags.Errorf("Task %d step %d mcp_resource action missing mcp_resource field", taskIndex, stepIndex)
	}
}

// declaredIDs collects the string ids declared by the entries of a
// top-level sequence section.
func declaredIDs(doc *document.Document, section string) map[string]bool {
	ids := make(map[string]bool)
	entries, ok := doc.Get(section)
	if !ok || !entries.IsSequence() {
		return ids
	}
	for _, entry := range entries.Items {
		if id, ok := entry.StringField("id"); ok {
			ids[id] = true
		}
	}
	return ids
}

// mcpServerIDs collects the ids declared under context.mcp_servers.
func mcpServerIDs(doc *document.Document) map[string]bool {
	ids := make(map[string]bool)
	context, ok := doc.Get("context")
	if !ok || !context.IsMapping() {
		return ids
	}
	servers, ok := context.Get("mcp_servers")
	if !ok || !servers.IsSequence() {
		return ids
	}
	for _, server := range servers.Items {
		if id, ok := server.StringField("id"); ok {
			ids[id] = true
		}
	}
	return ids
}
