package validator

import (
	"regexp"

	"github.com/FabioGuin/open-apia/pkg/apai/diag"
	"github.com/FabioGuin/open-apia/pkg/apai/document"
)

// requiredSections are the top-level sections every specification must
// declare. `inherits` is optional and consumed by composition.
var requiredSections = []string{
	"openapia", "info", "models", "prompts",
	"constraints", "tasks", "context", "evaluation",
}

var supportedVersion = regexp.MustCompile(`^0\.1\.\d+$`)

var (
	validComplexities = []string{"low", "medium", "high"}
	validModelTypes   = []string{"LLM", "Vision", "Audio", "Multimodal", "Classification", "Embedding"}
	validPromptRoles  = []string{"system", "user", "assistant"}
	validSeverities   = []string{"low", "medium", "high", "critical"}
	validActions      = []string{"analyze", "generate", "validate", "search", "escalate", "classify", "mcp_tool", "mcp_resource"}
	validTransports   = []string{"stdio", "sse", "websocket"}
	validAuthTypes    = []string{"none", "api_key", "oauth", "custom"}
)

func validateRequiredSections(doc *document.Document, diags *diag.List) {
	for _, section := range requiredSections {
		if !doc.Has(section) {
			diags.Errorf("Missing required section: %s", section)
		}
	}
}

func validateVersion(version *document.Document, diags *diag.List) {
	s, ok := version.AsString()
	if !ok {
		diags.Errorf("openapia version must be a string")
		return
	}
	if !supportedVersion.MatchString(s) {
		diags.Warnf("Version %s may not be supported", s)
	}
}

func validateInfo(info *document.Document, diags *diag.List) {
	if !info.IsMapping() {
		diags.Errorf("info must be an object")
		return
	}

	for _, field := range []string{"title", "version", "description", "author", "license"} {
		if !info.Has(field) {
			diags.Errorf("Missing required field in info: %s", field)
		}
	}

	if metadata, ok := info.Get("ai_metadata"); ok {
		validateAIMetadata(metadata, diags)
	}
}

func validateAIMetadata(metadata *document.Document, diags *diag.List) {
	if !metadata.IsMapping() {
		return
	}

	if !metadata.Has("domain") {
		diags.Warnf("ai_metadata.domain is recommended")
	}

	if complexity, ok := metadata.StringField("complexity"); ok {
		if !contains(validComplexities, complexity) {
			diags.Errorf("Invalid complexity: %s", complexity)
		}
	}
}

func validateModels(models *document.Document, diags *diag.List) {
	if !models.IsSequence() {
		diags.Errorf("models must be an array")
		return
	}
	if models.Len() == 0 {
		diags.Errorf("At least one model is required")
		return
	}

	seen := make(map[string]bool)
	for i, model := range models.Items {
		if !model.IsMapping() {
			diags.Errorf("Model %d must be an object", i)
			continue
		}

		for _, field := range []string{"id", "type", "provider", "name", "purpose"} {
			if !model.Has(field) {
				diags.Errorf("Model %d missing required field: %s", i, field)
			}
		}

		if id, ok := model.StringField("id"); ok {
			if seen[id] {
				diags.Errorf("Duplicate model ID: %s", id)
			}
			seen[id] = true
		}

		if modelType, ok := model.StringField("type"); ok {
			if !contains(validModelTypes, modelType) {
				diags.Warnf("Unknown model type: %s", modelType)
			}
		}
	}
}

func validatePrompts(prompts *document.Document, diags *diag.List) {
	if !prompts.IsSequence() {
		diags.Errorf("prompts must be an array")
		return
	}

	seen := make(map[string]bool)
	for i, prompt := range prompts.Items {
		if !prompt.IsMapping() {
			diags.Errorf("Prompt %d must be an object", i)
			continue
		}

		for _, field := range []string{"id", "role", "template"} {
			if !prompt.Has(field) {
				diags.Errorf("Prompt %d missing required field: %s", i, field)
			}
		}

		if id, ok := prompt.StringField("id"); ok {
			if seen[id] {
				diags.Errorf("Duplicate prompt ID: %s", id)
			}
			seen[id] = true
		}

		if role, ok := prompt.StringField("role"); ok {
			if !contains(validPromptRoles, role) {
				diags.Errorf("Invalid prompt role: %s", role)
			}
		}
	}
}

func validateConstraints(constraints *document.Document, diags *diag.List) {
	if !constraints.IsSequence() {
		diags.Errorf("constraints must be an array")
		return
	}

	seen := make(map[string]bool)
	for i, constraint := range constraints.Items {
		if !constraint.IsMapping() {
			diags.Errorf("Constraint %d must be an object", i)
			continue
		}

		for _, field := range []string{"id", "rule", "severity"} {
			if !constraint.Has(field) {
				diags.Errorf("Constraint %d missing required field: %s", i, field)
			}
		}

		if id, ok := constraint.StringField("id"); ok {
			if seen[id] {
				diags.Errorf("Duplicate constraint ID: %s", id)
			}
			seen[id] = true
		}

		if severity, ok := constraint.StringField("severity"); ok {
			if !contains(validSeverities, severity) {
				diags.Errorf("Invalid constraint severity: %s", severity)
			}
		}
	}
}

func validateTasks(tasks *document.Document, diags *diag.List) {
	if !tasks.IsSequence() {
		diags.Errorf("tasks must be an array")
		return
	}

	seen := make(map[string]bool)
	for i, task := range tasks.Items {
		if !task.IsMapping() {
			diags.Errorf("Task %d must be an object", i)
			continue
		}

		for _, field := range []string{"id", "description"} {
			if !task.Has(field) {
				diags.Errorf("Task %d missing required field: %s", i, field)
			}
		}

		if id, ok := task.StringField("id"); ok {
			if seen[id] {
				diags.Errorf("Duplicate task ID: %s", id)
			}
			seen[id] = true
		}

		if steps, ok := task.Get("steps"); ok {
			validateTaskSteps(steps, i, diags)
		}
	}
}

func validateTaskSteps(steps *document.Document, taskIndex int, diags *diag.List) {
	if !steps.IsSequence() {
		diags.Errorf("Task %d steps must be an array", taskIndex)
		return
	}

	for i, step := range steps.Items {
		if !step.IsMapping() {
			diags.Errorf("Task %d step %d must be an object", taskIndex, i)
			continue
		}

		for _, field := range []string{"name", "action"} {
			if !step.Has(field) {
				diags.Errorf("Task %d step %d missing required field: %s", taskIndex, i, field)
			}
		}

		if action, ok := step.StringField("action"); ok {
			if !contains(validActions, action) {
				diags.Warnf("Task %d step %d unknown action: %s", taskIndex, i, action)
			}
		}
	}
}

func validateContext(context *document.Document, diags *diag.List) {
	if !context.IsMapping() {
		diags.Errorf("context must be an object")
		return
	}

	if !context.Has("memory") {
		diags.Warnf("context.memory is recommended")
	}

	if servers, ok := context.Get("mcp_servers"); ok {
		validateMCPServers(servers, diags)
	}
}

func validateMCPServers(servers *document.Document, diags *diag.List) {
	if !servers.IsSequence() {
		diags.Errorf("mcp_servers must be an array")
		return
	}

	seen := make(map[string]bool)
	for i, server := range servers.Items {
		if !server.IsMapping() {
			diags.Errorf("MCP server %d must be an object", i)
			continue
		}

		for _, field := range []string{"id", "name", "description", "version", "transport", "capabilities", "authentication"} {
			if !server.Has(field) {
				diags.Errorf("MCP server %d missing required field: %s", i, field)
			}
		}

		if id, ok := server.StringField("id"); ok {
			if seen[id] {
				diags.Errorf("Duplicate MCP server ID: %s", id)
			}
			seen[id] = true
		}

		if transport, ok := server.Get("transport"); ok {
			validateMCPTransport(transport, i, diags)
		}
		if auth, ok := server.Get("authentication"); ok {
			validateMCPAuthentication(auth, i, diags)
		}
	}
}

func validateMCPTransport(transport *document.Document, serverIndex int, diags *diag.List) {
	if !transport.IsMapping() {
		diags.Errorf("MCP server %d transport must be an object", serverIndex)
		return
	}

	transportType, ok := transport.StringField("type")
	if !ok {
		if !transport.Has("type") {
			diags.Errorf("MCP server %d transport missing required field: type", serverIndex)
		}
		return
	}

	if !contains(validTransports, transportType) {
		diags.Errorf("MCP server %d invalid transport type: %s", serverIndex, transportType)
	}

	switch transportType {
	case "stdio":
		if !transport.Has("command") {
			diags.Errorf("MCP server %d stdio transport missing command", serverIndex)
		}
	case "sse", "websocket":
		if !transport.Has("url") {
			diags.Errorf("MCP server %d %s transport missing url", serverIndex, transportType)
		}
	}
}

func validateMCPAuthentication(auth *document.Document, serverIndex int, diags *diag.List) {
	if !auth.IsMapping() {
		diags.Errorf("MCP server %d authentication must be an object", serverIndex)
		return
	}

	authType, ok := auth.StringField("type")
	if !ok {
		if !auth.Has("type") {
			diags.Errorf("MCP server %d authentication missing required field: type", serverIndex)
		}
		return
	}

	if !contains(validAuthTypes, authType) {
		diags.Errorf("MCP server %d invalid authentication type: %s", serverIndex, authType)
	}

	switch authType {
	case "api_key":
		if !auth.Has("api_key") {
			diags.Warnf("MCP server %d api_key authentication missing api_key field", serverIndex)
		}
	case "oauth":
		if !auth.Has("token") {
			diags.Warnf("MCP server %d oauth authentication missing token field", serverIndex)
		}
	}
}

func validateEvaluation(evaluation *document.Document, diags *diag.List) {
	if !evaluation.IsMapping() {
		diags.Errorf("evaluation must be an object")
		return
	}

	if !evaluation.Has("metrics") {
		diags.Warnf("evaluation.metrics is recommended")
	}
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
