package compose

import (
	"github.com/FabioGuin/open-apia/pkg/apai/document"
)

// Merge combines two documents under the override policy: when both
// sides of a key are mappings the merge recurses key-wise, otherwise the
// override value replaces the base value entirely. Sequences are never
// merged element-wise; an overriding list supersedes the inherited one.
//
// Merge is a pure function. Inputs are never modified; the result shares
// unmodified subtrees with them. It is associative but not commutative.
func Merge(base, override *document.Document) *document.Document {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}
	if !base.IsMapping() || !override.IsMapping() {
		return override
	}

	result := document.NewMapping()
	for key, value := range base.Fields {
		result.Fields[key] = value
	}
	for key, value := range override.Fields {
		if existing, ok := result.Fields[key]; ok && existing.IsMapping() && value.IsMapping() {
			result.Fields[key] = Merge(existing, value)
			continue
		}
		result.Fields[key] = value
	}
	return result
}

// MergeAll left-folds Merge over docs: each document overrides the
// accumulated result of those before it. It returns nil for an empty
// input. Used by the merge-files workflow, independent of inheritance
// declarations.
func MergeAll(docs []*document.Document) *document.Document {
	if len(docs) == 0 {
		return nil
	}
	result := docs[0]
	for _, doc := range docs[1:] {
		result = Merge(result, doc)
	}
	return result
}
