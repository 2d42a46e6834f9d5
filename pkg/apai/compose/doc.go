// Package compose implements hierarchical composition of APAI
// specifications: resolution of the inheritance graph declared by
// `inherits` fields, deterministic deep merging of the documents in it,
// and memoization that keeps diamond-shaped graphs both terminating and
// duplicate-free.
//
// Composition is bottom-up. Every ancestor is itself fully composed
// before it is folded into its descendants, siblings are folded in
// declared order with the last-declared ancestor taking precedence, and
// the local document is merged last so it always wins:
//
//	composer := compose.NewComposer(loader.New())
//	doc, diags, err := composer.Compose("team-spec.yaml")
//
// The returned diagnostics carry everything that went wrong without
// stopping composition: unreadable ancestors, malformed inherits
// fields, and inheritance cycles. Only a failure to load the root
// document is fatal.
//
// Merge and MergeAll are exported separately for merging an explicit
// list of documents into one output file.
package compose
