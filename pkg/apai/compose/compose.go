package compose

import (
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/FabioGuin/open-apia/pkg/apai/diag"
	"github.com/FabioGuin/open-apia/pkg/apai/document"
	apaiErrors "github.com/FabioGuin/open-apia/pkg/apai/errors"
)

// defaultMaxDepth bounds the inheritance chain. Chain depth is
// author-controlled input, so recursion is capped rather than trusted.
const defaultMaxDepth = 64

// Loader loads a document from a path. Satisfied by *loader.Loader.
type Loader interface {
	Load(path string) (*document.Document, error)
}

// Composer resolves a document's inheritance graph and merges it into a
// single composed document.
//
// All state (the loaded cache, the merged cache, the in-progress set) is
// scoped to one Compose call. The loaded cache maps canonical paths to
// raw documents so each file is read once; the merged cache memoizes
// composed results so a diamond ancestor is applied exactly once. The
// in-progress set is kept separate from both caches: re-entering a path
// that is still being composed is an inheritance cycle and is reported
// as an error, never absorbed as a cache hit.
type Composer struct {
	loader   Loader
	logger   *slog.Logger
	maxDepth int

	// per-run state, reset by Compose
	diags      *diag.List
	loaded     map[string]*document.Document
	merged     map[string]*document.Document
	inProgress map[string]bool
	stack      []string
}

// NewComposer creates a composer that loads ancestors through loader.
func NewComposer(loader Loader) *Composer {
	return &Composer{
		loader:   loader,
		logger:   slog.Default(),
		maxDepth: defaultMaxDepth,
	}
}

// WithLogger sets the logger used for composition tracing.
func (c *Composer) WithLogger(logger *slog.Logger) *Composer {
	c.logger = logger
	return c
}

// WithMaxDepth sets the maximum inheritance chain depth.
func (c *Composer) WithMaxDepth(depth int) *Composer {
	c.maxDepth = depth
	return c
}

// Compose loads the document at rootPath, resolves its transitive
// inheritance chain, and returns the fully merged document along with
// the diagnostics accumulated on the way.
//
// A load failure on the root is fatal and returned as an error. Load
// failures on ancestors, malformed inherits fields, and inheritance
// cycles are recovered locally: each is recorded as an error diagnostic
// and composition continues without that ancestor's contribution.
func (c *Composer) Compose(rootPath string) (*document.Document, *diag.List, error) {
	c.diags = diag.NewList()
	c.loaded = make(map[string]*document.Document)
	c.merged = make(map[string]*document.Document)
	c.inProgress = make(map[string]bool)
	c.stack = nil

	canonical, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, c.diags, &apaiErrors.Error{Type: apaiErrors.ErrorTypeIO, Path: rootPath, Message: err.Error(), Err: err}
	}

	root, err := c.load(canonical)
	if err != nil {
		return nil, c.diags, err
	}

	merged := c.compose(canonical, root, 0)
	return merged, c.diags, nil
}

// LoadedPaths returns the canonical paths of every document read by the
// last Compose run (the root and its transitive ancestors), sorted.
// Watch mode uses this to cover ancestors outside the root's directory.
func (c *Composer) LoadedPaths() []string {
	paths := make([]string, 0, len(c.loaded))
	for p := range c.loaded {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// load returns the raw document for a canonical path, reading each file
// at most once per run.
func (c *Composer) load(canonical string) (*document.Document, error) {
	if doc, ok := c.loaded[canonical]; ok {
		return doc, nil
	}
	doc, err := c.loader.Load(canonical)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("loaded specification", "path", canonical)
	c.loaded[canonical] = doc
	return doc, nil
}

// compose recursively merges the document at path with its composed
// ancestors. It returns nil when path closes an inheritance cycle, in
// which case the caller drops that edge.
func (c *Composer) compose(path string, doc *document.Document, depth int) *document.Document {
	if merged, ok := c.merged[path]; ok {
		return merged
	}
	if c.inProgress[path] {
		c.diags.Errorf("Inheritance cycle detected: %s", cyclePath(c.stack, path))
		return nil
	}
	if depth >= c.maxDepth {
		// Not memoized: the raw document is not a composed result, and
		// caching it would shadow a full composition reached through a
		// shallower route.
		c.diags.Errorf("Inheritance chain exceeds maximum depth %d at %s", c.maxDepth, path)
		return doc
	}

	c.inProgress[path] = true
	c.stack = append(c.stack, path)
	defer func() {
		delete(c.inProgress, path)
		c.stack = c.stack[:len(c.stack)-1]
	}()

	// Fold ancestors in declared order. Each Merge puts the next
	// ancestor on top, so the last-declared ancestor wins among
	// siblings; the local document is merged last and wins over all.
	var base *document.Document
	for _, ancestor := range c.ancestors(doc, path) {
		raw, err := c.load(ancestor.canonical)
		if err != nil {
			c.diags.Errorf("Inherited specification not found: %s", ancestor.declared)
			continue
		}
		composed := c.compose(ancestor.canonical, raw, depth+1)
		if composed == nil {
			continue
		}
		base = Merge(base, composed)
	}

	result := Merge(base, doc)
	c.merged[path] = result
	return result
}

// ancestorRef pairs an ancestor path as declared with its canonical
// form. Diagnostics report the declared spelling; caches key on the
// canonical one.
type ancestorRef struct {
	declared  string
	canonical string
}

// ancestors extracts and resolves the declared ancestor paths of doc.
// Paths resolve relative to the directory of the declaring document.
// A non-sequence inherits field, or a non-string entry, is a structural
// error; the affected edges are dropped.
func (c *Composer) ancestors(doc *document.Document, declaringPath string) []ancestorRef {
	inherits, ok := doc.Get("inherits")
	if !ok {
		return nil
	}
	if !inherits.IsSequence() {
		c.diags.Errorf("inherits must be a sequence of paths in %s", declaringPath)
		return nil
	}

	dir := filepath.Dir(declaringPath)
	refs := make([]ancestorRef, 0, inherits.Len())
	for i, item := range inherits.Items {
		declared, ok := item.AsString()
		if !ok {
			c.diags.Errorf("inherits entry %d in %s must be a path string", i, declaringPath)
			continue
		}
		resolved := declared
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(dir, resolved)
		}
		canonical, err := filepath.Abs(resolved)
		if err != nil {
			c.diags.Errorf("Inherited specification not found: %s", declared)
			continue
		}
		refs = append(refs, ancestorRef{declared: declared, canonical: canonical})
	}
	return refs
}

// cyclePath renders the portion of the resolution stack that forms the
// cycle, ending back at the re-entered path.
func cyclePath(stack []string, reentered string) string {
	start := 0
	for i, p := range stack {
		if p == reentered {
			start = i
			break
		}
	}
	parts := append(append([]string{}, stack[start:]...), reentered)
	return strings.Join(parts, " -> ")
}
