package apai

import (
	"log/slog"

	"github.com/FabioGuin/open-apia/pkg/apai/compose"
	"github.com/FabioGuin/open-apia/pkg/apai/diag"
	"github.com/FabioGuin/open-apia/pkg/apai/document"
	"github.com/FabioGuin/open-apia/pkg/apai/loader"
	"github.com/FabioGuin/open-apia/pkg/apai/validator"
)

// ValidateFile composes the specification at path with its inheritance
// chain and validates the merged result. The returned error is non-nil
// only for fatal failures (the root document could not be loaded);
// everything else is reported through the Result.
func ValidateFile(path string) (*validator.Result, error) {
	return ValidateFileWithLogger(path, slog.Default())
}

// ValidateFileWithLogger is ValidateFile with an explicit logger.
func ValidateFileWithLogger(path string, logger *slog.Logger) (*validator.Result, error) {
	composer := compose.NewComposer(loader.New()).WithLogger(logger)
	doc, diags, err := composer.Compose(path)
	if err != nil {
		return nil, err
	}

	diags.Extend(validator.New().Validate(doc))
	return validator.NewResult(path, diags), nil
}

// ValidateFileStandalone validates the document at path as-is, without
// resolving inheritance. Used when composition is explicitly disabled.
func ValidateFileStandalone(path string) (*validator.Result, error) {
	doc, err := loader.New().Load(path)
	if err != nil {
		return nil, err
	}

	diags := validator.New().Validate(doc)
	return validator.NewResult(path, diags), nil
}

// ComposeFile resolves and merges the inheritance chain of the document
// at path, returning the composed document and composition diagnostics.
func ComposeFile(path string) (*document.Document, *diag.List, error) {
	return compose.NewComposer(loader.New()).Compose(path)
}

// SpecFiles returns the canonical paths of the document at path and of
// every ancestor its inheritance chain loads, sorted. Ancestors that
// fail to load are absent. Watch mode uses this to cover the whole
// chain, not just the root's directory.
func SpecFiles(path string) ([]string, error) {
	composer := compose.NewComposer(loader.New())
	if _, _, err := composer.Compose(path); err != nil {
		return nil, err
	}
	return composer.LoadedPaths(), nil
}

// MergeFiles loads every path and left-folds them into one document:
// later files override earlier ones. Unlike composition this ignores
// inherits declarations; any load failure is fatal.
func MergeFiles(paths []string) (*document.Document, error) {
	l := loader.New()
	docs := make([]*document.Document, 0, len(paths))
	for _, path := range paths {
		doc, err := l.Load(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return compose.MergeAll(docs), nil
}
