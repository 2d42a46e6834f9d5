package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/FabioGuin/open-apia/pkg/apai/document"
	apaiErrors "github.com/FabioGuin/open-apia/pkg/apai/errors"
)

// Format identifies an on-disk encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Loader reads specification files into documents, selecting the decoder
// by file extension (.yaml/.yml or .json).
type Loader struct {
	maxFileSize int64
}

// New creates a loader with the default file size limit (10MB).
func New() *Loader {
	return &Loader{maxFileSize: 10 * 1024 * 1024}
}

// WithMaxFileSize sets the maximum file size limit.
func (l *Loader) WithMaxFileSize(size int64) *Loader {
	l.maxFileSize = size
	return l
}

// Load reads and decodes the file at path into a Document.
// The document root must be a mapping. Failures are reported as typed
// errors: not_found, parse, unsupported_format, structural, or io.
func (l *Loader) Load(path string) (*document.Document, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apaiErrors.NewNotFound(path, err)
		}
		return nil, &apaiErrors.Error{Type: apaiErrors.ErrorTypeIO, Path: path, Message: err.Error(), Err: err}
	}
	if info.Size() > l.maxFileSize {
		return nil, &apaiErrors.Error{
			Type:    apaiErrors.ErrorTypeIO,
			Path:    path,
			Message: fmt.Sprintf("file size %d exceeds maximum %d bytes", info.Size(), l.maxFileSize),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apaiErrors.NewNotFound(path, err)
		}
		return nil, &apaiErrors.Error{Type: apaiErrors.ErrorTypeIO, Path: path, Message: err.Error(), Err: err}
	}

	return l.LoadBytes(data, path, format)
}

// LoadBytes decodes raw bytes in the given format. The sourcePath is
// used only for error reporting.
func (l *Loader) LoadBytes(data []byte, sourcePath string, format Format) (*document.Document, error) {
	var raw interface{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatJSON:
		err = json.Unmarshal(data, &raw)
	default:
		return nil, apaiErrors.NewUnsupportedFormat(sourcePath, string(format))
	}
	if err != nil {
		return nil, apaiErrors.NewParse(sourcePath, err)
	}

	doc, err := document.FromInterface(raw)
	if err != nil {
		return nil, apaiErrors.NewStructural(sourcePath, err.Error())
	}
	if !doc.IsMapping() {
		return nil, apaiErrors.NewStructural(sourcePath, "specification root must be a mapping")
	}
	return doc, nil
}

// Write encodes doc in the given format to w.
func Write(w io.Writer, doc *document.Document, format Format) error {
	raw := doc.ToInterface()
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(raw)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(raw); err != nil {
			return err
		}
		return enc.Close()
	default:
		return apaiErrors.NewUnsupportedFormat("", string(format))
	}
}

// WriteFile encodes doc to the file at path, inferring the format from
// the extension unless format is non-empty.
func WriteFile(path string, doc *document.Document, format Format) error {
	if format == "" {
		f, err := formatForPath(path)
		if err != nil {
			return err
		}
		format = f
	}

	file, err := os.Create(path)
	if err != nil {
		return &apaiErrors.Error{Type: apaiErrors.ErrorTypeIO, Path: path, Message: err.Error(), Err: err}
	}
	defer file.Close()

	return Write(file, doc, format)
}

// formatForPath maps a file extension to a Format.
func formatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", apaiErrors.NewUnsupportedFormat(path, filepath.Ext(path))
	}
}
