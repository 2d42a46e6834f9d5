// Package apai is the convenience facade over loading, composing, and
// validating APAI specification documents.
//
// Validate a specification with inheritance:
//
//	result, err := apai.ValidateFile("team-spec.yaml")
//	if err != nil {
//	    log.Fatal(err) // root document unreadable
//	}
//	if !result.Valid {
//	    for _, msg := range result.Errors {
//	        fmt.Println(msg)
//	    }
//	}
//
// The subpackages hold the pieces: document (tagged-variant tree),
// loader (YAML/JSON codecs), compose (inheritance resolution and deep
// merge), validator (section rules and cross-references), diag
// (diagnostic collection), and watcher (re-validation on file change).
package apai
