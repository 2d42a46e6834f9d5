// Package diag provides the diagnostic collector used across a
// validation run.
//
// A run creates one List, threads it through composition and the
// validation passes, and derives the final verdict from it: the run is
// valid iff the list holds no error-severity diagnostics. Lists are
// plain values with no global state; independent runs never share one.
package diag
