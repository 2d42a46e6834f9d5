// Package errors defines the typed error taxonomy shared by the loader,
// composer, and validator. Callers dispatch on ErrorType rather than
// matching message strings.
package errors
