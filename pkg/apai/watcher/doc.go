// Package watcher re-runs validation when watched specification files
// change. It backs the CLI's --watch flag.
package watcher
