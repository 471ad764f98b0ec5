// Package model defines the data structures for VBA source rewriting.
package model

// Path represents a file system path.
type Path string
