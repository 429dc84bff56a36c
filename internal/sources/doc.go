// Package sources reads font package metadata from a google-fonts style
// directory tree.
//
// The tree is organized as <base>/<category>/<font>/ where category is a
// licensing bucket (ofl, apache, ufl) and each font directory optionally
// carries a description HTML file and a METADATA.pb text file.
//
// Everything in this package is deliberately permissive: missing files and
// unreadable content degrade to empty values rather than errors, because
// upstream font packages are frequently incomplete. Only the category
// directory listing itself can fail.
package sources
