// Package sfcrawl provides a multithreaded crawler for Salesforce-style
// documentation sites. It performs bounded breadth-first traversal, classifies
// pages by structural type, extracts the semantic document body, and writes
// self-contained markdown artifacts with YAML frontmatter, one directory tree
// per product, consumed downstream by an independent indexing pipeline.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, htmltomarkdown/).
package sfcrawl
