// Package stencil implements the validation engine for stencil definitions.
//
// A stencil is a directory-based template definition: a settings document
// (stencil-settings.yaml) describing identity, version, and a file manifest,
// plus the referenced files themselves. The engine loads the document,
// applies schema and optional strict-mode convention checks, verifies
// referenced files exist, reports extend/include cross-references without
// resolving them, and aggregates everything into a single Report with a
// deterministic exit code.
//
// The engine is strictly read-only and synchronous in spirit: each stage
// completes before the next begins, and every failure becomes a Finding
// rather than an error return or panic.
package stencil
