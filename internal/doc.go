// Package internal contains the core implementation packages for driftlint.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the driftlint CLI tool.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - audit: the end-to-end pipeline wiring scanner, rules, and report
//   - config: configuration management with validation
//   - errors: structured error types for operational failures
//   - logging: structured logging on top of log/slog
//   - report: issue aggregation and text/JSON/SARIF rendering
//   - rules: pattern tables, case classification, and the four checks
//   - scanner: single-pass tree traversal and import extraction
//   - types: the shared data model (FileRecord, ImportEdge, Issue)
//   - version: build metadata
//   - watcher: file system monitoring with debouncing for watch mode
//
// # Data Flow
//
// One audit run is a strict pipeline with no shared mutable state:
//
//   - Scanner walks the tree once and returns an immutable inventory
//     plus the extracted import edges
//   - Each rule check is a pure function over the inventory, returning
//     issues in deterministic order
//   - The reporter consumes the accumulated issues exactly once and
//     computes the rendering and the process exit status
//
// Rule violations are data (types.Issue), never errors; only operational
// failures (unreadable root, invalid config) travel as errors.
package internal
