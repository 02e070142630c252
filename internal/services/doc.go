// Package services defines shared utilities consumed by the pipeline stages
// and external integrations.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that tag failures with a
//     consistent taxonomy (file access, parse, external service, encoding) so
//     the CLI can surface the failure kind uniformly.
//
// Use these helpers when wiring new stage logic so error handling stays
// uniform across the pipeline.
package services
