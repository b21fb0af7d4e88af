// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - CorpusStore: loads the local docs corpus (filesystem adapter)
//   - ConfigStore: application configuration (TOML file adapter)
package driven
