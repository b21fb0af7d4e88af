// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The retrieval pipeline lives here: candidate selection over the
// corpus, paragraph segmentation, term-frequency scoring, and answer
// assembly. Every step is a pure synchronous computation; the only
// stateful collaborator is the corpus cache behind driven.CorpusStore.
package services
