// Package file provides file-based configuration storage for authdocs.
// Configuration lives in a TOML file under the authdocs config directory
// and is flattened to dot-notation keys for lookup.
package file
