// Package file provides file-based configuration storage using TOML.
// Settings live in ~/.perch/config.toml by default.
package file
