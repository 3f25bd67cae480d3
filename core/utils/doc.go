// Package utils provides small text helpers shared by the catalog packages,
// mostly normalization applied before codex and guide values are compared.
package utils
