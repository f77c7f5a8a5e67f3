// Package core provides small numeric and buffer helpers shared across
// the filter packages.
package core
