// Package registry aggregates agent discovery across configured sources.
// It runs the scanner over each source directory, applies earlier-source
// priority when the same agent appears twice, and offers semver-constraint
// filtering for display.
package registry
