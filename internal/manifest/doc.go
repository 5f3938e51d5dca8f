// Package manifest handles sidecar manifest files for OpenSymbolicAI agents.
// A manifest is a small document next to an agent's source file (by default
// <stem>.manifest.json) that supplies metadata overrides: name, description,
// and version. Loading is lenient (a missing or unparsable manifest yields
// empty metadata), while Validate provides explicit JSON Schema checking for
// the `osai validate` command.
package manifest
