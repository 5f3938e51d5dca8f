// Package scanner statically discovers OpenSymbolicAI agents in Python
// source. It parses files into a syntax tree, finds classes extending
// PlanExecute or Planner, classifies their @primitive and @decomposition
// methods, and overlays sidecar manifest metadata. The scanned code is never
// imported or executed, and extraction is best-effort: unreadable or invalid
// files simply contribute no agents.
package scanner
