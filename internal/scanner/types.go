package scanner

import "github.com/rs/zerolog"

// MethodKind identifies how a capability method executes.
type MethodKind string

const (
	// KindPrimitive is an atomic, directly invocable capability.
	KindPrimitive MethodKind = "primitive"
	// KindDecomposition is a composite capability expressed as an intent.
	KindDecomposition MethodKind = "decomposition"
)

// BaseKind identifies which recognized agent contract a class extends.
type BaseKind string

const (
	BasePlanExecute BaseKind = "PlanExecute"
	BasePlanner     BaseKind = "Planner"
)

// DiscoveredMethod describes one tagged capability method on an agent class.
// Signature and Source are verbatim slices of the original file.
type DiscoveredMethod struct {
	Name           string     `json:"name"`
	Kind           MethodKind `json:"kind"`
	Docstring      string     `json:"docstring,omitempty"`
	Signature      string     `json:"signature"`
	Source         string     `json:"source"`
	LineNumber     int        `json:"line_number"`
	ReadOnly       bool       `json:"read_only"`
	Intent         string     `json:"intent,omitempty"`
	ExpandedIntent string     `json:"expanded_intent,omitempty"`
}

// DiscoveredAgent describes one agent class found in a file. Methods are in
// declaration order. Instances are value objects: constructed during a scan
// and never mutated afterwards.
type DiscoveredAgent struct {
	Name        string             `json:"name"`
	ClassName   string             `json:"class_name"`
	FilePath    string             `json:"file_path"`
	Description string             `json:"description,omitempty"`
	Version     string             `json:"version,omitempty"`
	BaseKind    BaseKind           `json:"base_kind"`
	Methods     []DiscoveredMethod `json:"methods"`
}

// Scanner discovers agent classes in Python source. It holds no state
// between calls; concurrent scans are independent.
type Scanner struct {
	log zerolog.Logger
}

// New returns a Scanner that reports skipped files on log at debug level.
func New(log zerolog.Logger) *Scanner {
	return &Scanner{log: log}
}
