package scanner

import (
	"strings"

	"github.com/go-python/gpython/ast"

	"github.com/opensymbolicai/osai/internal/manifest"
)

// baseKinds maps recognized base-class identifiers to their contract kind.
var baseKinds = map[string]BaseKind{
	"PlanExecute": BasePlanExecute,
	"Planner":     BasePlanner,
}

// extractAgents resolves every candidate class in a parsed file, in tree
// traversal order. Classes without a recognized base are skipped entirely.
func (s *Scanner) extractAgents(pf *parsedFile) []DiscoveredAgent {
	var agents []DiscoveredAgent
	for _, cls := range collectClasses(pf.tree) {
		kind, ok := resolveBase(cls)
		if !ok {
			continue
		}

		agent := DiscoveredAgent{
			Name:      string(cls.Name),
			ClassName: string(cls.Name),
			FilePath:  pf.path,
			BaseKind:  kind,
		}

		s.applyInitMetadata(cls, &agent)
		s.applyManifest(cls, pf.path, &agent)

		// Fall back to the first docstring line for the description.
		if agent.Description == "" {
			if doc := docstringOf(cls.Body); doc != "" {
				first, _, _ := strings.Cut(doc, "\n")
				agent.Description = strings.TrimSpace(first)
			}
		}

		agent.Methods = s.classifyMethods(cls, pf.lines)
		agents = append(agents, agent)
	}
	return agents
}

// collectClasses gathers class declarations from the whole tree, nested
// scopes included, in traversal order.
func collectClasses(tree ast.Ast) []*ast.ClassDef {
	var classes []*ast.ClassDef
	ast.Walk(tree, func(node ast.Ast) bool {
		if cls, ok := node.(*ast.ClassDef); ok {
			classes = append(classes, cls)
		}
		return true
	})
	return classes
}

// resolveBase matches a class against the recognized agent contracts: a base
// named PlanExecute or Planner, either directly or as the final segment of a
// dotted reference.
func resolveBase(cls *ast.ClassDef) (BaseKind, bool) {
	for _, base := range cls.Bases {
		switch b := base.(type) {
		case *ast.Name:
			if kind, ok := baseKinds[string(b.Id)]; ok {
				return kind, true
			}
		case *ast.Attribute:
			if kind, ok := baseKinds[string(b.Attr)]; ok {
				return kind, true
			}
		}
	}
	return "", false
}

// applyInitMetadata picks up literal name/description/version keyword
// arguments from initializer delegation calls (anything invoked as
// <expr>.__init__(...)) in the class subtree. When several such calls exist,
// later matches in traversal order overwrite earlier ones.
func (s *Scanner) applyInitMetadata(cls *ast.ClassDef, agent *DiscoveredAgent) {
	ast.Walk(cls, func(node ast.Ast) bool {
		call, ok := node.(*ast.Call)
		if !ok {
			return true
		}
		attr, ok := call.Func.(*ast.Attribute)
		if !ok || string(attr.Attr) != "__init__" {
			return true
		}
		for _, kw := range call.Keywords {
			val, ok := stringLiteral(kw.Value)
			if !ok {
				continue
			}
			switch string(kw.Arg) {
			case "name":
				agent.Name = val
			case "description":
				agent.Description = val
			case "version":
				agent.Version = val
			}
		}
		return true
	})
}

// applyManifest overlays sidecar manifest metadata when the class constructor
// delegates to load_manifest. Non-empty manifest fields take precedence over
// inline values; a missing or unparsable manifest changes nothing.
func (s *Scanner) applyManifest(cls *ast.ClassDef, path string, agent *DiscoveredAgent) {
	name, found := manifestCall(cls)
	if !found {
		return
	}

	meta := manifest.LoadSidecar(path, name)
	if meta.Name != "" {
		agent.Name = meta.Name
	}
	if meta.Description != "" {
		agent.Description = meta.Description
	}
	if meta.Version != "" {
		agent.Version = meta.Version
	}
}

// manifestCall finds the first load_manifest(...) call in the class subtree
// and returns the manifest name it requests ("" means the default naming
// convention). Later calls are ignored.
func manifestCall(cls *ast.ClassDef) (name string, found bool) {
	ast.Walk(cls, func(node ast.Ast) bool {
		if found {
			return false
		}
		call, ok := node.(*ast.Call)
		if !ok {
			return true
		}
		fn, ok := call.Func.(*ast.Name)
		if !ok || string(fn.Id) != "load_manifest" {
			return true
		}
		found = true

		// A second positional literal names the manifest explicitly.
		if len(call.Args) >= 2 {
			if v, ok := stringLiteral(call.Args[1]); ok {
				name = v
				return false
			}
		}
		for _, kw := range call.Keywords {
			if string(kw.Arg) == "manifest_name" {
				if v, ok := stringLiteral(kw.Value); ok {
					name = v
				}
			}
		}
		return false
	})
	return name, found
}
