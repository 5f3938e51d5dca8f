package scanner

import "github.com/go-python/gpython/ast"

// capabilityTag is the resolved form of a @primitive/@decomposition marker.
type capabilityTag struct {
	kind           MethodKind
	readOnly       bool
	intent         string
	expandedIntent string
}

// classifyMethods walks a class body in declaration order and returns the
// methods carrying a capability tag. Untagged methods are invisible.
func (s *Scanner) classifyMethods(cls *ast.ClassDef, lines []string) []DiscoveredMethod {
	var methods []DiscoveredMethod
	for _, stmt := range cls.Body {
		fn, ok := stmt.(*ast.FunctionDef)
		if !ok {
			continue
		}
		tag, tagged := classifyDecorators(fn.DecoratorList)
		if !tagged {
			continue
		}

		start := defLineIndex(fn, lines)
		methods = append(methods, DiscoveredMethod{
			Name:           string(fn.Name),
			Kind:           tag.kind,
			Docstring:      docstringOf(fn.Body),
			Signature:      methodSignature(lines, start),
			Source:         methodSource(fn, lines, decoratorStart(fn, start)),
			LineNumber:     start + 1,
			ReadOnly:       tag.readOnly,
			Intent:         tag.intent,
			ExpandedIntent: tag.expandedIntent,
		})
	}
	return methods
}

// classifyDecorators resolves a decorator list to at most one capability tag.
// Both bare markers (@primitive) and argument forms (@primitive(read_only=True),
// @decomposition("intent", expanded_intent="...")) are recognized.
func classifyDecorators(decorators []ast.Expr) (capabilityTag, bool) {
	var tag capabilityTag
	tagged := false

	for _, dec := range decorators {
		switch d := dec.(type) {
		case *ast.Name:
			switch string(d.Id) {
			case "primitive":
				tag.kind = KindPrimitive
				tagged = true
			case "decomposition":
				tag.kind = KindDecomposition
				tagged = true
			}
		case *ast.Call:
			fn, ok := d.Func.(*ast.Name)
			if !ok {
				continue
			}
			switch string(fn.Id) {
			case "primitive":
				tag.kind = KindPrimitive
				tagged = true
				for _, kw := range d.Keywords {
					if string(kw.Arg) == "read_only" {
						if b, ok := boolLiteral(kw.Value); ok {
							tag.readOnly = b
						}
					}
				}
			case "decomposition":
				tag.kind = KindDecomposition
				tagged = true
				if len(d.Args) >= 1 {
					if v, ok := stringLiteral(d.Args[0]); ok {
						tag.intent = v
					}
				}
				for _, kw := range d.Keywords {
					switch string(kw.Arg) {
					case "intent":
						if v, ok := stringLiteral(kw.Value); ok {
							tag.intent = v
						}
					case "expanded_intent":
						if v, ok := stringLiteral(kw.Value); ok {
							tag.expandedIntent = v
						}
					}
				}
			}
		}
	}
	return tag, tagged
}
