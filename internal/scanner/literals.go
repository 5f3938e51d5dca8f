package scanner

import (
	"strings"

	"github.com/go-python/gpython/ast"
	"github.com/go-python/gpython/py"
)

// stringLiteral returns the value of a string constant expression.
func stringLiteral(e ast.Expr) (string, bool) {
	if s, ok := e.(*ast.Str); ok {
		return string(s.S), true
	}
	return "", false
}

// boolLiteral returns the value of a True/False constant expression.
func boolLiteral(e ast.Expr) (bool, bool) {
	if c, ok := e.(*ast.NameConstant); ok {
		if b, ok := c.Value.(py.Bool); ok {
			return bool(b), true
		}
	}
	return false, false
}

// docstringOf returns the cleaned docstring of a class or function body,
// or "" when the first statement is not a string literal.
func docstringOf(body []ast.Stmt) string {
	if len(body) == 0 {
		return ""
	}
	expr, ok := body[0].(*ast.ExprStmt)
	if !ok {
		return ""
	}
	doc, ok := stringLiteral(expr.Value)
	if !ok {
		return ""
	}
	return cleanDocstring(doc)
}

// cleanDocstring normalizes a docstring the way Python's inspect.cleandoc
// does: the first line is stripped, the remaining lines are dedented by
// their common indentation, and leading/trailing blank lines are removed.
func cleanDocstring(doc string) string {
	lines := strings.Split(doc, "\n")
	lines[0] = strings.TrimSpace(lines[0])

	margin := -1
	for _, l := range lines[1:] {
		trimmed := strings.TrimLeft(l, " \t")
		if trimmed == "" {
			continue
		}
		if indent := len(l) - len(trimmed); margin < 0 || indent < margin {
			margin = indent
		}
	}
	if margin > 0 {
		for i, l := range lines[1:] {
			if len(l) >= margin {
				lines[i+1] = l[margin:]
			} else {
				lines[i+1] = strings.TrimLeft(l, " \t")
			}
		}
	}

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.Join(lines, "\n")
}
