package scanner

import (
	"strings"

	"github.com/go-python/gpython/ast"
)

// maxSignatureLines bounds the forward scan for the end of a parameter list,
// so malformed input cannot trigger a runaway scan.
const maxSignatureLines = 10

// defLineIndex returns the 0-based line index of a method's "def". The
// parser reports decorated methods at their first decorator, so scan forward
// for the def keyword.
func defLineIndex(fn *ast.FunctionDef, lines []string) int {
	start := fn.GetLineno() - 1
	if start < 0 {
		start = 0
	}
	if start >= len(lines) {
		if len(lines) == 0 {
			return 0
		}
		return len(lines) - 1
	}
	for i := start; i < len(lines); i++ {
		t := strings.TrimSpace(lines[i])
		if strings.HasPrefix(t, "def ") || strings.HasPrefix(t, "async def ") {
			return i
		}
	}
	return start
}

// methodSignature collects raw lines from the def line until the line that
// closes the parameter list and opens the body (optionally via a return
// annotation). Lines keep their indentation; trailing whitespace is trimmed.
func methodSignature(lines []string, start int) string {
	var parts []string
	for i := start; i < len(lines) && i < start+maxSignatureLines; i++ {
		line := lines[i]
		parts = append(parts, strings.TrimRight(line, " \t"))
		if strings.Contains(line, "):") || strings.Contains(line, ") ->") {
			break
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// decoratorStart returns the 0-based line index where a method's text begins:
// the first decorator line when one exists, else the def line. Keeping the
// decorators in the excerpt lets a re-parse recover the capability tag.
func decoratorStart(fn *ast.FunctionDef, defLine int) int {
	start := defLine
	for _, dec := range fn.DecoratorList {
		if l := dec.GetLineno() - 1; l >= 0 && l < start {
			start = l
		}
	}
	return start
}

// methodSource slices the verbatim method text from the line buffer. The
// parser records start positions only, so the end line is recovered as the
// deepest start line in the method subtree, extended through trailing lines
// still indented inside the body.
func methodSource(fn *ast.FunctionDef, lines []string, start int) string {
	if start >= len(lines) {
		return ""
	}

	end := maxLineno(fn) - 1
	if end < start {
		end = start
	}
	if end >= len(lines) {
		end = len(lines) - 1
	}

	defIndent := indentWidth(lines[start])
	for end+1 < len(lines) {
		next := lines[end+1]
		if strings.TrimSpace(next) == "" || indentWidth(next) > defIndent {
			end++
			continue
		}
		break
	}
	for end > start && strings.TrimSpace(lines[end]) == "" {
		end--
	}

	return strings.Join(lines[start:end+1], "\n")
}

// maxLineno returns the greatest reported line number in a subtree.
func maxLineno(node ast.Ast) int {
	max := node.GetLineno()
	ast.Walk(node, func(n ast.Ast) bool {
		if l := n.GetLineno(); l > max {
			max = l
		}
		return true
	})
	return max
}

// indentWidth counts leading whitespace characters (a tab counts as one).
func indentWidth(line string) int {
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return i
		}
	}
	return len(line)
}
