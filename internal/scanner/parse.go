package scanner

import (
	"bytes"
	"os"
	"strings"

	"github.com/go-python/gpython/ast"
	"github.com/go-python/gpython/parser"
)

// parsedFile pairs a syntax tree with the raw line buffer it came from.
// Span extraction needs the original lines; the tree alone cannot reproduce
// source text verbatim.
type parsedFile struct {
	path  string
	lines []string
	tree  ast.Ast
}

// parseFile reads and parses a Python file. Unreadable files and syntax
// errors are swallowed at file granularity: the file contributes no agents
// and the scan continues.
func (s *Scanner) parseFile(path string) (*parsedFile, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Debug().Str("file", path).Err(err).Msg("skipping unreadable file")
		return nil, false
	}

	tree, err := parser.Parse(bytes.NewReader(data), path, "exec")
	if err != nil {
		s.log.Debug().Str("file", path).Err(err).Msg("skipping file with syntax errors")
		return nil, false
	}

	return &parsedFile{
		path:  path,
		lines: splitLines(string(data)),
		tree:  tree,
	}, true
}

// splitLines splits source text on newlines, tolerating CRLF endings.
func splitLines(src string) []string {
	lines := strings.Split(src, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
