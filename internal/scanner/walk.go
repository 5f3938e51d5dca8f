package scanner

import (
	"os"
	"path/filepath"
)

// ScanDir recursively scans root for Python files containing agent classes
// and concatenates the results in traversal order (lexical, hence
// deterministic). __pycache__ subtrees are skipped. A missing or
// non-directory root yields an empty result.
func (s *Scanner) ScanDir(root string) []DiscoveredAgent {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		s.log.Debug().Str("root", root).Msg("scan root missing or not a directory")
		return nil
	}

	var agents []DiscoveredAgent
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil // skip inaccessible entries
		}
		if d.IsDir() {
			if d.Name() == "__pycache__" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(d.Name()) != ".py" {
			return nil
		}
		agents = append(agents, s.scanPath(path)...)
		return nil
	})

	s.log.Debug().Str("root", root).Int("agents", len(agents)).Msg("directory scan complete")
	return agents
}

// ScanFile scans a single Python file for agent classes. A missing path or
// a directory yields an empty result.
func (s *Scanner) ScanFile(path string) []DiscoveredAgent {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil
	}
	return s.scanPath(path)
}

func (s *Scanner) scanPath(path string) []DiscoveredAgent {
	pf, ok := s.parseFile(path)
	if !ok {
		return nil
	}
	return s.extractAgents(pf)
}
