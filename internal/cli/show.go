package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opensymbolicai/osai/internal/registry"
	"github.com/opensymbolicai/osai/internal/scanner"
)

var (
	showJSON   bool
	showSource bool
	showPath   string
)

var showCmd = &cobra.Command{
	Use:   "show <agent>",
	Short: "Show details for a discovered agent",
	Long: `Show metadata, capability summary, and per-method details for one agent.
The agent is matched by display name or class name (case-insensitive) among
the agents discovered in the configured agents_folder, or in --path.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	showCmd.Flags().BoolVar(&showSource, "source", false, "Include full method source")
	showCmd.Flags().StringVar(&showPath, "path", "", "Directory to scan instead of the configured agents_folder")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	var scanArgs []string
	if showPath != "" {
		scanArgs = []string{showPath}
	}
	agents, err := discoverAgents(scanArgs)
	if err != nil {
		return err
	}

	agent, ok := registry.FindAgent(agents, args[0])
	if !ok {
		return fmt.Errorf("no agent named %q found", args[0])
	}

	if showJSON {
		data, err := json.MarshalIndent(agent, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling agent: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printAgent(cmd, agent)
	return nil
}

func printAgent(cmd *cobra.Command, agent registry.DiscoveredAgent) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, agent.Name)
	if agent.Description != "" {
		fmt.Fprintln(out, agent.Description)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Class:   %s\n", agent.ClassName)
	fmt.Fprintf(out, "Base:    %s\n", agent.BaseKind)
	if agent.Version != "" {
		fmt.Fprintf(out, "Version: %s\n", agent.Version)
	}
	fmt.Fprintf(out, "File:    %s\n", filepath.Base(agent.FilePath))

	primitives := 0
	readOnly := 0
	decompositions := 0
	for _, m := range agent.Methods {
		switch m.Kind {
		case scanner.KindPrimitive:
			primitives++
			if m.ReadOnly {
				readOnly++
			}
		case scanner.KindDecomposition:
			decompositions++
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Capabilities")
	fmt.Fprintf(out, "  Primitives: %d\n", primitives)
	if primitives > 0 {
		fmt.Fprintf(out, "    Read-only: %d\n", readOnly)
		fmt.Fprintf(out, "    Mutable: %d\n", primitives-readOnly)
	}
	fmt.Fprintf(out, "  Decompositions: %d\n", decompositions)

	for _, m := range agent.Methods {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s (%s, line %d)\n", m.Name, m.Kind, m.LineNumber)
		if m.Kind == scanner.KindPrimitive && m.ReadOnly {
			fmt.Fprintln(out, "  read-only")
		}
		if m.Intent != "" {
			fmt.Fprintf(out, "  intent: %s\n", m.Intent)
		}
		if m.ExpandedIntent != "" {
			fmt.Fprintf(out, "  expanded intent: %s\n", m.ExpandedIntent)
		}
		if m.Docstring != "" {
			fmt.Fprintf(out, "  %s\n", strings.ReplaceAll(m.Docstring, "\n", "\n  "))
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, indentBlock(m.Signature, "  "))
		if showSource {
			fmt.Fprintln(out)
			fmt.Fprintln(out, indentBlock(m.Source, "  "))
		}
	}
}

// indentBlock prefixes every line of a block with the given indent.
func indentBlock(block, indent string) string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = indent + l
	}
	return strings.Join(lines, "\n")
}
