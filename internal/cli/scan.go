package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/opensymbolicai/osai/internal/config"
	"github.com/opensymbolicai/osai/internal/logging"
	"github.com/opensymbolicai/osai/internal/registry"
	"github.com/opensymbolicai/osai/internal/scanner"
)

var (
	scanJSON       bool
	scanFile       bool
	scanConstraint string
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Discover agents in a source tree",
	Long: `Recursively scan a directory for Python files defining PlanExecute or
Planner subclasses. Without a path argument, the configured agents_folder is
scanned. With --file, the path is scanned as a single Python file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Output in JSON format")
	scanCmd.Flags().BoolVar(&scanFile, "file", false, "Scan a single file instead of a directory")
	scanCmd.Flags().StringVar(&scanConstraint, "constraint", "", "Only show agents whose version satisfies a semver constraint (e.g. \">=1.0.0\")")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	agents, err := discoverAgents(args)
	if err != nil {
		return err
	}

	agents, err = registry.FilterByConstraint(agents, scanConstraint)
	if err != nil {
		return err
	}

	if len(agents) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No agents found.")
		return nil
	}

	if scanJSON {
		data, err := json.MarshalIndent(agents, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling agents: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tCLASS\tBASE\tVERSION\tMETHODS\tFILE")
	for _, a := range agents {
		version := a.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			a.Name, a.ClassName, a.BaseKind, version, len(a.Methods), a.FilePath)
	}
	return w.Flush()
}

// discoverAgents resolves the scan target from args/config and runs the
// scanner. A single explicit path becomes a one-source registry scan.
func discoverAgents(args []string) ([]registry.DiscoveredAgent, error) {
	scanLog := logging.Sub(log, "scanner")

	if scanFile {
		if len(args) == 0 {
			return nil, fmt.Errorf("--file requires a path argument")
		}
		s := scanner.New(scanLog)
		var result []registry.DiscoveredAgent
		for _, a := range s.ScanFile(args[0]) {
			result = append(result, registry.DiscoveredAgent{DiscoveredAgent: a})
		}
		return result, nil
	}

	var sources []registry.Source
	if len(args) == 1 {
		sources = []registry.Source{{Name: "path", BasePath: args[0]}}
	} else {
		folder := config.Get(config.KeyAgentsFolder)
		if folder == "" {
			return nil, fmt.Errorf("no agents folder configured; run `osai config set %s <path>` or pass a path", config.KeyAgentsFolder)
		}
		sources = []registry.Source{{Name: "default", BasePath: folder}}
	}

	return registry.DiscoverAgents(scanLog, sources), nil
}
