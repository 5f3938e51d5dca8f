package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opensymbolicai/osai/internal/manifest"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest>",
	Short: "Validate a sidecar manifest against the schema",
	Long: `Validate an agent manifest file (<stem>.manifest.json or a YAML
alternative) against the manifest JSON schema. The scanner itself tolerates
broken manifests silently; this command makes the problems visible.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	result, err := manifest.ValidateFile(path)
	if err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}

	if !result.Valid {
		for _, issue := range result.Issues {
			loc := issue.Path
			if loc == "" {
				loc = "(root)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s [%s]\n", loc, issue.Message, issue.Keyword)
		}
		return fmt.Errorf("%s: %d validation issue(s)", path, len(result.Issues))
	}

	// Schema-valid manifests may still carry a version the registry cannot
	// compare; surface that as a warning, not a failure.
	if meta, err := manifest.Parse(path); err == nil {
		if err := manifest.CheckVersion(meta.Version); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "warning: %v\n", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid.\n", path)
	return nil
}
