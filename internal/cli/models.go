package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opensymbolicai/osai/internal/config"
	"github.com/opensymbolicai/osai/internal/modelcache"
)

var (
	modelsJSON    bool
	modelsRefresh bool
)

var modelsCmd = &cobra.Command{
	Use:   "models [provider]",
	Short: "List available models for a provider",
	Long: `List the models a provider currently offers. Results are cached for the
day under ~/.osai/cache; use --refresh to bypass the cache. Without an
argument the configured default_provider is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runModels,
}

func init() {
	modelsCmd.Flags().BoolVar(&modelsJSON, "json", false, "Output in JSON format")
	modelsCmd.Flags().BoolVar(&modelsRefresh, "refresh", false, "Bypass the daily cache")
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	provider := config.Get(config.KeyDefaultProvider)
	if len(args) == 1 {
		provider = args[0]
	}

	models, err := modelcache.Fetch(cmd.Context(), config.CacheDir(), provider, modelsRefresh)
	if err != nil {
		return fmt.Errorf("listing models for %s: %w", provider, err)
	}

	if modelsJSON {
		data, err := json.MarshalIndent(models, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling models: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if len(models) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No models available for %s.\n", provider)
		return nil
	}
	for _, m := range models {
		fmt.Fprintln(cmd.OutOrStdout(), m)
	}
	return nil
}
