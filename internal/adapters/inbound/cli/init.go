package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/polaxis/internal/adapters/outbound/config"
	"github.com/abdidvp/polaxis/internal/domain"
)

func newInitCmd(g *globalFlags) *cobra.Command {
	var (
		storeDriver string
		cacheDriver string
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .polaxis.yaml configuration file",
		Long:  "Create a .polaxis.yaml with sensible defaults in the project directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(g.dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := domain.DefaultConfig()
			cfg.Store.Driver = domain.StoreDriver(storeDriver)
			cfg.Cache.Driver = domain.CacheDriver(cacheDriver)
			if cfg.Store.Driver == domain.StoreSQLite {
				cfg.Store.DSN = "file:.polaxis/results.db"
			}
			if cfg.Cache.Driver == domain.CacheFile {
				cfg.Cache.Dir = domain.DefaultCacheDir
			}
			if cfg.Cache.Driver == domain.CacheRedis {
				cfg.Cache.Addr = "localhost:6379"
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := os.WriteFile(dest, []byte(generateConfig(cfg)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&storeDriver, "store", "", "Result store driver (sqlite, postgres, mongo)")
	cmd.Flags().StringVar(&cacheDriver, "cache", "none", "Cache driver (none, file, redis)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .polaxis.yaml")

	return cmd
}

func generateConfig(cfg domain.EngineConfig) string {
	result := fmt.Sprintf("# polaxis configuration\n\nbank: %s\n\n", cfg.Bank)

	result += `# axis_aliases:
#   "Markets vs. Equality": "Equity vs. Free Market"

`

	if cfg.Store.Driver != domain.StoreNone {
		result += fmt.Sprintf("store:\n  driver: %s\n", cfg.Store.Driver)
		if cfg.Store.DSN != "" {
			result += fmt.Sprintf("  dsn: %q\n", cfg.Store.DSN)
		}
		result += "\n"
	} else {
		result += "# store:\n#   driver: sqlite\n#   dsn: \"file:.polaxis/results.db\"\n\n"
	}

	result += fmt.Sprintf("cache:\n  driver: %s\n", cfg.Cache.Driver)
	if cfg.Cache.Dir != "" {
		result += fmt.Sprintf("  dir: %s\n", cfg.Cache.Dir)
	}
	if cfg.Cache.Addr != "" {
		result += fmt.Sprintf("  addr: %s\n  ttl: %s\n", cfg.Cache.Addr, domain.DefaultCacheTTL)
	}

	result += fmt.Sprintf("\nhttp:\n  addr: %q\n  # cors_origins:\n  #   - http://localhost:3000\n\nhistory: false\n", cfg.HTTP.Addr)

	return result
}
