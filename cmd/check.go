package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asandikci/strongswan/internal/config"
	"github.com/asandikci/strongswan/internal/logging"
)

// CreateCheckCmd creates the check command, which validates a
// configuration file's logging section without starting the daemon.
func CreateCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [config-file]",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			opts := &config.Options{Config: path, LogDefault: "all1"}
			if err := config.Load(opts, nil); err != nil {
				return err
			}

			cfg, err := config.LoadLogging(path, opts)
			if err != nil {
				return err
			}

			if _, err := logging.ParseLevel(cfg.Default); err != nil {
				return fmt.Errorf("default level: %w", err)
			}
			for name, spec := range cfg.Loggers {
				if _, err := logging.ParseLevel(spec); err != nil {
					return fmt.Errorf("logger %q: %w", name, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d logger overrides)\n", path, len(cfg.Loggers))
			return nil
		},
	}
	return cmd
}
