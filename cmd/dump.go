package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asandikci/strongswan/internal/logging"
)

// CreateDumpCmd creates the dump command, which renders a file through
// the logging facility's hex/ascii dump path.
func CreateDumpCmd() *cobra.Command {
	var label string
	var levelSpec string

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Hex dump a file through the logging facility",
		Long: `Reads the given file and renders it with the same hex/ascii dump ` +
			`format the daemon uses for binary payloads. Useful for inspecting ` +
			`captured packets offline.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := args[0]

			level, err := logging.ParseLevel(levelSpec)
			if err != nil {
				return fmt.Errorf("invalid level: %w", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			if label == "" {
				label = path
			}

			logger := logging.New("dump", logging.Full, false, os.Stdout)
			logger.LogBytes(level, label, data)
			return nil
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "Label for the dump header (defaults to the file name)")
	cmd.Flags().StringVar(&levelSpec, "level", "raw1", "Level to dump at, in ParseLevel syntax")
	return cmd
}
