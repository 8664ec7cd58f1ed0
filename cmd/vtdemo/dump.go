package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vtcore-go/vtcore"
	"github.com/vtcore-go/vtcore/internal/config"
)

func newDumpCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "dump <recording-file>",
		Short: "Replay a recorded session and print the resulting screen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read recording: %w", err)
			}

			vt := vtcore.New(vtcore.WithSize(cfg.Rows, cfg.Cols))
			vt.Write(data)

			snap := vt.Snapshot(vtcore.DetailText)
			for _, line := range snap.Lines {
				fmt.Println(line.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a vtdemo YAML config file")
	return cmd
}
