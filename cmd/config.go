package cmd

import (
	"fmt"
	"strconv"

	"github.com/inovacc/afscreen/internal/config"
	"github.com/inovacc/afscreen/internal/encoding"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolP("force", "f", false, "overwrite an existing file")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	cfg := currentConfig()

	source := path
	if !encoding.FileExists(path) {
		source = path + " (not found, defaults)"
	}

	items := map[string]string{
		"File":            source,
		"Chunk size":      strconv.Itoa(cfg.Generate.ChunkSize),
		"Name column":     orUnset(cfg.Generate.NameColumn),
		"Sequence column": orUnset(cfg.Generate.SequenceColumn),
		"Output":          orUnset(cfg.Generate.Output),
		"History":         strconv.FormatBool(cfg.History.Enabled),
		"History backend": cfg.History.Backend,
		"Log level":       cfg.Log.Level,
		"Log format":      cfg.Log.Format,
	}
	order := []string{"File", "Chunk size", "Name column", "Sequence column", "Output",
		"History", "History backend", "Log level", "Log format"}

	printInfoBox(cmd.OutOrStdout(), "Configuration", items, order)

	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	if encoding.FileExists(path) && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.Default()
	if err := config.Save(path, &cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)

	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(prompt)"
	}
	return s
}
