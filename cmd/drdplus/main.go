// Package main is the entry point of the drdplus command line tool
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaroslavtyc/drd-plus-person/internal/config"
	"github.com/jaroslavtyc/drd-plus-person/internal/engine/tables"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:               "drdplus",
	Short:             "DrD+ person tools",
	Long:              `drdplus creates persons from character sheets and shows what the rules make of them.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(tablesCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	cfg = c

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()})))
	return nil
}

func loadTables() (*tables.Tables, error) {
	if cfg != nil && cfg.TablesFile != "" {
		slog.Debug("loading rules tables", "file", cfg.TablesFile)
		return tables.LoadFile(cfg.TablesFile)
	}
	return tables.Load()
}
