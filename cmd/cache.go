package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"collector-stats/core/cache"
	"collector-stats/core/config"
	"collector-stats/core/database"
	"collector-stats/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cacheCmd is the parent command for cache maintenance operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and maintain the durable cache tier",
}

// cacheClearCmd wipes the durable cache so the next read of every resource
// goes upstream.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all cached entries (force refresh)",
	RunE:  runCacheClear,
}

// cacheInspectCmd prints the durable cache table schema, useful when pointing
// several instances at one shared database.
var cacheInspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the durable cache table schema",
	RunE:  runCacheInspect,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheInspectCmd)
	RootCmd.AddCommand(cacheCmd)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect cache database: %w", err)
	}
	durable, err := cache.NewDurableTier(db, l)
	if err != nil {
		return fmt.Errorf("failed to initialize durable cache tier: %w", err)
	}

	if err := durable.Clear(context.Background()); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	l.Info("Durable cache cleared", zap.String("table", cache.DurableTableName))
	return nil
}

func runCacheInspect(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect cache database: %w", err)
	}
	// Ensure the table exists before inspecting a fresh database.
	if _, err := cache.NewDurableTier(db, l); err != nil {
		return fmt.Errorf("failed to initialize durable cache tier: %w", err)
	}

	columns, err := database.GetTableColumns(db, cache.DurableTableName)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tTYPE")
	for _, col := range columns {
		fmt.Fprintf(w, "%s\t%s\n", col.Field, col.Type)
	}
	return w.Flush()
}
