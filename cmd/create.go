package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmorel/catalog/app"
	"github.com/jmorel/catalog/config"
)

var createAttrs string

var createCmd = &cobra.Command{
	Use:   "create <kind>",
	Short: "Build a single variant and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createAttrs, "attrs", "a", "{}", "construction attributes as a JSON object")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var attrs map[string]any
	if err := json.Unmarshal([]byte(createAttrs), &attrs); err != nil {
		return fmt.Errorf("parse attrs: %w", err)
	}

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()
	svc.Start(ctx)

	p, err := svc.Create(args[0], attrs)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
