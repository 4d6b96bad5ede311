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

var materializeCmd = &cobra.Command{
	Use:   "materialize",
	Short: "Build every item declared in the configuration and print them",
	RunE:  runMaterialize,
}

func init() {
	rootCmd.AddCommand(materializeCmd)
}

func runMaterialize(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()
	svc.Start(ctx)

	items, err := svc.Materialize()
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
