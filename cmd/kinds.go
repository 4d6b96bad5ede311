package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmorel/catalog/app"
	"github.com/jmorel/catalog/config"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the discriminator keys available in this catalog",
	RunE:  runKinds,
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}

func runKinds(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	for _, k := range svc.Kinds() {
		fmt.Fprintln(cmd.OutOrStdout(), k)
	}
	return nil
}
