package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/villnoweric/package-delivery-tycoon/app"
	"github.com/villnoweric/package-delivery-tycoon/config"
)

var simDays int

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation for a number of days",
	RunE:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&simDays, "days", 30, "number of days to simulate")
	rootCmd.AddCommand(simCmd)
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	enc := json.NewEncoder(os.Stdout)
	for i := 0; i < simDays; i++ {
		report := svc.Game.AdvanceDay()
		if err := enc.Encode(report); err != nil {
			return err
		}
	}
	return svc.Save(context.Background())
}
