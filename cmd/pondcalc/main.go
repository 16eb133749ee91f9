package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Meshed/PondDiggingCalculator-sub005/internal/server"
	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/config"
)

func main() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	configPath := os.Getenv("PONDCALC_CONFIG")
	if configPath == "" {
		configPath = "pond-config.yaml"
	}

	rootCmd := &cobra.Command{
		Use:   "pondcalc",
		Short: "Pond excavation timeline estimator",
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", configPath, "path to the calculator config YAML")

	rootCmd.AddCommand(estimateCmd(&configPath))
	rootCmd.AddCommand(validateCmd(&configPath))
	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(exportCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// inputFlags registers the eight raw input flags. Empty values fall back to
// the configured defaults at run time.
func inputFlags(cmd *cobra.Command, raw *rawFlags) {
	cmd.Flags().StringVar(&raw.excavatorCapacity, "excavator-capacity", "", "bucket capacity in cubic yards")
	cmd.Flags().StringVar(&raw.cycleTime, "cycle-time", "", "excavator cycle time in minutes")
	cmd.Flags().StringVar(&raw.truckCapacity, "truck-capacity", "", "truck capacity in cubic yards")
	cmd.Flags().StringVar(&raw.roundTripTime, "round-trip-time", "", "truck round-trip time in minutes")
	cmd.Flags().StringVar(&raw.pondLength, "length", "", "pond length in feet")
	cmd.Flags().StringVar(&raw.pondWidth, "width", "", "pond width in feet")
	cmd.Flags().StringVar(&raw.pondDepth, "depth", "", "pond depth in feet")
	cmd.Flags().StringVar(&raw.workHours, "work-hours", "", "work hours per day")
}

func estimateCmd(configPath *string) *cobra.Command {
	var raw rawFlags
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Compute the excavation timeline and print a report",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runEstimate(*configPath, raw)
		},
	}
	inputFlags(cmd, &raw)
	return cmd
}

func validateCmd(configPath *string) *cobra.Command {
	var raw rawFlags
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check inputs against the validation rules without estimating",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runValidate(*configPath, raw)
		},
	}
	inputFlags(cmd, &raw)
	return cmd
}

func serveCmd(configPath *string) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local calculator UI server",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := config.LoadOrFallback(*configPath)
			return server.New(cfg, port).Start()
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}

func exportCmd(configPath *string) *cobra.Command {
	var raw rawFlags
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Compute the estimate and write it to an .xlsx workbook",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runExport(*configPath, raw, out)
		},
	}
	inputFlags(cmd, &raw)
	cmd.Flags().StringVarP(&out, "out", "o", "estimate.xlsx", "output workbook path")
	return cmd
}
