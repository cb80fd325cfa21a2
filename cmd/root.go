package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"korea-realestate/auth"
	"korea-realestate/config"
	"korea-realestate/models"
	"korea-realestate/region"
	"korea-realestate/registry"
	"korea-realestate/services"
	"korea-realestate/upstream"
	"korea-realestate/utils"
)

var (
	configPath string
	jsonOutput bool
	csvPath    string
)

// app holds the wiring shared by every subcommand.
type app struct {
	cfg    *config.Config
	logger *utils.Logger
	agg    *services.Aggregator
	trend  *services.TrendService
}

var current *app

var rootCmd = &cobra.Command{
	Use:   "realestate",
	Short: "Korean real-estate transactions, subscriptions, auctions and loan math",
	Long: `realestate queries the public MOLIT transaction APIs, the Applyhome
subscription statistics and Onbid auction results, and runs mortgage,
savings and cash-flow calculations.

Credentials are read from the environment or a .env file:
  DATA_GO_KR_API_KEY   transaction and auction endpoints
  ONBID_API_KEY        auction endpoint (falls back to DATA_GO_KR_API_KEY)
  ODCLOUD_API_KEY      subscription endpoints, sent as Authorization header
  ODCLOUD_SERVICE_KEY  subscription endpoints, sent as serviceKey parameter`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file (env vars override it)")
	pf.BoolVar(&jsonOutput, "json", false, "print the raw JSON envelope instead of tables")
	pf.StringVar(&csvPath, "csv", "", "also export the result rows to this CSV file")
}

func setup(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFile(configPath); err != nil {
			return err
		}
	} else {
		cfg = config.Load()
	}

	logger, err := utils.NewLoggerWithConfig(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	// Keep stdout clean for machine-readable output.
	if jsonOutput && cfg.Log.File == "" {
		logger.SetOutput(os.Stderr)
	}

	agg := services.NewAggregator(
		registry.New(cfg.Upstream.DataGoKrBaseURL, cfg.Upstream.OdcloudBaseURL),
		auth.NewResolver(cfg.Credentials()),
		upstream.NewFetcher(cfg.HTTPTimeout(), logger),
		region.NewResolver(),
		logger,
	)
	trend := services.NewTrendService(agg, services.TrendOptions{
		Concurrency: cfg.Trend.Concurrency,
		RateLimitMs: cfg.Trend.RateLimitMs,
		Attempts:    cfg.Trend.MaxRetries,
		BaseDelay:   time.Second,
	}, logger)

	current = &app{cfg: cfg, logger: logger, agg: agg, trend: trend}
	return nil
}

// Execute runs the root command. Failures are printed as an error envelope
// and exit with status 1.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(err)
		stop()
		os.Exit(1)
	}
}

func printError(err error) {
	var fe *models.FetchError
	if !errors.As(err, &fe) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if jsonOutput {
		printJSON(fe.Envelope())
		return
	}
	msg := fmt.Sprintf("[%s] %s", fe.Kind, fe.Message)
	if fe.Code != "" {
		msg += fmt.Sprintf(" (code %s)", fe.Code)
	}
	fmt.Fprintln(os.Stderr, paint(colorRed, msg))
}
