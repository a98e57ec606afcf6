package main

import (
	"fmt"
	"os"

	feedsync "github.com/Boza-Analytics/Central-Database-of-used-cars---export-to-S3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "feedsync",
	Short: "Export the used-car listings feed to S3",
	Long: `feedsync pulls the listings XML from the central database endpoint and
overwrites the export object in S3. Scheduling is left to the host (cron,
systemd timers, EventBridge); each run is one export.`,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Perform one export and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		syncer, logger, _, err := buildSyncer()
		if err != nil {
			return err
		}
		defer logger.Sync()

		res, err := syncer.Run(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(res.Body)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the export over HTTP (POST /sync)",
	RunE: func(cmd *cobra.Command, args []string) error {
		syncer, logger, cfg, err := buildSyncer()
		if err != nil {
			return err
		}
		defer logger.Sync()

		reg := prometheus.NewRegistry()
		if err := syncer.EnableMetrics(reg); err != nil {
			return err
		}

		app := feedsync.NewServer(syncer, reg)
		logger.Info("listening", zap.String("addr", cfg.ListenAddr))
		return app.Listen(cfg.ListenAddr)
	},
}

func buildSyncer() (*feedsync.Syncer, *zap.Logger, feedsync.Config, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, nil, feedsync.Config{}, err
	}

	cfg := feedsync.LoadConfig()

	store, err := feedsync.NewS3Uploader()
	if err != nil {
		return nil, nil, cfg, err
	}

	return feedsync.New(cfg, nil, store, logger), logger, cfg, nil
}

func init() {
	rootCmd.AddCommand(runCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
