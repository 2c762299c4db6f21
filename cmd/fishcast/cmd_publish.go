package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/fishcast/internal/adapter/kafka"
	"github.com/couchcryptid/fishcast/internal/catalog"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish daily snapshots to Kafka",
	Long: `Fetch the current conditions, rate the catalog for every day of the
horizon, and publish one snapshot per day to the configured Kafka topic.`,
	RunE: runPublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, _ []string) error {
	cfg, logger, metrics, err := newRuntime()
	if err != nil {
		return err
	}
	if !cfg.PublishEnabled {
		return fmt.Errorf("publishing is disabled: set KAFKA_TOPIC or PUBLISH_ENABLED=true")
	}

	bundle := newCoordinator(cfg, logger, metrics).FetchAll(cmd.Context())
	if bundle.Err != "" {
		return fmt.Errorf("refusing to publish fallback conditions: %s", bundle.Err)
	}

	snapshots := kafka.BuildSnapshots(bundle.Days, bundle.Tides, catalog.Spots(), time.Now().UTC())

	publisher := kafka.NewPublisher(cfg, logger, metrics)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}()

	if err := publisher.PublishSnapshots(cmd.Context(), snapshots); err != nil {
		return fmt.Errorf("publish snapshots: %w", err)
	}

	fmt.Printf("✓ published %d day snapshots to %s\n", len(snapshots), cfg.KafkaTopic)
	return nil
}
