// Package kafka publishes daily condition snapshots for downstream
// consumers (alerting, archival, dashboards) that want ratings without
// calling the HTTP API.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/fishcast/internal/config"
	"github.com/couchcryptid/fishcast/internal/domain"
	"github.com/couchcryptid/fishcast/internal/observability"
	"github.com/couchcryptid/fishcast/internal/scoring"
	kafkago "github.com/segmentio/kafka-go"
)

// Snapshot is one day's published record: the day's conditions, its tide
// events, and the full catalog rating run.
type Snapshot struct {
	Date        string             `json:"date"`
	Day         domain.DayRecord   `json:"day"`
	Tides       []domain.TideEvent `json:"tides"`
	Results     []scoring.Result   `json:"results"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// BuildSnapshots assembles one snapshot per forecast day, rating the full
// catalog against each day with the "all" species expansion.
func BuildSnapshots(days []domain.DayRecord, tides domain.TideSchedule, spots []domain.Spot, generatedAt time.Time) []Snapshot {
	snapshots := make([]Snapshot, 0, len(days))
	for _, day := range days {
		cond := domain.Conditions(day, tides)
		snapshots = append(snapshots, Snapshot{
			Date:        day.Date,
			Day:         day,
			Tides:       cond.Tides,
			Results:     scoring.ScoreCatalog(spots, cond, scoring.SpeciesAll),
			GeneratedAt: generatedAt,
		})
	}
	return snapshots
}

// Publisher produces snapshot messages to a Kafka topic.
type Publisher struct {
	writer  *kafkago.Writer
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewPublisher creates a Kafka producer for the configured snapshot topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger, metrics: metrics}
}

// PublishSnapshots serializes and publishes the snapshots in a single
// WriteMessages call so a horizon lands atomically or not at all.
func (p *Publisher) PublishSnapshots(ctx context.Context, snapshots []Snapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(snapshots))
	for i := range snapshots {
		msg, err := serializeSnapshot(snapshots[i])
		if err != nil {
			p.metrics.PublishErrors.Inc()
			return err
		}
		msgs[i] = msg
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.metrics.PublishErrors.Inc()
		return err
	}

	p.metrics.SnapshotsPublished.Add(float64(len(snapshots)))
	p.logger.InfoContext(ctx, "published snapshots",
		"count", len(snapshots),
		"first_date", snapshots[0].Date)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeSnapshot marshals a Snapshot into a Kafka message keyed by
// date, so a topic compacted on key retains the latest run per day.
func serializeSnapshot(s Snapshot) (kafkago.Message, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize snapshot: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(s.Date),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "date", Value: []byte(s.Date)},
			{Key: "generated_at", Value: []byte(s.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}
