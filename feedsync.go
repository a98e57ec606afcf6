// Package feedsync exports the used-car listings feed from the central
// database endpoint into S3. One run is one POST to the feed endpoint and
// one overwrite of the fixed export object; scheduling belongs to the host.
package feedsync

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type Syncer struct {
	cfg     Config
	fetcher *Fetcher
	store   Uploader
	logger  *zap.Logger
	metrics *syncMetrics
}

// New wires a Syncer from config. client and logger may be nil; a client
// honoring cfg.HTTPTimeout and a no-op logger are substituted.
func New(cfg Config, client Doer, store Uploader, logger *zap.Logger) *Syncer {
	if client == nil {
		if cfg.HTTPTimeout > 0 {
			client = &http.Client{Timeout: cfg.HTTPTimeout}
		} else {
			client = http.DefaultClient
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Syncer{
		cfg:     cfg,
		fetcher: NewFetcher(client, cfg),
		store:   store,
		logger:  logger,
	}
}

// EnableMetrics registers the run metrics on reg. Only the serve mode has
// a scrape surface; the one-shot and lambda entrypoints skip this.
func (s *Syncer) EnableMetrics(reg prometheus.Registerer) error {
	m, err := newSyncMetrics(reg)
	if err != nil {
		return err
	}
	s.metrics = m
	return nil
}

// Run executes one export: fetch the feed, overwrite the S3 object, report
// where the bytes went. A fetch failure aborts before any upload; nothing
// is retried.
func (s *Syncer) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	log := s.logger.With(zap.String("run_id", uuid.NewString()))

	log.Info("export started", zap.String("url", s.cfg.FeedURL))

	data, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.observe("fetch_error", start, 0)
		log.Error("feed fetch failed", zap.Error(err))
		return Result{}, fmt.Errorf("fetch feed: %w", err)
	}

	if err := s.store.Upload(ctx, s.cfg.Bucket, s.cfg.Key, s.cfg.ContentType, data); err != nil {
		s.observe("upload_error", start, 0)
		log.Error("upload failed",
			zap.String("bucket", s.cfg.Bucket),
			zap.String("key", s.cfg.Key),
			zap.Error(err))
		return Result{}, fmt.Errorf("upload feed: %w", err)
	}

	s.observe("ok", start, len(data))
	log.Info("export finished",
		zap.Int("bytes", len(data)),
		zap.String("bucket", s.cfg.Bucket),
		zap.String("key", s.cfg.Key),
		zap.Duration("duration", time.Since(start)))

	return Result{
		StatusCode: http.StatusOK,
		Body:       fmt.Sprintf("stored %d bytes to s3://%s/%s", len(data), s.cfg.Bucket, s.cfg.Key),
	}, nil
}

func (s *Syncer) observe(status string, start time.Time, size int) {
	if s.metrics == nil {
		return
	}
	s.metrics.runs.WithLabelValues(status).Inc()
	s.metrics.duration.WithLabelValues(status).Observe(time.Since(start).Seconds())
	if status == "ok" {
		s.metrics.payloadBytes.Set(float64(size))
	}
}
