package service

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"stepbot/events"
	"stepbot/ingest"
	"stepbot/models"
)

// SnapshotService memoizes one computed aggregate view behind a TTL.
// A single mutex serializes refreshes: concurrent callers during an
// in-flight refresh block and then receive the freshly built snapshot
// (block-until-fresh policy). The fetch-and-aggregate sequence never
// runs twice concurrently.
type SnapshotService struct {
	source   ingest.RowSource
	ttl      time.Duration
	eventBus *events.Bus
	now      func() time.Time

	mu        sync.Mutex
	snapshot  *models.Snapshot
	expiresAt time.Time
}

// NewSnapshotService creates a snapshot cache over the given row
// source. The event bus may be nil when nobody listens for refreshes.
func NewSnapshotService(source ingest.RowSource, ttl time.Duration, eventBus *events.Bus) *SnapshotService {
	return &SnapshotService{
		source:   source,
		ttl:      ttl,
		eventBus: eventBus,
		now:      time.Now,
	}
}

// WithClock overrides the time source, letting tests drive expiry
// deterministically instead of sleeping.
func (s *SnapshotService) WithClock(now func() time.Time) *SnapshotService {
	s.now = now
	return s
}

// GetSnapshot returns the current snapshot, rebuilding it when forced,
// missing, or expired. A row source failure propagates to the caller
// and leaves any previous snapshot untouched, so non-forcing callers
// can keep reading it. Context cancellation aborts the refresh the
// same way.
func (s *SnapshotService) GetSnapshot(ctx context.Context, force bool) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !force && s.snapshot != nil && now.Before(s.expiresAt) {
		return s.snapshot, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot, err := s.buildSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	s.snapshot = snapshot
	s.expiresAt = now.Add(s.ttl)

	log.WithFields(log.Fields{
		"entries": len(snapshot.Entries),
		"teams":   len(snapshot.TeamTotals),
		"days":    len(snapshot.DailyTotals),
		"forced":  force,
	}).Info("Snapshot refreshed")

	if s.eventBus != nil {
		s.eventBus.Emit(ctx, events.SnapshotRefreshedEvent{
			FetchedAt:  snapshot.FetchedAt,
			EntryCount: len(snapshot.Entries),
			TeamCount:  len(snapshot.TeamTotals),
			Forced:     force,
		})
	}

	return snapshot, nil
}

// buildSnapshot runs the full fetch-validate-aggregate pipeline into a
// local value; the stored snapshot is swapped only after it completes,
// so readers never observe a partially built one.
func (s *SnapshotService) buildSnapshot(ctx context.Context) (*models.Snapshot, error) {
	rows, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	entries := CollectValidEntries(rows)
	return &models.Snapshot{
		Entries:     entries,
		TeamTotals:  AggregateByTeam(entries),
		DailyTotals: BuildDailyTotals(entries),
		FetchedAt:   s.now(),
	}, nil
}
