package balans

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hisobchi/hisobchi/internal/ledger"
)

const snapshotKey = "balans:snapshot"

// ErrNoSnapshot is returned when no snapshot has been written yet.
var ErrNoSnapshot = errors.New("balans: no snapshot")

// Snapshot is a balance report captured at a point in time by the background
// refresh job. The live report endpoint never serves it; it exists for
// dashboards that tolerate staleness.
type Snapshot struct {
	Summary    ledger.BalanceSummary `json:"summary"`
	CapturedAt time.Time             `json:"capturedAt"`
}

// SnapshotStore persists balance snapshots in Redis.
type SnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotStore builds a SnapshotStore.
func NewSnapshotStore(client *redis.Client, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{client: client, ttl: ttl}
}

// Save writes the snapshot, replacing any previous one.
func (s *SnapshotStore) Save(ctx context.Context, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, snapshotKey, data, s.ttl).Err()
}

// Load returns the most recent snapshot.
func (s *SnapshotStore) Load(ctx context.Context) (*Snapshot, error) {
	payload, err := s.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
