package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/carxpresspanabo/carxpress-rental/pkg/config"
	"github.com/carxpresspanabo/carxpress-rental/pkg/logger"
	"github.com/carxpresspanabo/carxpress-rental/pkg/resilience"
	"go.uber.org/zap"
)

const mirrorTimeout = 10 * time.Second

// FirestoreMirror decorates a Persister with a best-effort off-site copy
// of every committed snapshot, written into a single Firestore document.
// Mirror writes run asynchronously behind a circuit breaker; a dead
// network can never fail or stall a local commit.
type FirestoreMirror struct {
	inner      Persister
	client     *firestore.Client
	collection string
	document   string
	breaker    *resilience.CircuitBreaker
}

// NewFirestoreMirror connects to Firestore and wraps inner.
func NewFirestoreMirror(ctx context.Context, inner Persister, cfg config.FirebaseConfig) (*FirestoreMirror, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	breaker := resilience.NewCircuitBreaker(resilience.BuildSettings(
		"firestore_mirror",
		cfg.BreakerInterval,
		cfg.BreakerTimeout,
		cfg.BreakerFailureThreshold,
		1,
	))

	return &FirestoreMirror{
		inner:      inner,
		client:     client,
		collection: cfg.Collection,
		document:   cfg.Document,
		breaker:    breaker,
	}, nil
}

// Load delegates to the local persister. The mirror is write-only; the
// local snapshot stays authoritative.
func (m *FirestoreMirror) Load(ctx context.Context) (*Snapshot, error) {
	return m.inner.Load(ctx)
}

// Commit commits locally, then mirrors in the background.
func (m *FirestoreMirror) Commit(ctx context.Context, snap *Snapshot) error {
	if err := m.inner.Commit(ctx, snap); err != nil {
		return err
	}

	copied := snap.Clone()
	go m.mirror(copied)
	return nil
}

func (m *FirestoreMirror) mirror(snap *Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
	defer cancel()

	payload, err := json.Marshal(snap)
	if err != nil {
		logger.Error("failed to encode snapshot for mirror", zap.Error(err))
		return
	}

	_, err = m.breaker.Execute(ctx, func() (interface{}, error) {
		return m.client.Collection(m.collection).Doc(m.document).Set(ctx, map[string]interface{}{
			"payload":    string(payload),
			"updated_at": time.Now().UTC(),
		})
	})
	if err != nil {
		logger.Warn("snapshot mirror write failed",
			zap.String("collection", m.collection),
			zap.String("document", m.document),
			zap.Error(err),
		)
	}
}

// Close releases the Firestore client.
func (m *FirestoreMirror) Close() error {
	return m.client.Close()
}
