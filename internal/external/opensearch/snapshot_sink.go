package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/opensearch-project/opensearch-go"

	"github.com/nhoxwy/pos-availability/internal/domain/pos"
)

var _ pos.SnapshotSink = (*SnapshotSink)(nil)

// SnapshotSink stores availability snapshots in OpenSearch for analytics.
type SnapshotSink struct {
	client *opensearch.Client
	index  string
}

func NewSnapshotSink(ctx context.Context, urls []string, index string) (*SnapshotSink, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}

	cfg := opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
		},
	}
	client, err := opensearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	sink := &SnapshotSink{client: client, index: index}

	if err := sink.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return sink, nil
}

func (s *SnapshotSink) ensureIndex(ctx context.Context) error {
	// HEAD /{index}
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil // already exists
	}

	body := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"snapshot_id":       map[string]any{"type": "keyword"},
				"config_id":         map[string]any{"type": "long"},
				"product_id":        map[string]any{"type": "long"},
				"is_storable":       map[string]any{"type": "boolean"},
				"pos_available_qty": map[string]any{"type": "double"},
				"loaded_at":         map[string]any{"type": "date"},
			},
		},
		"settings": map[string]any{
			"number_of_replicas": 0, // dev-friendly; change in prod
		},
	}
	buf, _ := json.Marshal(body)
	cr, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader(buf)),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

// one product line of a snapshot as stored in OpenSearch
type osSnapshotDoc struct {
	SnapshotID      string    `json:"snapshot_id"`
	ConfigID        int64     `json:"config_id"`
	ProductID       int64     `json:"product_id"`
	IsStorable      bool      `json:"is_storable"`
	PosAvailableQty *float64  `json:"pos_available_qty,omitempty"`
	LoadedAt        time.Time `json:"loaded_at"`
}

// CreateAvailabilitySnapshot indexes one document per product of the load.
func (s *SnapshotSink) CreateAvailabilitySnapshot(ctx context.Context, snapshot pos.AvailabilitySnapshot) error {
	for _, p := range snapshot.Products {
		doc := osSnapshotDoc{
			SnapshotID:      snapshot.SnapshotID,
			ConfigID:        snapshot.ConfigID,
			ProductID:       p.ID,
			IsStorable:      p.IsStorable,
			PosAvailableQty: p.PosAvailableQty,
			LoadedAt:        snapshot.LoadedAt.UTC(),
		}
		payload, _ := json.Marshal(doc)

		res, err := s.client.Index(
			s.index,
			bytes.NewReader(payload),
			s.client.Index.WithContext(ctx),
		)
		if err != nil {
			return fmt.Errorf("index snapshot doc: %w", err)
		}
		if res.IsError() {
			res.Body.Close()
			return fmt.Errorf("index snapshot doc error: %s", res.String())
		}
		res.Body.Close()
	}
	return nil
}
