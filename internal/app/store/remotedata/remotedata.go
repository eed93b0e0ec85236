// internal/app/store/remotedata/remotedata.go
package remotedata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/pasarunsri/pasarhub/internal/app/system/timeouts"
	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// Gateway is the HTTP client side of the persistence contract: the whole
// document travels on every call, GET to load and PUT to save. Any non-200
// response is an error; the caller decides whether to fall back to seed
// data (load) or drop the write and tell the user (save).
type Gateway struct {
	url    string
	client *http.Client
	log    *zap.Logger
}

// New creates a gateway for the data endpoint at url.
func New(url string, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{
		url: url,
		client: &http.Client{
			// Backstop behind the per-call context deadlines; Load is
			// the longer of the two operations' budgets.
			Timeout: timeouts.Load(),
		},
		log: log,
	}
}

// Load fetches the current document.
func (g *Gateway) Load(ctx context.Context) (models.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url, nil)
	if err != nil {
		return models.Document{}, fmt.Errorf("build load request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return models.Document{}, fmt.Errorf("load data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		drain(resp.Body)
		return models.Document{}, fmt.Errorf("load data: unexpected status %d", resp.StatusCode)
	}

	var doc models.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return models.Document{}, fmt.Errorf("decode data: %w", err)
	}
	doc.Normalize()
	return doc, nil
}

// Save writes the whole document. Concurrent savers are last-write-wins by
// contract; there is no conditional update.
func (g *Gateway) Save(ctx context.Context, doc models.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode data: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, g.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build save request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("save data: %w", err)
	}
	defer resp.Body.Close()
	drain(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("save data: unexpected status %d", resp.StatusCode)
	}

	g.log.Debug("data saved",
		zap.Int("users", len(doc.Users)),
		zap.Int("listings", len(doc.Listings)))
	return nil
}

func drain(r io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r, 1<<20))
}
