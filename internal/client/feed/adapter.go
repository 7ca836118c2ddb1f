package feedclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/errs"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/store"
)

// Adapter fetches the optional remote transaction feed: a single GET of a
// JSON array in the fixture wire shape. It is called once at startup; a
// failure is reported and never retried.
type Adapter struct {
	client *http.Client
	url    string
}

func NewAdapter(client *http.Client, url string) *Adapter {
	if client == nil {
		client = http.DefaultClient
	}
	return &Adapter{client: client, url: url}
}

func (a *Adapter) Fetch(ctx context.Context) ([]store.RawTransaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, nil)
	if err != nil {
		return nil, errs.NewFeedError(err.Error())
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, errs.NewFeedError(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errs.NewFeedError(fmt.Sprintf("feed returned status %d", resp.StatusCode))
	}

	var raw []store.RawTransaction
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errs.NewFeedError("malformed feed payload: " + err.Error())
	}
	return raw, nil
}
