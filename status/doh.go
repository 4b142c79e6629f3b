package status

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultEndpoint is the DoH resolver queried when no endpoint is configured.
const DefaultEndpoint = "https://dns.google/resolve"

// Resolver issues one DNS query for a name and record type mnemonic.
// Implementations return an error only for transport-level failures;
// an empty answer section is a successful response.
type Resolver interface {
	Query(ctx context.Context, name string, rtype RecordType) (*Response, error)
}

// DoHResolver resolves queries against a JSON DNS-over-HTTPS endpoint.
type DoHResolver struct {
	Endpoint string
	Client   *http.Client
}

// NewDoHResolver creates a resolver for the given endpoint. An empty
// endpoint falls back to DefaultEndpoint.
func NewDoHResolver(endpoint string) *DoHResolver {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &DoHResolver{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *DoHResolver) Query(ctx context.Context, name string, rtype RecordType) (*Response, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("type", string(rtype))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/dns-json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("doh query for %s %s returned status %d", rtype, name, resp.StatusCode)
	}

	var body Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("doh query for %s %s: decoding response: %w", rtype, name, err)
	}

	return &body, nil
}
