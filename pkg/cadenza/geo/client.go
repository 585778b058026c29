package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client resolves the machine's current position to a street address.
type Client interface {
	Locate(ctx context.Context) (*Location, error)
}

// Location is a reverse-geocoded position. Address holds the provider's
// named address parts (road, suburb, city, state, postcode, country, ...).
type Location struct {
	Lat         float64
	Lon         float64
	DisplayName string
	Address     map[string]string
}

// Field returns the named address part, or the full display name when name
// is empty. Unknown parts yield an empty string.
func (l *Location) Field(name string) string {
	if name == "" {
		return l.DisplayName
	}
	return l.Address[name]
}

const (
	DefaultIPLookupURL = "http://ip-api.com/json"
	DefaultReverseURL  = "https://nominatim.openstreetmap.org/reverse"
)

// HTTPClient locates via an IP-geolocation endpoint and reverse-geocodes the
// coordinates against an OSM Nominatim endpoint.
type HTTPClient struct {
	ipLookupURL string
	reverseURL  string
	userAgent   string
	hc          *http.Client
}

type HTTPOption func(*HTTPClient)

func WithIPLookupURL(u string) HTTPOption {
	return func(c *HTTPClient) {
		c.ipLookupURL = u
	}
}

func WithReverseURL(u string) HTTPOption {
	return func(c *HTTPClient) {
		c.reverseURL = u
	}
}

func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(c *HTTPClient) {
		c.hc = hc
	}
}

func NewHTTPClient(opts ...HTTPOption) *HTTPClient {
	c := &HTTPClient{
		ipLookupURL: DefaultIPLookupURL,
		reverseURL:  DefaultReverseURL,
		userAgent:   "cadenza-assistant",
		hc:          &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type ipLookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type reverseResponse struct {
	DisplayName string            `json:"display_name"`
	Address     map[string]string `json:"address"`
}

func (c *HTTPClient) Locate(ctx context.Context) (*Location, error) {
	var ip ipLookupResponse
	if err := c.getJSON(ctx, c.ipLookupURL, &ip); err != nil {
		return nil, fmt.Errorf("ip geolocation: %w", err)
	}
	if ip.Status != "" && ip.Status != "success" {
		return nil, fmt.Errorf("ip geolocation refused: %s", ip.Message)
	}

	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("lat", fmt.Sprintf("%f", ip.Lat))
	params.Set("lon", fmt.Sprintf("%f", ip.Lon))

	var rev reverseResponse
	if err := c.getJSON(ctx, c.reverseURL+"?"+params.Encode(), &rev); err != nil {
		return nil, fmt.Errorf("reverse geocoding: %w", err)
	}

	return &Location{
		Lat:         ip.Lat,
		Lon:         ip.Lon,
		DisplayName: rev.DisplayName,
		Address:     rev.Address,
	}, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	// Nominatim requires an identifying agent.
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}
	return json.Unmarshal(body, out)
}
