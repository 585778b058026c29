package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is the weather collaborator the skills layer talks to.
type Client interface {
	// Current fetches present conditions for a city.
	Current(ctx context.Context, city string) (*Report, error)
	// Forecast fetches conditions projected over the given window. Exactly
	// one of hours or days is used; days wins when positive.
	Forecast(ctx context.Context, city string, hours, days int) (*Report, error)
}

// Report mirrors the provider's JSON response shape.
type Report struct {
	Location struct {
		Name    string `json:"name"`
		Region  string `json:"region"`
		Country string `json:"country"`
	} `json:"location"`
	Current struct {
		TempC      float64 `json:"temp_c"`
		IsDay      int     `json:"is_day"`
		WindKPH    float64 `json:"wind_kph"`
		WindDir    string  `json:"wind_dir"`
		Humidity   int     `json:"humidity"`
		FeelsLikeC float64 `json:"feelslike_c"`
		Condition  struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Day struct {
				MaxTempC   float64 `json:"maxtemp_c"`
				MinTempC   float64 `json:"mintemp_c"`
				AvgTempC   float64 `json:"avgtemp_c"`
				MaxWindKPH float64 `json:"maxwind_kph"`
				Condition  struct {
					Text string `json:"text"`
				} `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

// Day reports whether the current conditions are daytime.
func (r *Report) Day() bool {
	return r.Current.IsDay != 0
}

// ForecastDay returns the first forecasted day, if any.
func (r *Report) ForecastDay() (maxC, minC, avgC, maxWindKPH float64, condition string, ok bool) {
	if len(r.Forecast.ForecastDay) == 0 {
		return 0, 0, 0, 0, "", false
	}
	d := r.Forecast.ForecastDay[0].Day
	return d.MaxTempC, d.MinTempC, d.AvgTempC, d.MaxWindKPH, d.Condition.Text, true
}

const DefaultBaseURL = "https://api.weatherapi.com/v1"

// HTTPClient talks to a WeatherAPI-compatible JSON endpoint.
type HTTPClient struct {
	baseURL string
	apiKey  string
	hc      *http.Client
}

type HTTPOption func(*HTTPClient)

// WithBaseURL points the client at a different endpoint (tests, proxies).
func WithBaseURL(base string) HTTPOption {
	return func(c *HTTPClient) {
		c.baseURL = base
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(c *HTTPClient) {
		c.hc = hc
	}
}

func NewHTTPClient(apiKey string, opts ...HTTPOption) *HTTPClient {
	c := &HTTPClient{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		hc:      &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) Current(ctx context.Context, city string) (*Report, error) {
	params := url.Values{}
	params.Set("q", city)
	return c.get(ctx, "/current.json", params)
}

func (c *HTTPClient) Forecast(ctx context.Context, city string, hours, days int) (*Report, error) {
	params := url.Values{}
	params.Set("q", city)
	if days > 0 {
		params.Set("days", fmt.Sprintf("%d", days))
	} else {
		params.Set("days", "1")
		if hours > 0 {
			params.Set("hour", fmt.Sprintf("%d", hours))
		}
	}
	return c.get(ctx, "/forecast.json", params)
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) (*Report, error) {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building weather request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading weather response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather provider returned %d: %s", resp.StatusCode, body)
	}

	var report Report
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("decoding weather response: %w", err)
	}
	return &report, nil
}
