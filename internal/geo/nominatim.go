package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"treasure-hunt/internal/config"
)

// NominatimClient geocodes addresses against a nominatim search endpoint.
type NominatimClient struct {
	baseURL   string
	language  string
	userAgent string
	client    *http.Client
}

func NewNominatim(cfg config.Config) *NominatimClient {
	return &NominatimClient{
		baseURL:   cfg.GeocoderURL,
		language:  cfg.GeocoderLanguage,
		userAgent: cfg.GeocoderUserAgent,
		client: &http.Client{
			Timeout: time.Duration(cfg.GeocoderTimeoutSeconds) * time.Second,
		},
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve looks up an address. Every failure mode, including transport
// errors, collapses to ErrUnresolved: the contract is resolve-or-fail.
func (n *NominatimClient) Resolve(ctx context.Context, address string) (Coordinates, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")
	if n.language != "" {
		query.Set("accept-language", n.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return Coordinates{}, ErrUnresolved
	}
	if n.userAgent != "" {
		req.Header.Set("User-Agent", n.userAgent)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return Coordinates{}, ErrUnresolved
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, ErrUnresolved
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil || len(results) == 0 {
		return Coordinates{}, ErrUnresolved
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return Coordinates{}, ErrUnresolved
	}
	return Coordinates{Latitude: lat, Longitude: lon}, nil
}
