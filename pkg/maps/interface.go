package maps

import "context"

type MapsProvider interface {
	Geocode(ctx context.Context, address string) (*GeocodeResponse, error)
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type GeocodeResult struct {
	PlaceID     string   `json:"place_id"`
	Address     string   `json:"address"`
	Coordinates Location `json:"coordinates"`
	Types       []string `json:"types"`
}

type GeocodeResponse struct {
	Results []GeocodeResult `json:"results"`
}
