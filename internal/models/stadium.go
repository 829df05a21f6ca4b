package models

import (
	"encoding/json"
	"errors"
)

// DefaultRadius is the acceptance radius applied when a stadium record does not carry one.
const DefaultRadius = 150.0

// ErrIncompleteCoordinates is returned when a coordinates object lacks lat or lng.
var ErrIncompleteCoordinates = errors.New("models: coordinates need both lat and lng")

// Coordinates is the geographic position of a stadium.
type Coordinates struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// UnmarshalJSON rejects coordinates with a missing component instead of defaulting it to 0.
func (c *Coordinates) UnmarshalJSON(data []byte) error {
	var raw struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Lat == nil || raw.Lng == nil {
		return ErrIncompleteCoordinates
	}
	c.Lat, c.Lng = *raw.Lat, *raw.Lng
	return nil
}

// Stadium represents one venue of the catalog exactly as it is stored in the data source.
// Hints are kept as raw JSON so the client receives them in whatever shape the dataset uses.
// A record decoded from JSON keeps its source bytes and encodes back to them,
// so fields the service does not model survive a catalog listing.
type Stadium struct {
	ID          string          `json:"id" validate:"required"`
	Team        string          `json:"team" validate:"required"`
	Sport       string          `json:"sport" validate:"required"`
	League      string          `json:"league" validate:"required"`
	Coordinates *Coordinates    `json:"coordinates" validate:"required"`
	Hints       json.RawMessage `json:"hints,omitempty"`
	Name        string          `json:"name" validate:"required"`
	Radius      *float64        `json:"radius,omitempty"`

	source json.RawMessage
}

type plainStadium Stadium

// UnmarshalJSON decodes the record and remembers its source bytes.
func (s *Stadium) UnmarshalJSON(data []byte) error {
	var p plainStadium
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Stadium(p)
	s.source = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON returns the source bytes when the record was decoded from JSON.
func (s Stadium) MarshalJSON() ([]byte, error) {
	if len(s.source) > 0 {
		return s.source, nil
	}
	return json.Marshal(plainStadium(s))
}

// Catalog is the full stadium dataset.
type Catalog struct {
	Stadiums []Stadium `json:"stadiums" validate:"dive"`

	source json.RawMessage
}

type plainCatalog Catalog

// UnmarshalJSON decodes the catalog and remembers the source document.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	var p plainCatalog
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Catalog(p)
	c.source = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON returns the source document when the catalog was decoded from JSON.
func (c Catalog) MarshalJSON() ([]byte, error) {
	if len(c.source) > 0 {
		return c.source, nil
	}
	return json.Marshal(plainCatalog(c))
}

// StadiumProjection is the fixed response shape for a randomly selected stadium.
type StadiumProjection struct {
	ID          string          `json:"id"`
	Team        string          `json:"team"`
	Sport       string          `json:"sport"`
	League      string          `json:"league"`
	Coordinates Coordinates     `json:"coordinates"`
	Hints       json.RawMessage `json:"hints"`
	Name        string          `json:"name"`
	Radius      float64         `json:"radius"`
}

// Project converts a stored record into its response shape, defaulting the radius.
func (s Stadium) Project() StadiumProjection {
	radius := DefaultRadius
	if s.Radius != nil {
		radius = *s.Radius
	}
	hints := s.Hints
	if len(hints) == 0 {
		hints = json.RawMessage("null")
	}
	var coords Coordinates
	if s.Coordinates != nil {
		coords = *s.Coordinates
	}
	return StadiumProjection{
		ID:          s.ID,
		Team:        s.Team,
		Sport:       s.Sport,
		League:      s.League,
		Coordinates: coords,
		Hints:       hints,
		Name:        s.Name,
		Radius:      radius,
	}
}
