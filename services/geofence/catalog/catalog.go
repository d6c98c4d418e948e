package catalog

import (
	"fmt"
	"os"

	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/geo"
	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/models"
	"gopkg.in/yaml.v3"
)

// Catalog is an ordered, immutable list of geofence zones. Declaration
// order is significant: overlapping zones are resolved by first match,
// not by nearest center or smallest radius.
type Catalog struct {
	zones []models.Zone
	ids   map[string]struct{}
}

type zonesFile struct {
	Zones []models.Zone `yaml:"zones"`
}

// Load reads a zone catalog from a YAML file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read zones file: %w", err)
	}

	var file zonesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse zones file: %w", err)
	}

	return New(file.Zones)
}

// New builds a catalog from an ordered zone list, validating every zone
func New(zones []models.Zone) (*Catalog, error) {
	if len(zones) == 0 {
		return nil, fmt.Errorf("zone catalog is empty")
	}

	ids := make(map[string]struct{}, len(zones))
	for i, z := range zones {
		if z.ID == "" {
			return nil, fmt.Errorf("zone at index %d has an empty id", i)
		}
		if _, exists := ids[z.ID]; exists {
			return nil, fmt.Errorf("duplicate zone id %q", z.ID)
		}
		if z.RadiusMeters <= 0 {
			return nil, fmt.Errorf("zone %q has non-positive radius %v", z.ID, z.RadiusMeters)
		}
		if err := geo.ValidateCoordinate(z.CenterLatitude, z.CenterLongitude); err != nil {
			return nil, fmt.Errorf("zone %q has an invalid center: %w", z.ID, err)
		}
		ids[z.ID] = struct{}{}
	}

	// Copy so callers can't mutate catalog order after construction
	ordered := make([]models.Zone, len(zones))
	copy(ordered, zones)

	return &Catalog{zones: ordered, ids: ids}, nil
}

// Zones returns the zones in declared order
func (c *Catalog) Zones() []models.Zone {
	zones := make([]models.Zone, len(c.zones))
	copy(zones, c.zones)
	return zones
}

// Len returns the number of zones in the catalog
func (c *Catalog) Len() int {
	return len(c.zones)
}

// Contains reports whether a zone id is part of the catalog
func (c *Catalog) Contains(id string) bool {
	_, ok := c.ids[id]
	return ok
}

// ResolveZone returns the id of the first zone in catalog order whose
// center is within radius of the point, or false if no zone matches.
func (c *Catalog) ResolveZone(latitude, longitude float64) (string, bool) {
	point := geo.Point{Latitude: latitude, Longitude: longitude}
	for _, zone := range c.zones {
		center := geo.Point{Latitude: zone.CenterLatitude, Longitude: zone.CenterLongitude}
		if geo.DistanceMeters(point, center) <= zone.RadiusMeters {
			return zone.ID, true
		}
	}
	return "", false
}
