// Package catalog holds the static event catalog: one process-wide immutable
// list of bookable events loaded once at startup and shared by every consumer.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oceangram11/bartlett-connect-hub-1/internal/models"
)

// Catalog is an ordered, immutable list of event listings.
type Catalog struct {
	events []models.EventListing
	byID   map[int]models.EventListing
}

// New builds a catalog from an ordered list of listings.
func New(events []models.EventListing) *Catalog {
	c := &Catalog{
		events: make([]models.EventListing, len(events)),
		byID:   make(map[int]models.EventListing, len(events)),
	}
	copy(c.events, events)
	for _, e := range c.events {
		c.byID[e.ID] = e
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New([]models.EventListing{
		{
			ID:       1,
			Title:    "London VIP Meet & Greet",
			Date:     "May 15, 2025",
			Time:     "6:00 PM - 9:00 PM",
			Location: "The Savoy, London",
			Spots:    "10 spots left",
			Price:    "£299",
			Featured: true,
		},
		{
			ID:       2,
			Title:    "Manchester Exclusive Dinner",
			Date:     "June 10, 2025",
			Time:     "7:00 PM - 10:30 PM",
			Location: "The Ivy, Manchester",
			Spots:    "5 spots left",
			Price:    "£399",
		},
		{
			ID:       3,
			Title:    "New York CEO Breakfast",
			Date:     "July 5, 2025",
			Time:     "8:30 AM - 11:00 AM",
			Location: "The Plaza Hotel, NYC",
			Spots:    "15 spots left",
			Price:    "$499",
		},
		{
			ID:       4,
			Title:    "Dubai Business Masterclass",
			Date:     "August 25, 2025",
			Time:     "10:00 AM - 2:00 PM",
			Location: "Burj Al Arab, Dubai",
			Spots:    "8 spots left",
			Price:    "$599",
		},
		{
			ID:       5,
			Title:    "Paris Networking Evening",
			Date:     "September 12, 2025",
			Time:     "7:00 PM - 10:00 PM",
			Location: "Four Seasons Hotel George V, Paris",
			Spots:    "12 spots left",
			Price:    "€349",
		},
		{
			ID:       6,
			Title:    "Berlin Entrepreneurship Workshop",
			Date:     "October 8, 2025",
			Time:     "9:00 AM - 4:00 PM",
			Location: "Hotel Adlon Kempinski, Berlin",
			Spots:    "20 spots left",
			Price:    "€299",
		},
	})
}

// Load reads a catalog from a YAML file. An empty path returns the built-in
// default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var file struct {
		Events []models.EventListing `yaml:"events"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(file.Events) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no events", path)
	}
	return New(file.Events), nil
}

// Events returns the full catalog in original order.
func (c *Catalog) Events() []models.EventListing {
	out := make([]models.EventListing, len(c.events))
	copy(out, c.events)
	return out
}

// Len returns the number of listings.
func (c *Catalog) Len() int { return len(c.events) }

// ByID looks up a listing by its identifier.
func (c *Catalog) ByID(id int) (models.EventListing, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// Filter returns the catalog's display subset. With showAll the full catalog
// is returned; otherwise the subset is every featured event unioned with the
// first three events, duplicates collapsed, original order preserved.
func (c *Catalog) Filter(showAll bool) []models.EventListing {
	if showAll {
		return c.Events()
	}
	var out []models.EventListing
	for i, e := range c.events {
		if e.Featured || i < 3 {
			out = append(out, e)
		}
	}
	return out
}
