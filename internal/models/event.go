package models

// EventListing is one bookable event in the catalog. The catalog is static
// configuration: listings are never created or mutated at runtime.
type EventListing struct {
	ID       int    `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Date     string `json:"date" yaml:"date"`
	Time     string `json:"time" yaml:"time"`
	Location string `json:"location" yaml:"location"`
	Spots    string `json:"spots" yaml:"spots"`
	Price    string `json:"price" yaml:"price"`
	Featured bool   `json:"featured" yaml:"featured"`
}
