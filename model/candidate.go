package model

import "fmt"

const metersPerMile = 1609.344

// Candidate is one store's offer of a product, as returned by the search
// backend. Immutable after ranking; the session owns the selected copy.
type Candidate struct {
	ID             string   `json:"id" mapstructure:"id"`
	Vendor         *string  `json:"vendor,omitempty" mapstructure:"vendor"`
	ProductName    *string  `json:"product_name,omitempty" mapstructure:"product_name"`
	UnitPrice      *float64 `json:"unit_price,omitempty" mapstructure:"unit_price"`
	UPC            *string  `json:"upc,omitempty" mapstructure:"upc"`
	StoreName      *string  `json:"store_name,omitempty" mapstructure:"store_name"`
	OnHandQuantity *int     `json:"on_hand_quantity,omitempty" mapstructure:"on_hand_quantity"`
	Category       *string  `json:"category,omitempty" mapstructure:"category"`
	GeoLocation    *GeoPoint `json:"geoloc,omitempty" mapstructure:"geoloc"`

	// DistanceMeters is derived from the search ranking info; nil when the
	// requester's location could not be resolved.
	DistanceMeters *float64 `json:"distance_meters,omitempty" mapstructure:"-"`
}

// GeoPoint is a lat/lng pair from the search index.
type GeoPoint struct {
	Lat float64 `json:"lat" mapstructure:"lat"`
	Lng float64 `json:"lng" mapstructure:"lng"`
}

// MaxQuantity returns the orderable upper bound. Missing or non-positive
// on-hand counts as exactly 1.
func (c *Candidate) MaxQuantity() int {
	if c.OnHandQuantity == nil || *c.OnHandQuantity < 1 {
		return 1
	}
	return *c.OnHandQuantity
}

// Price returns the unit price, 0 when absent.
func (c *Candidate) Price() float64 {
	if c.UnitPrice == nil {
		return 0
	}
	return *c.UnitPrice
}

// DistanceMiles formats the distance as miles with one decimal place.
// Returns "" when the distance is unknown.
func (c *Candidate) DistanceMiles() string {
	if c.DistanceMeters == nil {
		return ""
	}
	return fmt.Sprintf("%.1f", *c.DistanceMeters/metersPerMile)
}

func strOr(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}

// DisplayName returns the product name or a placeholder.
func (c *Candidate) DisplayName() string {
	return strOr(c.ProductName, "Product Name Not Available")
}

// DisplayStore returns the store name or "N/A".
func (c *Candidate) DisplayStore() string {
	return strOr(c.StoreName, "N/A")
}
