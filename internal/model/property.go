package model

import "time"

// Property status values.
const (
	PropertyAvailable = "available"
	PropertySold      = "sold"
	PropertyPending   = "pending"
	PropertyRented    = "rented"
)

// Listing type values.
const (
	ListingSale = "sale"
	ListingRent = "rent"
)

// Property represents a single listing in the catalog.  A property belongs
// to one PropertyType, one Location and one Agent, carries a many-to-many
// set of features and owns its images and inquiries.  Only rows with
// IsPublished=true are visible to public listing and search queries.
//
// Fields:
//  Slug          – unique URL identifier.
//  Price         – asking price; PricePerSqft is optional.
//  Status        – available | sold | pending | rented.
//  ListingType   – sale | rent.
//  IsFeatured    – included in the home page featured strip.
//  IsPublished   – visible to non-administrative callers.
type Property struct {
	ID             uint64    // properties.id
	Title          string    // properties.title
	Slug           string    // properties.slug
	Description    string    // properties.description
	TypeID         uint64    // properties.type_id
	LocationID     uint64    // properties.location_id
	AgentID        uint64    // properties.agent_id
	ListingType    string    // properties.listing_type
	Status         string    // properties.status
	Price          float64   // properties.price
	PricePerSqft   *float64  // properties.price_per_sqft
	Address        string    // properties.address
	Latitude       *float64  // properties.latitude
	Longitude      *float64  // properties.longitude
	Bedrooms       uint32    // properties.bedrooms
	Bathrooms      float64   // properties.bathrooms (halves allowed, e.g. 2.5)
	AreaSqft       uint32    // properties.area_sqft
	LotSize        *uint32   // properties.lot_size
	YearBuilt      *uint32   // properties.year_built
	ParkingSpaces  uint32    // properties.parking_spaces
	MetaTitle      string    // properties.meta_title
	MetaDescription string   // properties.meta_description
	IsFeatured     bool      // properties.is_featured
	IsPublished    bool      // properties.is_published
	CreatedAt      time.Time // properties.created_at
	UpdatedAt      time.Time // properties.updated_at
}
