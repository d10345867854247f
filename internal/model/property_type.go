package model

// PropertyType categorises listings (villa, apartment, office, ...).
// Both Name and Slug are unique across the table.
type PropertyType struct {
	ID          uint64 // property_types.id
	Name        string // property_types.name
	Slug        string // property_types.slug
	Description string // property_types.description
	Icon        string // property_types.icon
}
