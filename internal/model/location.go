package model

// Location is a node in the area tree.  A root location has no parent
// (a city); child locations are neighbourhoods within it.  The pair
// (Name, ParentID) is unique.  DisplayName renders "name" for roots and
// "name, parent" for children when the parent name is known.
type Location struct {
	ID         uint64   // locations.id
	Name       string   // locations.name
	Slug       string   // locations.slug
	ParentID   *uint64  // locations.parent_id, nil for roots
	ParentName string   // joined locations.name of the parent, empty for roots
	Latitude   *float64 // locations.latitude
	Longitude  *float64 // locations.longitude
}

// DisplayName returns the human-readable name including the parent, if any.
func (l Location) DisplayName() string {
	if l.ParentName != "" {
		return l.Name + ", " + l.ParentName
	}
	return l.Name
}
