package model

// PropertyFeature is an amenity tag (pool, garage, ...) linked to
// properties through the property_feature_links table.  Name is unique.
type PropertyFeature struct {
	ID   uint64 // property_features.id
	Name string // property_features.name
	Icon string // property_features.icon
}
