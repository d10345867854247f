package model

// PropertyImage is one gallery entry of a property.  Image holds the opaque
// asset reference handed out by the asset storage provider.  At most one
// image per property may have IsPrimary=true; the repository enforces this
// by clearing prior flags inside the same transaction that sets a new one.
// Galleries are ordered by the Order column ascending.
type PropertyImage struct {
	ID         uint64 // property_images.id
	PropertyID uint64 // property_images.property_id
	Image      string // property_images.image
	AltText    string // property_images.alt_text
	IsPrimary  bool   // property_images.is_primary
	Order      uint32 // property_images.sort_order
}
