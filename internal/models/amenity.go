package models

// Amenity is linked to Places through the place_amenity association.
type Amenity struct {
	Base
	Name string `gorm:"size:128;not null" json:"name"`
}

// TableName overrides the table name for Amenity
func (Amenity) TableName() string { return "amenities" }

func (a *Amenity) Kind() Kind { return KindAmenity }

func (a *Amenity) ToMap(maskSecrets bool) map[string]interface{} {
	m := a.baseMap(KindAmenity)
	m["name"] = a.Name
	return m
}
