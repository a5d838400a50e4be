package models

// Place belongs to a City and a User and carries the many-to-many
// association with Amenities. AmenityIDs is the authoritative link list
// while the place is resident; the database strategy mirrors it to the
// place_amenity join table on every Save.
type Place struct {
	Base
	CityID          string  `gorm:"size:60;index;not null" json:"city_id"`
	UserID          string  `gorm:"size:60;index;not null" json:"user_id"`
	Name            string  `gorm:"size:128;not null" json:"name"`
	Description     string  `gorm:"size:1024" json:"description"`
	NumberRooms     int     `gorm:"not null;default:0" json:"number_rooms"`
	NumberBathrooms int     `gorm:"not null;default:0" json:"number_bathrooms"`
	MaxGuest        int     `gorm:"not null;default:0" json:"max_guest"`
	PriceByNight    int     `gorm:"not null;default:0" json:"price_by_night"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`

	AmenityIDs []string   `gorm:"-" json:"amenity_ids"`
	Amenities  []*Amenity `gorm:"many2many:place_amenity" json:"-"`
}

// TableName overrides the table name for Place
func (Place) TableName() string { return "places" }

func (p *Place) Kind() Kind { return KindPlace }

func (p *Place) ToMap(maskSecrets bool) map[string]interface{} {
	m := p.baseMap(KindPlace)
	m["city_id"] = p.CityID
	m["user_id"] = p.UserID
	m["name"] = p.Name
	m["description"] = p.Description
	m["number_rooms"] = p.NumberRooms
	m["number_bathrooms"] = p.NumberBathrooms
	m["max_guest"] = p.MaxGuest
	m["price_by_night"] = p.PriceByNight
	m["latitude"] = p.Latitude
	m["longitude"] = p.Longitude
	ids := make([]string, len(p.AmenityIDs))
	copy(ids, p.AmenityIDs)
	m["amenity_ids"] = ids
	return m
}

// HasAmenity reports whether the amenity is linked to this place.
func (p *Place) HasAmenity(amenityID string) bool {
	for _, id := range p.AmenityIDs {
		if id == amenityID {
			return true
		}
	}
	return false
}

// AddAmenity links an amenity. Reports false when the link already exists,
// so double-linking never produces a duplicate.
func (p *Place) AddAmenity(amenityID string) bool {
	if p.HasAmenity(amenityID) {
		return false
	}
	p.AmenityIDs = append(p.AmenityIDs, amenityID)
	return true
}

// RemoveAmenity unlinks an amenity. Reports false when no link existed.
func (p *Place) RemoveAmenity(amenityID string) bool {
	for i, id := range p.AmenityIDs {
		if id == amenityID {
			p.AmenityIDs = append(p.AmenityIDs[:i], p.AmenityIDs[i+1:]...)
			return true
		}
	}
	return false
}
