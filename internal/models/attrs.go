package models

// MutableFields is the allow-list of client-writable attributes per kind,
// applied field by field on update. Identity, timestamps and foreign keys
// are immutable after creation; User.email is fixed at signup. Keys outside
// the list are silently ignored.
var MutableFields = map[Kind][]string{
	KindState:   {"name"},
	KindCity:    {"name"},
	KindAmenity: {"name"},
	KindUser:    {"password", "first_name", "last_name"},
	KindPlace: {
		"name", "description", "number_rooms", "number_bathrooms",
		"max_guest", "price_by_night", "latitude", "longitude",
	},
	KindReview: {"text"},
}

// creatableFields additionally admits the foreign keys, credentials and
// association lists that may only be supplied at construction time.
var creatableFields = map[Kind][]string{
	KindState:   {"name"},
	KindCity:    {"name", "state_id"},
	KindAmenity: {"name"},
	KindUser:    {"email", "password", "first_name", "last_name"},
	KindPlace: {
		"city_id", "user_id", "name", "description", "number_rooms",
		"number_bathrooms", "max_guest", "price_by_night", "latitude",
		"longitude", "amenity_ids",
	},
	KindReview: {"text", "place_id", "user_id"},
}

// New constructs an entity of the given kind from a partial attribute map.
// Supplied id/created_at/updated_at override the generated defaults, the
// __class__ discriminator and unknown keys are ignored. Returns nil for an
// unknown kind.
func New(kind Kind, attrs map[string]interface{}) Entity {
	var e Entity
	switch kind {
	case KindState:
		e = &State{Base: NewBase()}
	case KindCity:
		e = &City{Base: NewBase()}
	case KindAmenity:
		e = &Amenity{Base: NewBase()}
	case KindUser:
		e = &User{Base: NewBase()}
	case KindPlace:
		e = &Place{Base: NewBase()}
	case KindReview:
		e = &Review{Base: NewBase()}
	default:
		return nil
	}

	for _, key := range creatableFields[kind] {
		if v, ok := attrs[key]; ok {
			setField(e, key, v)
		}
	}
	e.base().applyBase(attrs)

	return e
}

// Apply sets the allow-listed mutable fields from attrs onto e and
// refreshes UpdatedAt.
func Apply(e Entity, attrs map[string]interface{}) {
	for _, key := range MutableFields[e.Kind()] {
		if v, ok := attrs[key]; ok {
			setField(e, key, v)
		}
	}
	e.Touch()
}

func setField(e Entity, key string, value interface{}) {
	switch t := e.(type) {
	case *State:
		if key == "name" {
			setString(&t.Name, value)
		}
	case *City:
		switch key {
		case "name":
			setString(&t.Name, value)
		case "state_id":
			setString(&t.StateID, value)
		}
	case *Amenity:
		if key == "name" {
			setString(&t.Name, value)
		}
	case *User:
		switch key {
		case "email":
			setString(&t.Email, value)
		case "password":
			setString(&t.Password, value)
		case "first_name":
			setString(&t.FirstName, value)
		case "last_name":
			setString(&t.LastName, value)
		}
	case *Place:
		switch key {
		case "city_id":
			setString(&t.CityID, value)
		case "user_id":
			setString(&t.UserID, value)
		case "name":
			setString(&t.Name, value)
		case "description":
			setString(&t.Description, value)
		case "number_rooms":
			setInt(&t.NumberRooms, value)
		case "number_bathrooms":
			setInt(&t.NumberBathrooms, value)
		case "max_guest":
			setInt(&t.MaxGuest, value)
		case "price_by_night":
			setInt(&t.PriceByNight, value)
		case "latitude":
			setFloat(&t.Latitude, value)
		case "longitude":
			setFloat(&t.Longitude, value)
		case "amenity_ids":
			setStringSlice(&t.AmenityIDs, value)
		}
	case *Review:
		switch key {
		case "text":
			setString(&t.Text, value)
		case "place_id":
			setString(&t.PlaceID, value)
		case "user_id":
			setString(&t.UserID, value)
		}
	}
}

func setString(dst *string, v interface{}) {
	if s, ok := v.(string); ok {
		*dst = s
	}
}

// setInt accepts float64 because encoding/json decodes every JSON number
// into interface{} as float64.
func setInt(dst *int, v interface{}) {
	switch n := v.(type) {
	case float64:
		*dst = int(n)
	case int:
		*dst = n
	}
}

func setFloat(dst *float64, v interface{}) {
	switch n := v.(type) {
	case float64:
		*dst = n
	case int:
		*dst = float64(n)
	}
}

func setStringSlice(dst *[]string, v interface{}) {
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		*dst = out
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		*dst = out
	}
}
