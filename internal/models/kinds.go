package models

// Kind names a concrete entity type. It doubles as the serialized
// discriminator and as the prefix of identity-map keys ("<Kind>.<id>").
type Kind string

const (
	KindState   Kind = "State"
	KindCity    Kind = "City"
	KindAmenity Kind = "Amenity"
	KindUser    Kind = "User"
	KindPlace   Kind = "Place"
	KindReview  Kind = "Review"
)

// Kinds lists every entity kind in foreign-key dependency order, so that
// iterating it for persistence never writes a child before its parent.
var Kinds = []Kind{KindState, KindCity, KindUser, KindAmenity, KindPlace, KindReview}

// Plurals maps each kind to its collection name on the wire.
var Plurals = map[Kind]string{
	KindState:   "states",
	KindCity:    "cities",
	KindAmenity: "amenities",
	KindUser:    "users",
	KindPlace:   "places",
	KindReview:  "reviews",
}

// Entity is implemented by every persisted record. The unexported method
// keeps the set of implementations closed to this package.
type Entity interface {
	GetID() string
	Kind() Kind
	// ToMap renders every public attribute plus the __class__ discriminator.
	// Timestamps use TimeFormat. When maskSecrets is true, password-like
	// fields are omitted.
	ToMap(maskSecrets bool) map[string]interface{}
	// Touch refreshes UpdatedAt.
	Touch()

	base() *Base
}
