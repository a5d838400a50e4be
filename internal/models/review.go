package models

// Review belongs to a Place and a User.
type Review struct {
	Base
	Text    string `gorm:"size:1024;not null" json:"text"`
	PlaceID string `gorm:"size:60;index;not null" json:"place_id"`
	UserID  string `gorm:"size:60;index;not null" json:"user_id"`
}

// TableName overrides the table name for Review
func (Review) TableName() string { return "reviews" }

func (r *Review) Kind() Kind { return KindReview }

func (r *Review) ToMap(maskSecrets bool) map[string]interface{} {
	m := r.baseMap(KindReview)
	m["text"] = r.Text
	m["place_id"] = r.PlaceID
	m["user_id"] = r.UserID
	return m
}
