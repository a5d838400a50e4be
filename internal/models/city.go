package models

// City belongs to a State. StateID is a weak reference resolved through the
// storage engine, never a back-pointer.
type City struct {
	Base
	Name    string `gorm:"size:128;not null" json:"name"`
	StateID string `gorm:"size:60;index;not null" json:"state_id"`
}

// TableName overrides the table name for City
func (City) TableName() string { return "cities" }

func (c *City) Kind() Kind { return KindCity }

func (c *City) ToMap(maskSecrets bool) map[string]interface{} {
	m := c.baseMap(KindCity)
	m["name"] = c.Name
	m["state_id"] = c.StateID
	return m
}
