package models

// State is a top-level region. Cities reference it through StateID.
type State struct {
	Base
	Name string `gorm:"size:128;not null" json:"name"`
}

// TableName overrides the table name for State
func (State) TableName() string { return "states" }

func (s *State) Kind() Kind { return KindState }

func (s *State) ToMap(maskSecrets bool) map[string]interface{} {
	m := s.baseMap(KindState)
	m["name"] = s.Name
	return m
}
