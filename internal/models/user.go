package models

// User owns Places and Reviews. Email is fixed at creation; the password
// never appears in masked serializations.
type User struct {
	Base
	Email     string `gorm:"size:128;not null" json:"email"`
	Password  string `gorm:"size:128;not null" json:"-"`
	FirstName string `gorm:"size:128" json:"first_name"`
	LastName  string `gorm:"size:128" json:"last_name"`
}

// TableName overrides the table name for User
func (User) TableName() string { return "users" }

func (u *User) Kind() Kind { return KindUser }

func (u *User) ToMap(maskSecrets bool) map[string]interface{} {
	m := u.baseMap(KindUser)
	m["email"] = u.Email
	m["first_name"] = u.FirstName
	m["last_name"] = u.LastName
	if !maskSecrets {
		m["password"] = u.Password
	}
	return m
}
