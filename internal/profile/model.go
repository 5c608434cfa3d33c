package profile

import (
	"strings"
	"time"
)

type Profile struct {
	UserID    string    `db:"user_id" json:"userId"`
	FirstName string    `db:"first_name" json:"firstName"`
	LastName  string    `db:"last_name" json:"lastName"`
	UserType  string    `db:"user_type" json:"userType"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// DisplayName joins first and last name, falling back to "Unknown" when the
// profile carries no usable name. Display names are resolved at read time and
// never treated as stored truth.
func (p *Profile) DisplayName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return "Unknown"
	}
	return name
}
