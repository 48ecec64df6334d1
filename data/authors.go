package data

import (
	"time"

	"github.com/emzola/biblioadmin/internal/validator"
)

// Author defines an author model.
type Author struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
	Country   string `json:"country,omitempty"`
}

func (a Author) EntityID() int64 { return a.ID }

func ValidateAuthor(v *validator.Validator, author *Author) {
	v.Check(author.Name != "", "name", "must be provided")
	v.Check(len(author.Name) <= 500, "name", "must not be more than 500 bytes long")
	v.Check(author.BirthDate != "", "birthDate", "must be provided")
	if author.BirthDate != "" {
		_, err := time.Parse(DateLayout, author.BirthDate)
		v.Check(err == nil, "birthDate", "must be a valid date in YYYY-MM-DD format")
	}
	v.Check(author.Country != "", "country", "must be provided")
}
