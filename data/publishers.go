package data

import (
	"time"

	"github.com/emzola/biblioadmin/internal/validator"
)

// Publisher defines a publisher model.
type Publisher struct {
	ID                int64  `json:"id,omitempty"`
	Name              string `json:"name,omitempty"`
	EstablishmentYear int32  `json:"establishmentYear,omitempty"`
	Address           string `json:"address,omitempty"`
}

func (p Publisher) EntityID() int64 { return p.ID }

func ValidatePublisher(v *validator.Validator, publisher *Publisher) {
	v.Check(publisher.Name != "", "name", "must be provided")
	v.Check(len(publisher.Name) <= 500, "name", "must not be more than 500 bytes long")
	v.Check(publisher.EstablishmentYear != 0, "establishmentYear", "must be provided")
	v.Check(publisher.EstablishmentYear > 0, "establishmentYear", "must be a positive year")
	v.Check(publisher.EstablishmentYear <= int32(time.Now().Year()), "establishmentYear", "must not be in the future")
	v.Check(publisher.Address != "", "address", "must be provided")
}
