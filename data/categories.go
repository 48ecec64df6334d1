package data

import "github.com/emzola/biblioadmin/internal/validator"

// Category defines a category model.
type Category struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

func (c Category) EntityID() int64 { return c.ID }

func ValidateCategory(v *validator.Validator, category *Category) {
	v.Check(category.Name != "", "name", "must be provided")
	v.Check(len(category.Name) <= 500, "name", "must not be more than 500 bytes long")
	v.Check(category.Description != "", "description", "must be provided")
}
