// Package data defines the catalog entities exchanged with the library API
// and their validation rules.
package data

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// Entity is implemented by every catalog record that carries a server-assigned id.
type Entity interface {
	EntityID() int64
}
