package data

import (
	"encoding/json"
	"testing"

	"github.com/emzola/biblioadmin/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrowingMarshalUsesRequestKey(t *testing.T) {
	borrowing := Borrowing{
		BorrowerName:  "Jane Reader",
		BorrowerMail:  "jane@example.com",
		BorrowingDate: "2026-08-30",
		Book: BookSnapshot{
			ID:              3,
			Name:            "Kafka on the Shore",
			PublicationYear: 2002,
			Stock:           1,
		},
	}

	payload, err := json.Marshal(borrowing)
	require.NoError(t, err)

	var wire map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &wire))
	assert.Contains(t, wire, "bookForBorrowingRequest")
	assert.NotContains(t, wire, "book")
	// An open loan omits returnDate entirely.
	assert.NotContains(t, wire, "returnDate")
	assert.NotContains(t, wire, "id")
}

func TestBorrowingUnmarshalReadsResponseKey(t *testing.T) {
	payload := []byte(`{
		"id": 7,
		"borrowerName": "Jane Reader",
		"borrowerMail": "jane@example.com",
		"borrowingDate": "2026-08-30",
		"returnDate": "2026-09-15",
		"book": {"id": 3, "name": "Kafka on the Shore", "publicationYear": 2002, "stock": 1}
	}`)

	var borrowing Borrowing
	require.NoError(t, json.Unmarshal(payload, &borrowing))

	assert.Equal(t, int64(7), borrowing.ID)
	assert.Equal(t, "2026-09-15", borrowing.ReturnDate)
	assert.Equal(t, BookSnapshot{
		ID:              3,
		Name:            "Kafka on the Shore",
		PublicationYear: 2002,
		Stock:           1,
	}, borrowing.Book)
}

func TestValidateBorrowing(t *testing.T) {
	v := validator.New()
	ValidateBorrowing(v, &Borrowing{})
	assert.False(t, v.Valid())
	assert.Contains(t, v.Errors, "borrowerName")
	assert.Contains(t, v.Errors, "borrowerMail")
	assert.Contains(t, v.Errors, "borrowingDate")

	v = validator.New()
	ValidateBorrowing(v, &Borrowing{
		BorrowerName:  "Jane Reader",
		BorrowerMail:  "not-an-email",
		BorrowingDate: "30/08/2026",
	})
	assert.Contains(t, v.Errors, "borrowerMail")
	assert.Contains(t, v.Errors, "borrowingDate")

	v = validator.New()
	ValidateBorrowing(v, &Borrowing{
		BorrowerName:  "Jane Reader",
		BorrowerMail:  "jane@example.com",
		BorrowingDate: "2026-08-30",
		ReturnDate:    "2026-09-15",
	})
	assert.True(t, v.Valid())
}
