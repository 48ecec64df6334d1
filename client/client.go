package client

import (
	"net/http"
	"strings"

	"github.com/emzola/biblioadmin/data"
)

// Client bundles the five typed resource clients of the catalog API.
type Client struct {
	Authors    *Resource[data.Author]
	Publishers *Resource[data.Publisher]
	Categories *Resource[data.Category]
	Books      *Resource[data.Book]
	Borrowings *Resource[data.Borrowing]
}

// New creates resource clients rooted at baseURL, e.g.
// https://example.com/api/v1.
func New(baseURL string, httpc *http.Client) *Client {
	base := strings.TrimSuffix(baseURL, "/")
	return &Client{
		Authors:    NewResource[data.Author](base+"/authors", httpc),
		Publishers: NewResource[data.Publisher](base+"/publishers", httpc),
		Categories: NewResource[data.Category](base+"/categories", httpc),
		Books:      NewResource[data.Book](base+"/books", httpc),
		Borrowings: NewResource[data.Borrowing](base+"/borrows", httpc),
	}
}
