package store

// Document is one unit of retrievable text. Immutable once inserted into an
// index.
type Document struct {
	ID       string
	Content  string
	Metadata map[string]interface{}
}
