package members

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

var (
	// ErrSchemaMismatch is returned when a member object lacks a required field
	// or carries one of the wrong type.
	ErrSchemaMismatch = errors.New("member schema mismatch")
	// ErrDuplicateID is returned when two members share an id.
	ErrDuplicateID = errors.New("duplicate member id")
)

// ID identifies a member. Numeric ids from the wire are kept as their decimal text.
type ID string

// UnmarshalJSON accepts both JSON strings and JSON numbers.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Errorf("id must be a string or number, got %s", data)
	}
	*id = ID(n.String())
	return nil
}

// Record is one user row.
type Record struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Selected bool   `json:"-"`
}

// Fields holds the editable part of a Record.
type Fields struct {
	Name  string
	Email string
	Role  string
}

// Fields returns the editable part of r.
func (r Record) Fields() Fields {
	return Fields{Name: r.Name, Email: r.Email, Role: r.Role}
}

// IDSet is a set of member ids.
type IDSet map[ID]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...ID) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s IDSet) Has(id ID) bool {
	_, ok := s[id]
	return ok
}
