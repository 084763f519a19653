package members

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// wireRecord uses pointers so a missing field can be told apart from an empty one.
type wireRecord struct {
	ID    *ID     `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// Decode reads a JSON array of members. Every element must carry id, name,
// email and role; ids must be unique. Unknown fields are ignored.
func Decode(r io.Reader) ([]Record, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrapf(ErrSchemaMismatch, "decode member list: %v", err)
	}

	records := make([]Record, 0, len(raw))
	seen := make(IDSet, len(raw))
	for i, msg := range raw {
		var w wireRecord
		if err := json.Unmarshal(msg, &w); err != nil {
			return nil, errors.Wrapf(ErrSchemaMismatch, "member %d: %v", i, err)
		}
		if missing := w.missing(); missing != "" {
			return nil, errors.Wrapf(ErrSchemaMismatch, "member %d: missing %q", i, missing)
		}
		if seen.Has(*w.ID) {
			return nil, errors.Wrapf(ErrDuplicateID, "member %d: id %q", i, *w.ID)
		}
		seen[*w.ID] = struct{}{}
		records = append(records, Record{ID: *w.ID, Name: *w.Name, Email: *w.Email, Role: *w.Role})
	}
	return records, nil
}

func (w wireRecord) missing() string {
	switch {
	case w.ID == nil:
		return "id"
	case w.Name == nil:
		return "name"
	case w.Email == nil:
		return "email"
	case w.Role == nil:
		return "role"
	}
	return ""
}
