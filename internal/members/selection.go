package members

// SetSelected returns a copy of r with its selection flag set to checked.
func SetSelected(r Record, checked bool) Record {
	r.Selected = checked
	return r
}

// SelectAll returns copies of records with every selection flag set to checked.
func SelectAll(records []Record, checked bool) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = SetSelected(r, checked)
	}
	return out
}

// CheckedIDs returns the ids of the selected records.
func CheckedIDs(records []Record) IDSet {
	ids := make(IDSet)
	for _, r := range records {
		if r.Selected {
			ids[r.ID] = struct{}{}
		}
	}
	return ids
}
