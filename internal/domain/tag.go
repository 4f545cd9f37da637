package domain

// Tag is a named category used to classify gift items and to structure
// the inference model's selection space.
// Tags are immutable reference data; ids and names are unique.
type Tag struct {
	ID   int64  `json:"tag_id"`
	Name string `json:"tag_name"`
}

// TagNames extracts the names from a slice of tags, preserving order.
func TagNames(tags []*Tag) []string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names
}

// TagIDs extracts the ids from a slice of tags, preserving order.
func TagIDs(tags []*Tag) []int64 {
	ids := make([]int64, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	return ids
}
