package sqlite

import (
	"context"
	"testing"
)

func TestListTagsOrderedByName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedTag(t, s, "Sports")
	seedTag(t, s, "Coffee")
	seedTag(t, s, "Books")

	tags, err := s.ListTags(ctx)
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}

	want := []string{"Books", "Coffee", "Sports"}
	if len(tags) != len(want) {
		t.Fatalf("got %d tags, want %d", len(tags), len(want))
	}
	for i, name := range want {
		if tags[i].Name != name {
			t.Errorf("tags[%d]: got %q, want %q", i, tags[i].Name, name)
		}
	}
}

func TestGetTagsByNames(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sports := seedTag(t, s, "Sports")
	coffee := seedTag(t, s, "Coffee")
	seedTag(t, s, "Books")

	tags, err := s.GetTagsByNames(ctx, []string{"Sports", "Coffee", "Gardening"})
	if err != nil {
		t.Fatalf("GetTagsByNames: %v", err)
	}

	// Gardening does not exist and is skipped, not an error.
	if len(tags) != 2 {
		t.Fatalf("got %d tags, want 2", len(tags))
	}

	gotIDs := map[int64]bool{tags[0].ID: true, tags[1].ID: true}
	if !gotIDs[sports.ID] || !gotIDs[coffee.ID] {
		t.Errorf("expected tags %d and %d, got %v", sports.ID, coffee.ID, gotIDs)
	}
}

func TestGetTagsByNamesEmptyInput(t *testing.T) {
	s := newTestStore(t)

	tags, err := s.GetTagsByNames(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetTagsByNames: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("expected no tags, got %d", len(tags))
	}
}
