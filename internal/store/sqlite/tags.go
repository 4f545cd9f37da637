package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/giftwiseapp/giftwise-server/internal/domain"
)

// ListTags returns all tags ordered by name.
func (s *Store) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tag_id, tag_name FROM tags ORDER BY tag_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}

// GetTagsByNames resolves tag names to tags.
// Names without a matching tag are silently skipped; the result order
// follows the database, not the input.
func (s *Store) GetTagsByNames(ctx context.Context, names []string) ([]*domain.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(names))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, len(names))
	for i, name := range names {
		args[i] = name
	}

	query := fmt.Sprintf(
		`SELECT tag_id, tag_name FROM tags WHERE tag_name IN (%s) ORDER BY tag_id ASC`,
		placeholders)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag inserts a new tag. Used by seeding and tests; the
// recommendation core never writes tags.
func (s *Store) CreateTag(ctx context.Context, name string) (*domain.Tag, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tags (tag_name) VALUES (?)`, name)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.Tag{ID: id, Name: name}, nil
}
