package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/giftwiseapp/giftwise-server/internal/domain"
	"github.com/giftwiseapp/giftwise-server/internal/store"
)

// itemColumns is the ordered list of columns selected in item queries.
// Must match the scan order in scanItem.
const itemColumns = `gift_id, gift_name, gift_price, img_url, created_at`

// scanItem scans a sql.Row (or sql.Rows via its Scan method) into a
// domain.GiftItem. Tags are left empty; callers attach them if needed.
func scanItem(scanner interface{ Scan(dest ...any) error }) (domain.GiftItem, error) {
	var (
		item      domain.GiftItem
		price     sql.NullFloat64
		imgURL    sql.NullString
		createdAt string
	)

	err := scanner.Scan(
		&item.ID,
		&item.Name,
		&price,
		&imgURL,
		&createdAt,
	)
	if err != nil {
		return domain.GiftItem{}, err
	}

	item.Price = floatPtr(price)
	item.ImageURL = imgURL.String

	item.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return domain.GiftItem{}, err
	}

	return item, nil
}

// collectItems drains rows into a slice of items.
func collectItems(rows *sql.Rows) ([]domain.GiftItem, error) {
	defer rows.Close()

	var items []domain.GiftItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListItemsByTagIDs returns all items carrying ANY of the given tags
// (inclusive-OR join). DISTINCT guards against an item appearing once per
// matched tag; results are ordered by item id for deterministic output.
func (s *Store) ListItemsByTagIDs(ctx context.Context, tagIDs []int64) ([]domain.GiftItem, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(tagIDs))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, len(tagIDs))
	for i, id := range tagIDs {
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT DISTINCT g.gift_id, g.gift_name, g.gift_price, g.img_url, g.created_at
		FROM gift_items g
		JOIN gift_item_tags git ON g.gift_id = git.item_id
		WHERE git.tag_id IN (%s)
		ORDER BY g.gift_id ASC`, placeholders)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectItems(rows)
}

// ListItemsByTag returns one page of items carrying the given tag,
// ordered by price ascending with NULL prices treated as 0.
func (s *Store) ListItemsByTag(ctx context.Context, tagID int64, params store.PaginationParams) (*store.Page[domain.GiftItem], error) {
	params.Validate()

	var total int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM gift_item_tags
		WHERE tag_id = ?`, tagID).Scan(&total)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT g.gift_id, g.gift_name, g.gift_price, g.img_url, g.created_at
		FROM gift_items g
		JOIN gift_item_tags git ON g.gift_id = git.item_id
		WHERE git.tag_id = ?
		ORDER BY COALESCE(g.gift_price, 0) ASC, g.gift_id ASC
		LIMIT ? OFFSET ?`,
		tagID, params.Limit, params.Offset())
	if err != nil {
		return nil, err
	}

	items, err := collectItems(rows)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.GiftItem{}
	}

	return &store.Page[domain.GiftItem]{
		Items:      items,
		Pagination: store.NewPagination(total, params),
	}, nil
}

// ListLatestItems returns the newest items, most recent first.
func (s *Store) ListLatestItems(ctx context.Context, limit int) ([]domain.GiftItem, error) {
	if limit <= 0 {
		limit = 6
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM gift_items ORDER BY gift_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	return collectItems(rows)
}

// CreateItem inserts a new catalog item and links it to the given tags.
// Used by seeding and tests.
func (s *Store) CreateItem(ctx context.Context, item *domain.GiftItem, tagIDs []int64) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO gift_items (gift_name, gift_price, img_url, created_at)
		VALUES (?, ?, ?, ?)`,
		item.Name,
		nullFloat(item.Price),
		nullString(item.ImageURL),
		formatTime(item.CreatedAt),
	)
	if err != nil {
		return err
	}

	item.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}

	for _, tagID := range tagIDs {
		_, err := s.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO gift_item_tags (item_id, tag_id)
			VALUES (?, ?)`, item.ID, tagID)
		if err != nil {
			return err
		}
	}

	return nil
}
