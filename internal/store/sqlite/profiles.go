package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/giftwiseapp/giftwise-server/internal/domain"
	"github.com/giftwiseapp/giftwise-server/internal/store"
)

// profileColumns is the ordered list of columns selected in profile queries.
// Must match the scan order in scanProfile.
const profileColumns = `id, name, age, long_description, created_at, updated_at`

// scanProfile scans a sql.Row (or sql.Rows via its Scan method) into a
// domain.Profile.
func scanProfile(scanner interface{ Scan(dest ...any) error }) (*domain.Profile, error) {
	var (
		p           domain.Profile
		age         sql.NullInt64
		description sql.NullString
		createdAt   string
		updatedAt   string
	)

	err := scanner.Scan(
		&p.ID,
		&p.Name,
		&age,
		&description,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if age.Valid {
		v := int(age.Int64)
		p.Age = &v
	}
	p.LongDescription = description.String

	p.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	p.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// CreateProfile inserts a new profile and fills in its generated id.
func (s *Store) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = now
	}

	var age sql.NullInt64
	if profile.Age != nil {
		age = sql.NullInt64{Int64: int64(*profile.Age), Valid: true}
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (name, age, long_description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		profile.Name,
		age,
		nullString(profile.LongDescription),
		formatTime(profile.CreatedAt),
		formatTime(profile.UpdatedAt),
	)
	if err != nil {
		return err
	}

	profile.ID, err = res.LastInsertId()
	return err
}

// GetProfile retrieves a profile by id.
// Returns store.ErrNotFound if the profile does not exist.
func (s *Store) GetProfile(ctx context.Context, id int64) (*domain.Profile, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id)

	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListProfiles returns all profiles ordered by creation.
func (s *Store) ListProfiles(ctx context.Context) ([]*domain.Profile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return profiles, nil
}

// UpdateProfileDescription replaces a profile's long description and bumps
// its updated_at. Returns store.ErrNotFound if the profile does not exist.
func (s *Store) UpdateProfileDescription(ctx context.Context, id int64, description string) (*domain.Profile, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE profiles
		SET long_description = ?, updated_at = ?
		WHERE id = ?`,
		nullString(description),
		formatTime(time.Now()),
		id,
	)
	if err != nil {
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, store.ErrNotFound
	}

	return s.GetProfile(ctx, id)
}
