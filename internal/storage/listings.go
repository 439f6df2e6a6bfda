package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/neutech/estates/internal/model"
)

// AddListing inserts a new property. Listings are returned newest-first by
// ListListings, so the freshly added property becomes the first element.
func (s *SQLiteStorage) AddListing(ctx context.Context, property model.Property) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateProperty(&property); err != nil {
		return err
	}

	featuresJSON := ""
	if len(property.Features) > 0 {
		featuresBytes, marshalErr := json.Marshal(property.Features)
		if marshalErr == nil {
			featuresJSON = string(featuresBytes)
		}
	}

	query := `
		INSERT INTO listings (
			id, title, description, price, state, lga, address,
			features, type, category, image_ref, contact_phone, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		property.ID,
		property.Title,
		property.Description,
		property.Price,
		property.Location.State,
		property.Location.LGA,
		property.Location.Address,
		featuresJSON,
		string(property.Type),
		string(property.Category),
		property.ImageRef,
		property.ContactPhone,
		property.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert listing: %w", err)
	}

	slog.Debug("added listing", "id", property.ID, "title", property.Title)
	return nil
}

// RemoveListing deletes the listing with the given id. Removing an id that
// does not exist is a no-op, not an error.
func (s *SQLiteStorage) RemoveListing(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM listings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil {
		slog.Debug("removed listing", "id", id, "existed", affected > 0)
	}
	return nil
}

// ListListings returns every listing, newest first. Callers must not
// mutate the returned slice.
func (s *SQLiteStorage) ListListings(ctx context.Context) ([]model.Property, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, title, description, price, state, lga, address,
		       features, type, category, image_ref, contact_phone, created_at
		FROM listings
		ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var listings []model.Property
	for rows.Next() {
		property, scanErr := scanListing(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		listings = append(listings, property)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listings: %w", err)
	}

	return listings, nil
}

// GetListing returns a single listing by id, or nil when absent.
func (s *SQLiteStorage) GetListing(ctx context.Context, id string) (*model.Property, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, title, description, price, state, lga, address,
		       features, type, category, image_ref, contact_phone, created_at
		FROM listings
		WHERE id = ?`

	row := s.db.QueryRowContext(ctx, query, id)
	property, err := scanListing(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (model.Property, error) {
	var (
		property     model.Property
		featuresJSON sql.NullString
		propType     string
		category     string
	)

	err := row.Scan(
		&property.ID,
		&property.Title,
		&property.Description,
		&property.Price,
		&property.Location.State,
		&property.Location.LGA,
		&property.Location.Address,
		&featuresJSON,
		&propType,
		&category,
		&property.ImageRef,
		&property.ContactPhone,
		&property.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Property{}, err
	}
	if err != nil {
		return model.Property{}, fmt.Errorf("failed to scan listing: %w", err)
	}

	property.Type = model.PropertyType(propType)
	property.Category = model.PropertyCategory(category)

	if featuresJSON.Valid && featuresJSON.String != "" {
		if err := json.Unmarshal([]byte(featuresJSON.String), &property.Features); err != nil {
			slog.Warn("Failed to parse features JSON", "error", err, "json", featuresJSON.String)
		}
	}

	return property, nil
}
