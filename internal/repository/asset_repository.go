package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hyunjkang/invest-manager/internal/apperrors"
	"github.com/hyunjkang/invest-manager/internal/model"
)

// AssetRepository provides data access methods for the asset table.
type AssetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new AssetRepository with the provided database connection.
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// GetAssets retrieves all assets ordered by buy date (newest first).
// Returns an empty slice if the table is empty.
func (r *AssetRepository) GetAssets() ([]model.Asset, error) {
	query := `
          SELECT id, name, asset_type, amount, buy_price, buy_date
          FROM asset
          ORDER BY buy_date DESC, created_at DESC
      `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset table: %w", err)
	}
	defer rows.Close()

	assets := []model.Asset{}

	for rows.Next() {
		var a model.Asset
		var buyDate string

		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.AssetType,
			&a.Amount,
			&a.BuyPrice,
			&buyDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset table results: %w", err)
		}

		a.BuyDate, err = parseDate(buyDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse asset buy date: %w", err)
		}

		assets = append(assets, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset table: %w", err)
	}

	return assets, nil
}

// CreateAsset inserts a new asset record.
func (r *AssetRepository) CreateAsset(asset model.Asset) error {
	query := `
          INSERT INTO asset (id, name, asset_type, amount, buy_price, buy_date)
          VALUES (?, ?, ?, ?, ?, ?)
      `

	_, err := r.db.Exec(
		query,
		asset.ID,
		asset.Name,
		asset.AssetType,
		asset.Amount,
		asset.BuyPrice,
		asset.BuyDate.Format("2006-01-02"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset: %w", err)
	}

	return nil
}

// DeleteAsset removes the asset with the given ID.
// Returns apperrors.ErrAssetNotFound if no row was deleted.
func (r *AssetRepository) DeleteAsset(id string) error {
	result, err := r.db.Exec("DELETE FROM asset WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAssetNotFound
	}

	return nil
}

// parseDate handles the date formats SQLite hands back depending on how the
// value was inserted (bare date or full timestamp).
func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", value)
}
