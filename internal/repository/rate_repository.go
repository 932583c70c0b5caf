package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hyunjkang/invest-manager/internal/model"
)

// RateRepository provides data access methods for the exchange_rate table.
type RateRepository struct {
	db *sql.DB
}

// NewRateRepository creates a new RateRepository with the provided database connection.
func NewRateRepository(db *sql.DB) *RateRepository {
	return &RateRepository{db: db}
}

// GetLatestRates retrieves the most recent KRW rate per currency,
// keyed by currency code. Returns an empty map if no rates are stored.
func (r *RateRepository) GetLatestRates() (map[string]model.ExchangeRate, error) {
	query := `
          SELECT er.id, er.currency, er.rate, er.date
          FROM exchange_rate er
          JOIN (
              SELECT currency, MAX(date) AS max_date
              FROM exchange_rate
              GROUP BY currency
          ) latest ON latest.currency = er.currency AND latest.max_date = er.date
      `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange_rate table: %w", err)
	}
	defer rows.Close()

	rates := map[string]model.ExchangeRate{}

	for rows.Next() {
		var er model.ExchangeRate
		var date string

		if err := rows.Scan(&er.ID, &er.Currency, &er.Rate, &date); err != nil {
			return nil, fmt.Errorf("failed to scan exchange_rate table results: %w", err)
		}

		er.Date, err = parseDate(date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse exchange rate date: %w", err)
		}

		rates[er.Currency] = er
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchange_rate table: %w", err)
	}

	return rates, nil
}

// UpsertRate stores a rate for a currency/date pair, replacing any existing
// record for the same pair.
func (r *RateRepository) UpsertRate(rate model.ExchangeRate) error {
	if rate.ID == "" {
		rate.ID = uuid.New().String()
	}

	query := `
          INSERT INTO exchange_rate (id, currency, rate, date)
          VALUES (?, ?, ?, ?)
          ON CONFLICT (currency, date) DO UPDATE SET rate = excluded.rate
      `

	_, err := r.db.Exec(query, rate.ID, rate.Currency, rate.Rate, rate.Date.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("failed to upsert exchange rate: %w", err)
	}

	return nil
}
