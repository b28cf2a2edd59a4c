package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

var _ repository.ExchangeRateRepository = (*ExchangeRateRepo)(nil)

// ExchangeRateRepo implementación de ExchangeRateRepository sobre
// PostgreSQL (usable con pool o tx).
type ExchangeRateRepo struct {
	q Querier
}

// NewExchangeRateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExchangeRateRepository(q Querier) *ExchangeRateRepo {
	return &ExchangeRateRepo{q: q}
}

// GetDefault devuelve el snapshot de tipo de cambio más reciente, o
// nil, nil si nunca se registró uno.
func (r *ExchangeRateRepo) GetDefault() (*entity.ExchangeRate, error) {
	query := `
		SELECT id, rate, date, created_at
		FROM exchange_rates ORDER BY date DESC, created_at DESC LIMIT 1`
	var er entity.ExchangeRate
	err := r.q.QueryRow(context.Background(), query).Scan(&er.ID, &er.Rate, &er.Date, &er.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get default exchange rate: %w", err)
	}
	return &er, nil
}
