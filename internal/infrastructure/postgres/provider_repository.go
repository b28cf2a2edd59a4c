package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo implementación de ProviderRepository sobre PostgreSQL
// (usable con pool o tx).
type ProviderRepo struct {
	q Querier
}

// NewProviderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{q: q}
}

// GetByID obtiene un proveedor por ID. Devuelve nil, nil si no existe.
func (r *ProviderRepo) GetByID(id string) (*entity.Provider, error) {
	query := `SELECT id, name, created_at FROM providers WHERE id = $1`
	var p entity.Provider
	err := r.q.QueryRow(context.Background(), query, id).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}
	return &p, nil
}

// GetOrCreateByName upsert idempotente por nombre, respaldado por el
// constraint único de providers(name): dos importaciones concurrentes
// sin proveedor no crean dos filas genéricas.
func (r *ProviderRepo) GetOrCreateByName(name string) (*entity.Provider, error) {
	query := `
		INSERT INTO providers (id, name, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, created_at`
	var p entity.Provider
	err := r.q.QueryRow(context.Background(), query, uuid.New().String(), name, time.Now()).Scan(
		&p.ID, &p.Name, &p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get or create provider: %w", err)
	}
	return &p, nil
}
