package settings

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists the company profile as a single JSON row.
type Repository interface {
	Get(ctx context.Context) (CompanySettings, error)
	Save(ctx context.Context, c CompanySettings) error
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

// Get returns the stored profile, or the defaults when none was saved yet.
func (r *repository) Get(ctx context.Context) (CompanySettings, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, `SELECT payload FROM company_settings WHERE id = 1`).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return Defaults(), nil
	}
	if err != nil {
		return CompanySettings{}, err
	}
	var c CompanySettings
	if err := json.Unmarshal(payload, &c); err != nil {
		return CompanySettings{}, err
	}
	return c, nil
}

func (r *repository) Save(ctx context.Context, c CompanySettings) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO company_settings (id, payload, updated_at) VALUES (1, $1, $2)
		 ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		payload, time.Now())
	return err
}
