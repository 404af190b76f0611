package optionpackages

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/merhebia-finest/tilbud/internal/catalog/shared"
	"github.com/merhebia-finest/tilbud/internal/platform/httpx"
	"github.com/merhebia-finest/tilbud/internal/pricing"
)

type Repository interface {
	List(ctx context.Context, filters shared.ListFilters) ([]pricing.OptionPackage, int, error)
	Get(ctx context.Context, id string) (pricing.OptionPackage, error)
	Create(ctx context.Context, pkg pricing.OptionPackage) (pricing.OptionPackage, error)
	Update(ctx context.Context, id string, pkg pricing.OptionPackage) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]pricing.OptionPackage, int, error) {
	query := `SELECT id, name, marke_models, info, options FROM option_packages WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM option_packages WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	clause := ""
	if filters.Search != "" {
		argCount++
		clause += ` AND name ILIKE $` + strconv.Itoa(argCount)
		args = append(args, "%"+filters.Search+"%")
	}
	if filters.Marke != "" && filters.Model != "" {
		argCount++
		clause += ` AND marke_models @> $` + strconv.Itoa(argCount)
		pair, _ := json.Marshal([]pricing.MarkeModel{{Marke: filters.Marke, Model: filters.Model}})
		args = append(args, pair)
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += clause + ` ORDER BY name ASC`
	argCount++
	query += ` LIMIT $` + strconv.Itoa(argCount)
	args = append(args, filters.Limit)
	argCount++
	query += ` OFFSET $` + strconv.Itoa(argCount)
	args = append(args, filters.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []pricing.OptionPackage
	for rows.Next() {
		pkg, err := scanOptionPackage(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, pkg)
	}
	return out, total, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (pricing.OptionPackage, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, marke_models, info, options FROM option_packages WHERE id = $1`, id)
	pkg, err := scanOptionPackage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return pricing.OptionPackage{}, httpx.ErrNotFound
	}
	return pkg, err
}

func (r *repository) Create(ctx context.Context, pkg pricing.OptionPackage) (pricing.OptionPackage, error) {
	if pkg.ID == "" {
		pkg.ID = uuid.NewString()
	}
	markeModels, options, err := encodeJSON(pkg)
	if err != nil {
		return pricing.OptionPackage{}, err
	}
	now := time.Now()
	_, err = r.db.Exec(ctx,
		`INSERT INTO option_packages (id, name, marke_models, info, options, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		pkg.ID, pkg.Name, markeModels, pkg.Info, options, now, now)
	if err != nil {
		return pricing.OptionPackage{}, err
	}
	return pkg, nil
}

func (r *repository) Update(ctx context.Context, id string, pkg pricing.OptionPackage) error {
	markeModels, options, err := encodeJSON(pkg)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE option_packages SET name = $1, marke_models = $2, info = $3, options = $4, updated_at = $5 WHERE id = $6`,
		pkg.Name, markeModels, pkg.Info, options, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM option_packages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func encodeJSON(pkg pricing.OptionPackage) (markeModels, options []byte, err error) {
	markeModels, err = json.Marshal(pkg.MarkeModels)
	if err != nil {
		return nil, nil, err
	}
	options, err = json.Marshal(pkg.Options)
	if err != nil {
		return nil, nil, err
	}
	return markeModels, options, nil
}

func scanOptionPackage(row pgx.Row) (pricing.OptionPackage, error) {
	var pkg pricing.OptionPackage
	var markeModels, options []byte
	if err := row.Scan(&pkg.ID, &pkg.Name, &markeModels, &pkg.Info, &options); err != nil {
		return pricing.OptionPackage{}, err
	}
	if len(markeModels) > 0 {
		if err := json.Unmarshal(markeModels, &pkg.MarkeModels); err != nil {
			return pricing.OptionPackage{}, err
		}
	}
	if len(options) > 0 {
		if err := json.Unmarshal(options, &pkg.Options); err != nil {
			return pricing.OptionPackage{}, err
		}
	}
	return pkg, nil
}
