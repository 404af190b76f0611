package packages

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
	List(ctx context.Context, filters shared.ListFilters) ([]pricing.Package, int, error)
	Get(ctx context.Context, id string) (pricing.Package, error)
	Create(ctx context.Context, pkg pricing.Package) (pricing.Package, error)
	Update(ctx context.Context, id string, pkg pricing.Package) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const packageColumns = `id, name, description, image, marke_models, price, discount, end_date, include, info`

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]pricing.Package, int, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM packages WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	clause := ""
	if filters.Search != "" {
		argCount++
		clause += ` AND name ILIKE $` + strconv.Itoa(argCount)
		args = append(args, "%"+filters.Search+"%")
	}
	// Brand/model scoping matches entries whose marke_models JSON contains
	// the requested pair.
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

	var out []pricing.Package
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, pkg)
	}
	return out, total, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (pricing.Package, error) {
	row := r.db.QueryRow(ctx, `SELECT `+packageColumns+` FROM packages WHERE id = $1`, id)
	pkg, err := scanPackage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return pricing.Package{}, httpx.ErrNotFound
	}
	return pkg, err
}

func (r *repository) Create(ctx context.Context, pkg pricing.Package) (pricing.Package, error) {
	if pkg.ID == "" {
		pkg.ID = uuid.NewString()
	}
	markeModels, err := json.Marshal(pkg.MarkeModels)
	if err != nil {
		return pricing.Package{}, err
	}
	now := time.Now()
	_, err = r.db.Exec(ctx,
		`INSERT INTO packages (id, name, description, image, marke_models, price, discount, end_date, include, info, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		pkg.ID, pkg.Name, pkg.Description, pkg.Image, markeModels, pkg.Price, pkg.Discount, pkg.EndDate, pkg.Include, pkg.Info, now, now)
	if err != nil {
		return pricing.Package{}, err
	}
	return pkg, nil
}

func (r *repository) Update(ctx context.Context, id string, pkg pricing.Package) error {
	markeModels, err := json.Marshal(pkg.MarkeModels)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE packages SET name = $1, description = $2, image = $3, marke_models = $4, price = $5,
		 discount = $6, end_date = $7, include = $8, info = $9, updated_at = $10 WHERE id = $11`,
		pkg.Name, pkg.Description, pkg.Image, markeModels, pkg.Price, pkg.Discount, pkg.EndDate, pkg.Include, pkg.Info, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func scanPackage(row pgx.Row) (pricing.Package, error) {
	var pkg pricing.Package
	var markeModels []byte
	err := row.Scan(&pkg.ID, &pkg.Name, &pkg.Description, &pkg.Image, &markeModels,
		&pkg.Price, &pkg.Discount, &pkg.EndDate, &pkg.Include, &pkg.Info)
	if err != nil {
		return pricing.Package{}, err
	}
	if len(markeModels) > 0 {
		if err := json.Unmarshal(markeModels, &pkg.MarkeModels); err != nil {
			return pricing.Package{}, err
		}
	}
	return pkg, nil
}
