package vehicles

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/merhebia-finest/tilbud/internal/catalog/shared"
	"github.com/merhebia-finest/tilbud/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context, filters shared.ListFilters) ([]Vehicle, int, error)
	ListOptions(ctx context.Context) ([]Option, error)
	Get(ctx context.Context, id string) (Vehicle, error)
	Create(ctx context.Context, v Vehicle) (Vehicle, error)
	Update(ctx context.Context, id string, v Vehicle) error
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]Vehicle, int, error) {
	query := `SELECT id, name, model, active, created_at, updated_at FROM vehicles WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM vehicles WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	clause := ""
	if filters.Search != "" {
		argCount++
		clause += ` AND (name ILIKE $` + strconv.Itoa(argCount) + ` OR model ILIKE $` + strconv.Itoa(argCount) + `)`
		args = append(args, "%"+filters.Search+"%")
	}
	if filters.Active != nil {
		argCount++
		clause += ` AND active = $` + strconv.Itoa(argCount)
		args = append(args, *filters.Active)
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += clause + ` ORDER BY ` + sortOrder(filters.SortBy, filters.SortDir)
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

	var vehicles []Vehicle
	for rows.Next() {
		var v Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Model, &v.Active, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, total, rows.Err()
}

func (r *repository) ListOptions(ctx context.Context) ([]Option, error) {
	rows, err := r.db.Query(ctx, `SELECT name, model FROM vehicles WHERE active ORDER BY name, model`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []Option
	for rows.Next() {
		var o Option
		if err := rows.Scan(&o.Name, &o.Model); err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (Vehicle, error) {
	var v Vehicle
	err := r.db.QueryRow(ctx,
		`SELECT id, name, model, active, created_at, updated_at FROM vehicles WHERE id = $1`, id).
		Scan(&v.ID, &v.Name, &v.Model, &v.Active, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Vehicle{}, httpx.ErrNotFound
	}
	return v, err
}

func (r *repository) Create(ctx context.Context, v Vehicle) (Vehicle, error) {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now

	_, err := r.db.Exec(ctx,
		`INSERT INTO vehicles (id, name, model, active, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		v.ID, v.Name, v.Model, v.Active, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Vehicle{}, httpx.ErrDuplicate
		}
		return Vehicle{}, err
	}
	return v, nil
}

func (r *repository) Update(ctx context.Context, id string, v Vehicle) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE vehicles SET name = $1, model = $2, active = $3, updated_at = $4 WHERE id = $5`,
		v.Name, v.Model, v.Active, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func (r *repository) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE vehicles SET active = $1, updated_at = $2 WHERE id = $3`, active, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func sortOrder(sortBy, sortDir string) string {
	dir := "ASC"
	if sortDir == shared.SortDesc {
		dir = "DESC"
	}
	switch sortBy {
	case "model":
		return "model " + dir
	case "created_at":
		return "created_at " + dir
	default:
		return "name " + dir
	}
}
