package offer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/merhebia-finest/tilbud/internal/platform/httpx"
	"github.com/merhebia-finest/tilbud/internal/pricing"
)

// Repository persists offers. Snapshots travel as JSONB columns; the offer
// number comes from a database sequence so it is gapless-enough and strictly
// increasing across concurrent writers.
type Repository interface {
	Create(ctx context.Context, o Offer) (Offer, error)
	Get(ctx context.Context, id string) (Offer, error)
	List(ctx context.Context, req ListRequest) ([]Offer, int, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const offerColumns = `id, offer_no, selected_package, marke, model, info, added_option_packages,
	manual_products, discount, terms, valid_days, totals, created_by, created_at`

func (r *repository) Create(ctx context.Context, o Offer) (Offer, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.CreatedAt = time.Now()

	selectedPackage, err := marshalNullable(o.SelectedPackage)
	if err != nil {
		return Offer{}, err
	}
	addedOptionPackages, err := json.Marshal(o.AddedOptionPackages)
	if err != nil {
		return Offer{}, err
	}
	manualProducts, err := json.Marshal(o.ManualProducts)
	if err != nil {
		return Offer{}, err
	}
	totals, err := json.Marshal(o.Totals)
	if err != nil {
		return Offer{}, err
	}
	createdBy, err := json.Marshal(o.CreatedBy)
	if err != nil {
		return Offer{}, err
	}

	err = r.db.QueryRow(ctx,
		`INSERT INTO offers (id, offer_no, selected_package, marke, model, info, added_option_packages,
		 manual_products, discount, terms, valid_days, totals, created_by, created_at)
		 VALUES ($1, nextval('offer_no_seq'), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING offer_no`,
		o.ID, selectedPackage, o.Marke, o.Model, o.Info, addedOptionPackages,
		manualProducts, o.Discount, o.Terms, o.ValidDays, totals, createdBy, o.CreatedAt).
		Scan(&o.OfferNo)
	if err != nil {
		return Offer{}, fmt.Errorf("offer: insert: %w", err)
	}
	return o, nil
}

func (r *repository) Get(ctx context.Context, id string) (Offer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id)
	o, err := scanOffer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Offer{}, httpx.ErrNotFound
	}
	return o, err
}

func (r *repository) List(ctx context.Context, req ListRequest) ([]Offer, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM offers`).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (req.Page - 1) * req.Limit
	if offset < 0 {
		offset = 0
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+offerColumns+` FROM offers ORDER BY offer_no DESC LIMIT $1 OFFSET $2`,
		req.Limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var offers []Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, 0, err
		}
		offers = append(offers, o)
	}
	return offers, total, rows.Err()
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func scanOffer(row pgx.Row) (Offer, error) {
	var o Offer
	var selectedPackage, addedOptionPackages, manualProducts, totals, createdBy []byte
	err := row.Scan(&o.ID, &o.OfferNo, &selectedPackage, &o.Marke, &o.Model, &o.Info,
		&addedOptionPackages, &manualProducts, &o.Discount, &o.Terms, &o.ValidDays,
		&totals, &createdBy, &o.CreatedAt)
	if err != nil {
		return Offer{}, err
	}
	if len(selectedPackage) > 0 {
		if err := json.Unmarshal(selectedPackage, &o.SelectedPackage); err != nil {
			return Offer{}, err
		}
	}
	for _, pair := range []struct {
		raw []byte
		dst any
	}{
		{addedOptionPackages, &o.AddedOptionPackages},
		{manualProducts, &o.ManualProducts},
		{totals, &o.Totals},
		{createdBy, &o.CreatedBy},
	} {
		if len(pair.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(pair.raw, pair.dst); err != nil {
			return Offer{}, err
		}
	}
	return o, nil
}

func marshalNullable(pkg *pricing.Package) ([]byte, error) {
	if pkg == nil {
		return nil, nil
	}
	return json.Marshal(pkg)
}
