package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/entity"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/repository"
)

const (
	poolMaxConns        = 10
	poolMinConns        = 1
	poolMaxConnLifetime = 30 * time.Minute
	poolMaxConnIdleTime = 5 * time.Minute
)

// NewPool opens and pings a pool for url.
func NewPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}

	cfg.MaxConns = poolMaxConns
	cfg.MinConns = poolMinConns
	cfg.MaxConnLifetime = poolMaxConnLifetime
	cfg.MaxConnIdleTime = poolMaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

type ChargeRepo struct {
	pool *pgxpool.Pool
}

func NewChargeRepo(pool *pgxpool.Pool) *ChargeRepo {
	return &ChargeRepo{pool: pool}
}

var _ repository.ChargeRepository = (*ChargeRepo)(nil)

// Save is idempotent on txid: the first record for a txid wins.
func (r *ChargeRepo) Save(ctx context.Context, c *entity.Charge) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO pix_charges (id, txid, payee_key, amount, status, pix_copia_e_cola, created_at)
		 VALUES ($1, $2, $3, $4::numeric, $5, $6, $7)
		 ON CONFLICT (txid) DO NOTHING`,
		c.ID(), c.TxID(), c.PayeeKey(), c.Amount().String(), c.Status(), c.PixCopiaECola(), c.CreatedAt(),
	)
	return err
}

func (r *ChargeRepo) FindByTxID(ctx context.Context, txID string) (*entity.Charge, error) {
	var (
		id            uuid.UUID
		payeeKey      string
		amount        string
		status        string
		pixCopiaECola string
		createdAt     time.Time
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, payee_key, amount::text, status, pix_copia_e_cola, created_at
		 FROM pix_charges WHERE txid = $1`,
		txID,
	).Scan(&id, &payeeKey, &amount, &status, &pixCopiaECola, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse stored amount %q: %w", amount, err)
	}

	return entity.ReconstructCharge(id, txID, payeeKey, amt, status, pixCopiaECola, createdAt), nil
}
