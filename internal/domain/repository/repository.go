package repository

import (
	"context"
	"errors"

	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/entity"
)

var ErrNotFound = errors.New("not found")

type ChargeRepository interface {
	Save(ctx context.Context, charge *entity.Charge) error
	FindByTxID(ctx context.Context, txID string) (*entity.Charge, error)
}
