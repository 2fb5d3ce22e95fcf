package lookup

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/repository"
)

//go:generate mockgen -destination=mocks/repository_mocks.go -package=mocks github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/repository ChargeRepository

var ErrStoreDisabled = errors.New("charge store is not configured")

type Response struct {
	TxID          string
	PayeeKey      string
	Amount        decimal.Decimal
	Status        string
	PixCopiaECola string
	CreatedAt     time.Time
}

type UseCase struct {
	charges repository.ChargeRepository
}

func NewUseCase(charges repository.ChargeRepository) *UseCase {
	return &UseCase{charges: charges}
}

func (uc *UseCase) Execute(ctx context.Context, txID string) (*Response, error) {
	if uc.charges == nil {
		return nil, ErrStoreDisabled
	}

	c, err := uc.charges.FindByTxID(ctx, txID)
	if err != nil {
		return nil, err
	}

	return &Response{
		TxID:          c.TxID(),
		PayeeKey:      c.PayeeKey(),
		Amount:        c.Amount(),
		Status:        c.Status(),
		PixCopiaECola: c.PixCopiaECola(),
		CreatedAt:     c.CreatedAt(),
	}, nil
}
