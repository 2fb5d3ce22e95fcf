package generateqr

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/entity"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/payment"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/qrcode"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/repository"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/payment Client
//go:generate mockgen -destination=mocks/qrcode_mocks.go -package=mocks github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/qrcode Generator
//go:generate mockgen -destination=mocks/repository_mocks.go -package=mocks github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/repository ChargeRepository

type Request struct {
	Amount   decimal.Decimal
	PayeeKey string
}

type Response struct {
	Charge *payment.Response
}

type UseCase struct {
	client    payment.Client
	generator qrcode.Generator
	charges   repository.ChargeRepository
	logger    *slog.Logger
}

// NewUseCase wires the charge flow. charges may be nil when no store is
// configured.
func NewUseCase(
	client payment.Client,
	generator qrcode.Generator,
	charges repository.ChargeRepository,
	logger *slog.Logger,
) *UseCase {
	return &UseCase{
		client:    client,
		generator: generator,
		charges:   charges,
		logger:    logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	charge, err := uc.client.GenerateQRCode(ctx, req.Amount, req.PayeeKey)
	if err != nil {
		return nil, err
	}

	uc.record(ctx, req, charge)

	return &Response{Charge: charge}, nil
}

// RenderPNG issues a charge and returns its scannable QR code.
func (uc *UseCase) RenderPNG(ctx context.Context, req Request) ([]byte, error) {
	resp, err := uc.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	return uc.generator.Generate(qrcode.QRData{
		Image:   string(resp.Charge.QRCodeImage),
		Payload: string(resp.Charge.CobData.PixCopiaECola),
	})
}

// record keeps an audit row for charges the service identified. A failing
// store never fails the charge itself.
func (uc *UseCase) record(ctx context.Context, req Request, charge *payment.Response) {
	if uc.charges == nil || charge.CobData.TxID == "" {
		return
	}

	c := entity.NewCharge(
		string(charge.CobData.TxID),
		req.PayeeKey,
		req.Amount,
		string(charge.CobData.Status),
		string(charge.CobData.PixCopiaECola),
	)
	if err := uc.charges.Save(ctx, c); err != nil {
		uc.logger.WarnContext(ctx, "charge record not saved",
			"txid", charge.CobData.TxID,
			"error", err,
		)
	}
}
