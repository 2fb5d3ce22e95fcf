package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Charge is the local record of a QR code the PIX service issued.
type Charge struct {
	id            uuid.UUID
	txID          string
	payeeKey      string
	amount        decimal.Decimal
	status        string
	pixCopiaECola string
	createdAt     time.Time
}

func NewCharge(txID, payeeKey string, amount decimal.Decimal, status, pixCopiaECola string) *Charge {
	return &Charge{
		id:            uuid.New(),
		txID:          txID,
		payeeKey:      payeeKey,
		amount:        amount,
		status:        status,
		pixCopiaECola: pixCopiaECola,
		createdAt:     time.Now(),
	}
}

func ReconstructCharge(
	id uuid.UUID,
	txID, payeeKey string,
	amount decimal.Decimal,
	status, pixCopiaECola string,
	createdAt time.Time,
) *Charge {
	return &Charge{
		id:            id,
		txID:          txID,
		payeeKey:      payeeKey,
		amount:        amount,
		status:        status,
		pixCopiaECola: pixCopiaECola,
		createdAt:     createdAt,
	}
}

func (c *Charge) ID() uuid.UUID {
	return c.id
}

func (c *Charge) TxID() string {
	return c.txID
}

func (c *Charge) PayeeKey() string {
	return c.payeeKey
}

func (c *Charge) Amount() decimal.Decimal {
	return c.amount
}

func (c *Charge) Status() string {
	return c.status
}

func (c *Charge) PixCopiaECola() string {
	return c.pixCopiaECola
}

func (c *Charge) CreatedAt() time.Time {
	return c.createdAt
}
