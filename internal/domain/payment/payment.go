package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// Request is the charge a caller asks the PIX service to issue. Amount and
// PayeeKey are passed through as given.
type Request struct {
	Amount   decimal.Decimal
	PayeeKey string
}

// Response is the PIX service reply. Raw keeps the body exactly as received
// so fields the typed view does not know about are not lost. The typed view
// never rejects well-formed JSON: leaves of an unexpected type are coerced or
// left empty.
type Response struct {
	QRCodeImage Text    `json:"qrCodeImage"`
	CobData     CobData `json:"cobData"`

	Raw []byte `json:"-"`
}

type CobData struct {
	Calendario         Calendario `json:"calendario"`
	TxID               Text       `json:"txid"`
	Revisao            Int        `json:"revisao"`
	Loc                Loc        `json:"loc"`
	Location           Text       `json:"location"`
	Status             Text       `json:"status"`
	Valor              Valor      `json:"valor"`
	Chave              Text       `json:"chave"`
	SolicitacaoPagador Text       `json:"solicitacaoPagador"`
	PixCopiaECola      Text       `json:"pixCopiaECola"`
}

type Calendario struct {
	Criacao   Text `json:"criacao"`
	Expiracao Int  `json:"expiracao"`
}

type Loc struct {
	ID       Int  `json:"id"`
	Location Text `json:"location"`
	TipoCob  Text `json:"tipoCob"`
}

type Valor struct {
	Original Text `json:"original"`
}

type Client interface {
	GenerateQRCode(ctx context.Context, amount decimal.Decimal, payeeKey string) (*Response, error)
}
