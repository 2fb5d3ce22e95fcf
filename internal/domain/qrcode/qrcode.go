package qrcode

import "errors"

var ErrNoPayload = errors.New("charge carries neither a QR image nor a pix payload")

// QRData is what a scannable code can be built from. Image is the base64 PNG
// the PIX service may return, optionally as a data URI; Payload is the
// "copia e cola" string.
type QRData struct {
	Image   string
	Payload string
}

type Generator interface {
	Generate(data QRData) ([]byte, error)
}
