package qrgenerator

import (
	"encoding/base64"
	"fmt"
	"strings"

	qr "github.com/skip2/go-qrcode"

	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/qrcode"
)

const dataURIMarker = "base64,"

type Generator struct {
	size int
}

func NewGenerator(size int) *Generator {
	return &Generator{size: size}
}

// Generate prefers the image the PIX service rendered and falls back to
// encoding the copy-and-paste payload locally.
func (g *Generator) Generate(data qrcode.QRData) ([]byte, error) {
	if data.Image != "" {
		return decodeImage(data.Image)
	}
	if data.Payload != "" {
		return qr.Encode(data.Payload, qr.Medium, g.size)
	}
	return nil, qrcode.ErrNoPayload
}

func decodeImage(image string) ([]byte, error) {
	if _, after, found := strings.Cut(image, dataURIMarker); found {
		image = after
	}
	image = strings.TrimSpace(image)
	png, err := base64.StdEncoding.DecodeString(image)
	if err != nil && !strings.HasSuffix(image, "=") {
		png, err = base64.RawStdEncoding.DecodeString(image)
	}
	if err != nil {
		return nil, fmt.Errorf("decode qr image: %w", err)
	}
	return png, nil
}
