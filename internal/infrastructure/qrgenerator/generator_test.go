package qrgenerator_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/qrcode"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/infrastructure/qrgenerator"
)

func TestGenerator_EncodesPayload(t *testing.T) {
	gen := qrgenerator.NewGenerator(256)

	out, err := gen.Generate(qrcode.QRData{Payload: "00020101021226830014BR.GOV.BCB.PIX"})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestGenerator_DecodesServiceImage(t *testing.T) {
	gen := qrgenerator.NewGenerator(256)
	want, err := gen.Generate(qrcode.QRData{Payload: "payload"})
	require.NoError(t, err)
	encoded := base64.StdEncoding.EncodeToString(want)

	t.Run("plain", func(t *testing.T) {
		got, err := gen.Generate(qrcode.QRData{Image: encoded, Payload: "ignored"})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("data_uri", func(t *testing.T) {
		got, err := gen.Generate(qrcode.QRData{Image: "data:image/png;base64," + encoded})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestGenerator_DecodesUnpaddedImage(t *testing.T) {
	want := []byte("\x89PNG")
	require.Equal(t, "iVBORw==", base64.StdEncoding.EncodeToString(want))

	for name, image := range map[string]string{
		"unpadded":          "iVBORw",
		"unpadded_data_uri": "data:image/png;base64,iVBORw",
		"line_wrapped":      "iVBO\nRw==",
	} {
		t.Run(name, func(t *testing.T) {
			got, err := qrgenerator.NewGenerator(256).Generate(qrcode.QRData{Image: image})
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestGenerator_InvalidImage(t *testing.T) {
	_, err := qrgenerator.NewGenerator(256).Generate(qrcode.QRData{Image: "not base64!"})
	require.Error(t, err)
}

func TestGenerator_NoPayload(t *testing.T) {
	_, err := qrgenerator.NewGenerator(256).Generate(qrcode.QRData{})
	require.ErrorIs(t, err, qrcode.ErrNoPayload)
}
