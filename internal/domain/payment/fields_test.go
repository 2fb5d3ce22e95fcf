package payment_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/payment"
)

func TestText_UnmarshalJSON(t *testing.T) {
	cases := map[string]payment.Text{
		`"ATIVA"`:      "ATIVA",
		`"a\"b"`:       `a"b`,
		`25.5`:         "25.5",
		`1e3`:          "1e3",
		`true`:         "true",
		`null`:         "",
		`{"v":"x"}`:    "",
		`["x","y"]`:    "",
		`  "padded"  `: "padded",
	}

	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			var got payment.Text
			require.NoError(t, json.Unmarshal([]byte(in), &got))
			assert.Equal(t, want, got)
		})
	}
}

func TestInt_UnmarshalJSON(t *testing.T) {
	cases := map[string]payment.Int{
		`3600`:     3600,
		`"3600"`:   3600,
		`" 42 "`:   42,
		`86400.0`:  86400,
		`"12.9"`:   12,
		`-7`:       -7,
		`"soon"`:   0,
		`null`:     0,
		`true`:     0,
		`{"s":60}`: 0,
	}

	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			var got payment.Int
			require.NoError(t, json.Unmarshal([]byte(in), &got))
			assert.Equal(t, want, got)
		})
	}
}

func TestResponse_UnmarshalJSON_NonObjectParts(t *testing.T) {
	var resp payment.Response
	require.NoError(t, json.Unmarshal([]byte(`{
		"qrCodeImage": 0,
		"cobData": {
			"calendario": "2024-05-01",
			"loc": 789,
			"valor": ["25.50"],
			"chave": "user@bank.com"
		}
	}`), &resp))

	assert.Equal(t, payment.Text("0"), resp.QRCodeImage)
	assert.Equal(t, payment.Calendario{}, resp.CobData.Calendario)
	assert.Equal(t, payment.Loc{}, resp.CobData.Loc)
	assert.Equal(t, payment.Valor{}, resp.CobData.Valor)
	assert.Equal(t, payment.Text("user@bank.com"), resp.CobData.Chave)
}

func TestResponse_UnmarshalJSON_NotAnObject(t *testing.T) {
	var resp payment.Response
	require.NoError(t, json.Unmarshal([]byte(`"issued"`), &resp))
	assert.Equal(t, payment.Response{}, resp)
}
