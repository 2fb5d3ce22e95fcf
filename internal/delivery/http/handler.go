package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/payment"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/qrcode"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/repository"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/usecase/generateqr"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/usecase/lookup"
)

const maxBodyBytes = 1 << 16

type Handler struct {
	generateQRUC *generateqr.UseCase
	lookupUC     *lookup.UseCase
	validate     *validator.Validate
	logger       *slog.Logger
}

func NewHandler(generateQRUC *generateqr.UseCase, lookupUC *lookup.UseCase, logger *slog.Logger) *Handler {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	return &Handler{
		generateQRUC: generateQRUC,
		lookupUC:     lookupUC,
		validate:     v,
		logger:       logger,
	}
}

type ChargeRequest struct {
	Amount   decimal.Decimal `json:"amount"    validate:"gt=0"`
	PayeeKey string          `json:"payee_key" validate:"required,max=77"`
}

type ChargeRecordResponse struct {
	TxID          string `json:"txid"`
	PayeeKey      string `json:"payee_key"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	PixCopiaECola string `json:"pix_copia_e_cola"`
	CreatedAt     string `json:"created_at"`
}

type errorResponse struct {
	Error          string `json:"error"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
}

// HandleCreateCharge returns the PIX service reply unchanged.
func (h *Handler) HandleCreateCharge(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCharge(w, r)
	if !ok {
		return
	}

	resp, err := h.generateQRUC.Execute(r.Context(), generateqr.Request{
		Amount:   req.Amount,
		PayeeKey: req.PayeeKey,
	})
	if err != nil {
		h.writeChargeError(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(resp.Charge.Raw)
}

func (h *Handler) HandleCreateChargeQR(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCharge(w, r)
	if !ok {
		return
	}

	png, err := h.generateQRUC.RenderPNG(r.Context(), generateqr.Request{
		Amount:   req.Amount,
		PayeeKey: req.PayeeKey,
	})
	if err != nil {
		h.writeChargeError(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}

func (h *Handler) HandleGetCharge(w http.ResponseWriter, r *http.Request) {
	txID := chi.URLParam(r, "txid")
	if txID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "txid required"})
		return
	}

	resp, err := h.lookupUC.Execute(r.Context(), txID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "charge not found"})
		return
	case errors.Is(err, lookup.ErrStoreDisabled):
		writeJSON(w, http.StatusNotImplemented, errorResponse{Error: err.Error()})
		return
	case err != nil:
		h.logger.ErrorContext(r.Context(), "charge lookup failed", "txid", txID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "charge lookup failed"})
		return
	}

	writeJSON(w, http.StatusOK, ChargeRecordResponse{
		TxID:          resp.TxID,
		PayeeKey:      resp.PayeeKey,
		Amount:        resp.Amount.StringFixed(2),
		Status:        resp.Status,
		PixCopiaECola: resp.PixCopiaECola,
		CreatedAt:     resp.CreatedAt.UTC().Format(time.RFC3339),
	})
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeCharge(w http.ResponseWriter, r *http.Request) (*ChargeRequest, bool) {
	var req ChargeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return nil, false
	}

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validationMessage(err)})
		return nil, false
	}

	return &req, true
}

func (h *Handler) writeChargeError(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		statusErr *payment.StatusError
		decodeErr *payment.DecodeError
	)

	switch {
	case errors.As(err, &statusErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:          "pix service rejected the charge",
			UpstreamStatus: statusErr.Code,
		})
	case errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusGatewayTimeout, errorResponse{Error: "pix service timed out"})
	case errors.Is(err, payment.ErrNoResult):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: payment.ErrNoResult.Error()})
	case errors.As(err, &decodeErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "pix service sent an unreadable reply"})
	case errors.Is(err, qrcode.ErrNoPayload):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	default:
		h.logger.ErrorContext(ctx, "charge failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "charge failed"})
	}
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	switch verrs[0].Field() {
	case "Amount":
		return "amount must be positive"
	case "PayeeKey":
		return "payee_key is required and at most 77 characters"
	default:
		return "invalid " + verrs[0].Field()
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
