package payment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/matoboco/pay-by-square/internal/config"
	"github.com/matoboco/pay-by-square/internal/middleware"
	"github.com/matoboco/pay-by-square/internal/model"
	"github.com/matoboco/pay-by-square/internal/qrimage"
)

type PaymentHandler struct {
	service *Service
	qr      *config.QRConfig
}

func NewPaymentHandler(service *Service, qr *config.QRConfig) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		qr:      qr,
	}
}

var validate = validator.New()

// GenerateCode produces the Pay by Square text code for a payment request.
func (ph *PaymentHandler) GenerateCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := middleware.GetLogger(ctx)

	req, ok := ph.decodePayment(w, r, logger)
	if !ok {
		return
	}

	code, err := ph.service.Code(ctx, req)
	if err != nil {
		ph.writeError(w, logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(model.CodeResponse{Code: code}); err != nil {
		logger.Error().Err(err).Msg("failed to encode code response")
	}
}

// GenerateQr produces the QR PNG for a payment request. Query parameters
// size and frame override the configured defaults.
func (ph *PaymentHandler) GenerateQr(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := middleware.GetLogger(ctx)

	req, ok := ph.decodePayment(w, r, logger)
	if !ok {
		return
	}

	opts, err := ph.parseQrOptions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	png, err := ph.service.QrImage(ctx, req, opts)
	if err != nil {
		ph.writeError(w, logger, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(png); err != nil {
		logger.Error().Err(err).Msg("failed to write image response")
	}
}

func (ph *PaymentHandler) decodePayment(w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) (*model.PaymentRequest, bool) {
	var req model.PaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error().Err(err).Msg("failed to decode payment request")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return nil, false
	}

	if err := validate.Struct(&req); err != nil {
		logger.Error().Err(err).Msg("validation error on payment request")
		http.Error(w, "Validation error: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}

	return &req, true
}

func (ph *PaymentHandler) parseQrOptions(r *http.Request) (model.QrOptions, error) {
	opts := model.QrOptions{
		WithFrame: ph.qr.WithFrame,
		QrSize:    ph.qr.DefaultSize,
	}

	if s := r.URL.Query().Get("size"); s != "" {
		size, err := strconv.Atoi(s)
		if err != nil || size < ph.qr.MinSize || size > ph.qr.MaxSize {
			return opts, &optionsError{param: "size", min: ph.qr.MinSize, max: ph.qr.MaxSize}
		}
		opts.QrSize = size
	}

	if f := r.URL.Query().Get("frame"); f != "" {
		withFrame, err := strconv.ParseBool(f)
		if err != nil {
			return opts, &optionsError{param: "frame"}
		}
		opts.WithFrame = withFrame
	}

	return opts, nil
}

type optionsError struct {
	param string
	min   int
	max   int
}

func (e *optionsError) Error() string {
	if e.param == "size" {
		return "Invalid size parameter: must be between " + strconv.Itoa(e.min) + " and " + strconv.Itoa(e.max)
	}
	return "Invalid " + e.param + " parameter"
}

// writeError maps pipeline failures to HTTP responses. Client-caused
// validation failures surface their message; everything else is logged and
// hidden behind a generic 500.
func (ph *PaymentHandler) writeError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	var perr *Error
	if errors.As(err, &perr) && perr.Kind.Client() {
		logger.Warn().Err(err).Msg("rejected payment request")
		http.Error(w, perr.Error(), http.StatusBadRequest)
		return
	}

	var ierr *qrimage.Error
	if errors.As(err, &ierr) {
		logger.Error().Err(err).Int("image_error_kind", int(ierr.Kind)).Msg("image stage failed")
	} else {
		logger.Error().Err(err).Msg("encode pipeline failed")
	}
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// HealthCheck reports service liveness.
func (ph *PaymentHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "pay-by-square",
	}); err != nil {
		middleware.GetLogger(r.Context()).Error().Err(err).Msg("failed to encode health response")
	}
}
