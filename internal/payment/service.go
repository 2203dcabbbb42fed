package payment

import (
	"context"

	"github.com/matoboco/pay-by-square/internal/middleware"
	"github.com/matoboco/pay-by-square/internal/model"
	"github.com/matoboco/pay-by-square/internal/qrimage"
)

// Service runs the encode pipeline and the image stages. It holds no
// mutable state, so a single instance serves concurrent requests.
type Service struct {
	frame []byte
}

// NewService creates the payment service. frame is the configured frame
// PNG, or nil when none is deployed; the generated default frame is used
// in that case.
func NewService(frame []byte) *Service {
	return &Service{
		frame: frame,
	}
}

// Code validates the request and produces the Pay by Square text code.
func (s *Service) Code(ctx context.Context, p *model.PaymentRequest) (string, error) {
	logger := middleware.GetLogger(ctx)

	if err := Validate(p); err != nil {
		return "", err
	}

	code, err := Encode(p)
	if err != nil {
		return "", err
	}

	logger.Debug().Int("code_length", len(code)).Msg("generated pay by square code")
	return code, nil
}

// QrImage produces the final PNG: text code rendered as a QR symbol,
// optionally composited onto the frame.
func (s *Service) QrImage(ctx context.Context, p *model.PaymentRequest, opts model.QrOptions) ([]byte, error) {
	code, err := s.Code(ctx, p)
	if err != nil {
		return nil, err
	}

	qrPNG, err := qrimage.Render(code, opts.QrSize)
	if err != nil {
		return nil, err
	}

	if !opts.WithFrame {
		return qrPNG, nil
	}

	frame := s.frame
	if frame == nil {
		frame, err = qrimage.DefaultFrame(opts.QrSize)
		if err != nil {
			return nil, err
		}
	}

	return qrimage.Compose(qrPNG, frame)
}
