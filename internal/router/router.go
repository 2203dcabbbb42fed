package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/matoboco/pay-by-square/internal/middleware"
	"github.com/matoboco/pay-by-square/internal/payment"
	"github.com/matoboco/pay-by-square/internal/server"
)

// Version is reported by the version endpoint.
const Version = "1.0.0"

type Handlers struct {
	Payment *payment.PaymentHandler
}

func NewRouter(s *server.Server, h *Handlers) *chi.Mux {
	r := chi.NewRouter()

	mw := middleware.NewMiddlewares(s)

	// Apply middleware in order
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.Config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         3600,
	}))
	r.Use(middleware.RequestID)
	r.Use(mw.Tracing.NewRelicMiddleware())
	r.Use(mw.Tracing.EnhanceTracing)
	r.Use(mw.ContextEnhancer.EnhanceContext)
	r.Use(mw.Global.RequestLogger)

	r.Get("/health", h.Payment.HealthCheck)

	r.Route("/pay-by-square-generator", func(r chi.Router) {
		r.Post("/generate-code", h.Payment.GenerateCode)
		r.Post("/generate-qr", h.Payment.GenerateQr)
		r.Get("/version.txt", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte(Version))
		})
	})

	return r
}
