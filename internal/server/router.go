package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	admincontroller "marblemanager/internal/admin/controller"
	"marblemanager/internal/auth"
	authcontroller "marblemanager/internal/auth/controller"
	ordercontroller "marblemanager/internal/order/controller"
	plancontroller "marblemanager/internal/plan/controller"
)

func NewRouter(
	authCtrl *authcontroller.AuthController,
	authMw *auth.Middleware,
	planCtrl *plancontroller.PlanController,
	orderCtrl *ordercontroller.OrderController,
	adminCtrl *admincontroller.AdminController,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authCtrl.HandleSignup)
			r.Post("/login", authCtrl.HandleLogin)
			r.Post("/logout", authCtrl.HandleLogout)
		})

		r.Get("/plans", planCtrl.HandleListPlans)

		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireAuth)

			r.Post("/orders", orderCtrl.HandleCreateOrder)
			r.Get("/orders", orderCtrl.HandleListOrders)
			r.Get("/orders/{orderID}/payment", orderCtrl.HandlePaymentInstructions)

			r.Group(func(r chi.Router) {
				r.Use(authMw.RequireAdmin)

				r.Get("/admin/orders", adminCtrl.HandleListOrders)
				r.Patch("/admin/orders/{orderID}/status", adminCtrl.HandleUpdateStatus)
			})
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestId", middleware.GetReqID(r.Context())),
			)
		})
	}
}
