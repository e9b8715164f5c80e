package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"marblemanager/internal/admin"
	"marblemanager/internal/auth"
	"marblemanager/internal/config"
	"marblemanager/internal/infrastructure/logger"
	"marblemanager/internal/infrastructure/mysql"
	"marblemanager/internal/metrics"
	"marblemanager/internal/order"
	"marblemanager/internal/plan"
	"marblemanager/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	m := metrics.New()

	authCtrl, authMw := auth.NewModule(db, cfg, zapLogger)
	planCtrl := plan.NewModule(db, zapLogger)
	orderCtrl := order.NewModule(db, cfg, m, zapLogger)
	adminCtrl := admin.NewModule(db, m, zapLogger)

	router := server.NewRouter(authCtrl, authMw, planCtrl, orderCtrl, adminCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
