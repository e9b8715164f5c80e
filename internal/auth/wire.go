package auth

import (
	"database/sql"

	"go.uber.org/zap"

	"marblemanager/internal/auth/controller"
	"marblemanager/internal/auth/repository"
	"marblemanager/internal/auth/service"
	"marblemanager/internal/config"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) (*controller.AuthController, *Middleware) {
	userRepo := repository.NewMySQLUserRepository(db)
	adminRepo := repository.NewMySQLAdminRepository(db)

	jwtSvc := service.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authSvc := service.NewAuthService(userRepo, jwtSvc)

	ctrl := controller.NewAuthController(authSvc, logger)
	mw := NewMiddleware(jwtSvc, adminRepo, logger)

	return ctrl, mw
}
