package main

import (
	"net/http"

	"MovieBase/internal/config"
	"MovieBase/internal/handlers"
	"MovieBase/internal/middleware"
	"MovieBase/internal/repo"
	"MovieBase/internal/service"
	"MovieBase/internal/token"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	tokens := token.NewManager(cfg.AuthSecret, cfg.TokenTTL)

	userRepo := repo.NewUserRepository(gormDB)
	movieRepo := repo.NewMovieRepository(gormDB)

	userService := service.NewUserService(userRepo, tokens)
	movieService := service.NewMovieService(movieRepo, service.DefaultMoviePolicy())

	h := handlers.NewHandler(userService, movieService, tokens, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"TokenTTL", cfg.TokenTTL,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
