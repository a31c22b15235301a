package main

import (
	"html/template"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ravi-codingcity/Origin-Frontend/internal/config"
	"github.com/ravi-codingcity/Origin-Frontend/internal/forms"
	"github.com/ravi-codingcity/Origin-Frontend/internal/freight"
	"github.com/ravi-codingcity/Origin-Frontend/internal/handlers"
	"github.com/ravi-codingcity/Origin-Frontend/internal/logger"
	"github.com/ravi-codingcity/Origin-Frontend/internal/middleware"
	"github.com/ravi-codingcity/Origin-Frontend/internal/refdata"
	"github.com/ravi-codingcity/Origin-Frontend/internal/session"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Initialize(logger.ParseLevel(cfg.LogLevel), cfg.IsDevelopment())

	db, err := session.Initialize(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	if err := session.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	store := session.NewSQLiteStore(db, cfg.SessionDuration)
	client := freight.New(cfg.BackendBaseURL, store, cfg.RequestTimeout)
	controller := forms.NewController(client, cfg)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"sequence": func(n int) []int {
			result := make([]int, n)
			for i := 0; i < n; i++ {
				result[i] = i
			}
			return result
		},
		"currencyName": func(symbol string) string {
			if name, ok := refdata.CurrencySymbols[symbol]; ok {
				return name
			}
			return symbol
		},
	}

	r.SetFuncMap(funcMap)
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	r.Use(middleware.RateLimit(cfg))

	h := handlers.New(cfg, store, client, controller)
	handlers.SetupRoutes(r, h)

	logger.Info("Server starting", "port", cfg.Port, "backend", cfg.BackendBaseURL)
	log.Fatal(r.Run(":" + cfg.Port))
}
