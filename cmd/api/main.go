package main

import (
	"fmt"
	"net/http"

	"github.com/andalanhr/hrops-backend-go/internal/config"
	appHTTP "github.com/andalanhr/hrops-backend-go/internal/handler/http"
	"github.com/andalanhr/hrops-backend-go/internal/pkg/database"
	"github.com/andalanhr/hrops-backend-go/internal/pkg/jwt"
	"github.com/andalanhr/hrops-backend-go/internal/repository/postgresql"
	dashboardService "github.com/andalanhr/hrops-backend-go/internal/service/dashboard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc, !cfg.IsProduction())

	router := appHTTP.NewRouter(cfg, JWTService, dashboardHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
