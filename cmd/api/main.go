package main

import (
	"fmt"
	"net/http"

	"github.com/sriram315/project-dashboard-go/internal/config"
	"github.com/sriram315/project-dashboard-go/internal/domain/scope"
	appHTTP "github.com/sriram315/project-dashboard-go/internal/handler/http"
	"github.com/sriram315/project-dashboard-go/internal/pkg/database"
	"github.com/sriram315/project-dashboard-go/internal/pkg/jwt"
	"github.com/sriram315/project-dashboard-go/internal/repository/postgresql"
	dashboardService "github.com/sriram315/project-dashboard-go/internal/service/dashboard"
	filterService "github.com/sriram315/project-dashboard-go/internal/service/filter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	catalogRepo := postgresql.NewCatalogRepository(db)
	metricsRepo := postgresql.NewMetricsRepository(db, cfg.Location())
	preferenceRepo := postgresql.NewPreferenceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	persistence := filterService.NewPersistence(preferenceRepo)
	resolver := scope.NewResolver(cfg.Location())
	dashboardSvc := dashboardService.NewDashboardService(catalogRepo, metricsRepo, persistence, resolver)

	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		JWTService,
		dashboardHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
