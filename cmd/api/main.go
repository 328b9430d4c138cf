// @title Medication-adherence API
// @description API for medication tracker "Medtrack"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/limbo/medtrack/internal/api"
	"github.com/limbo/medtrack/internal/repository"
	"github.com/limbo/medtrack/internal/service"
	"github.com/limbo/medtrack/pkg/cleanup"
	"github.com/limbo/medtrack/pkg/config"
	jwtservice "github.com/limbo/medtrack/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	medsRepo := repository.NewMedicationsRepo(&dbCfg)
	eventsRepo := repository.NewDoseEventsRepo(&dbCfg)
	userService := service.NewUserService(repository.NewUsersRepo(&dbCfg))
	medsService := service.NewMedicationsService(medsRepo)
	adherenceService := service.NewAdherenceService(medsRepo, eventsRepo)
	reportsService := service.NewReportsService(medsRepo, eventsRepo)
	serv := api.New(&api.ServicesList{
		UserService:      userService,
		MedsService:      medsService,
		AdherenceService: adherenceService,
		ReportsService:   reportsService,
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
