package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/medtrack/internal/service"
)

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	medsService      service.MedicationsServiceI
	adherenceService service.AdherenceServiceI
	reportsService   service.ReportsServiceI
	jwtService       JWTServiceI
}

type ServicesList struct {
	UserService      service.UserServiceI
	MedsService      service.MedicationsServiceI
	AdherenceService service.AdherenceServiceI
	ReportsService   service.ReportsServiceI
	JwtService       JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		medsService:      servicesOptions.MedsService,
		adherenceService: servicesOptions.AdherenceService,
		reportsService:   servicesOptions.ReportsService,
		jwtService:       servicesOptions.JwtService,
	}
}

func (s *Server) Run(addr string) error {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/auth/me", s.Me)

			r.Get("/medications", s.GetMedications)
			r.Post("/medications", s.CreateMedication)
			r.Get("/medications/{id}", s.GetMedication)
			r.Put("/medications/{id}", s.UpdateMedication)
			r.Delete("/medications/{id}", s.DeleteMedication)

			r.Get("/adherence/today", s.TodayReminders)
			r.Post("/adherence/log", s.MarkDose)
			r.Put("/adherence/log/{id}", s.UpdateLog)
			r.Get("/adherence/logs", s.GetLogs)
			r.Get("/adherence/medication/{id}", s.GetMedicationLogs)

			r.Get("/reports/stats", s.GetStats)
			r.Get("/reports/medication-wise", s.GetMedicationWise)
			r.Get("/reports/weekly-trend", s.GetWeeklyTrend)
		})
	})
	return http.ListenAndServe(addr, s.mx)
}
