package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerOpenRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /token", handler.Login)
}

func registerProtectedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerTeamRoutes(mux, handler, verifier)
	registerPerformanceRoutes(mux, handler, verifier)
	registerStrategyRoutes(mux, handler, verifier)
	registerScheduleRoutes(mux, handler, verifier)
	registerReportRoutes(mux, handler, verifier)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /teams/{$}", RequireAuth(verifier, http.HandlerFunc(handler.UpsertTeam)))
	mux.Handle("GET /teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.GetTeam)))
}

func registerPerformanceRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /driver_performance/{$}", RequireAuth(verifier, http.HandlerFunc(handler.UpsertDriverPerformance)))
	mux.Handle("GET /driver_performance/{driverID}", RequireAuth(verifier, http.HandlerFunc(handler.GetDriverPerformance)))
}

func registerStrategyRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /race_strategy/{$}", RequireAuth(verifier, http.HandlerFunc(handler.UpsertRaceStrategy)))
	mux.Handle("GET /race_strategy/{raceID}", RequireAuth(verifier, http.HandlerFunc(handler.GetRaceStrategy)))
	mux.Handle("PUT /race_strategy/{raceID}/plan", RequireAuth(verifier, http.HandlerFunc(handler.UpdateStrategyPlan)))
}

func registerScheduleRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /engineer_management/schedules/{$}", RequireAuth(verifier, http.HandlerFunc(handler.CreateSchedule)))
	mux.Handle("GET /engineer_management/schedules/{$}", RequireAuth(verifier, http.HandlerFunc(handler.ListSchedules)))
	mux.Handle("GET /engineer_management/schedules/engineer/{engineerID}", RequireAuth(verifier, http.HandlerFunc(handler.ListSchedulesByEngineer)))
	mux.Handle("PUT /engineer_management/schedules/{scheduleID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateSchedule)))
}

func registerReportRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /report_system/generate/{raceID}", RequireAuth(verifier, http.HandlerFunc(handler.GenerateRaceReport)))
	mux.Handle("GET /report_system/{reportID}", RequireAuth(verifier, http.HandlerFunc(handler.GetRaceReport)))
}
