package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"umbrella-share-backend/internal/security"
	"umbrella-share-backend/internal/service"
)

// RouterDeps carries everything the HTTP surface needs.
type RouterDeps struct {
	Auth     service.AuthService
	Borrow   service.BorrowService
	Station  service.StationService
	Umbrella service.UmbrellaService
	Admin    service.AdminService
	Tokens   security.TokenManager
}

// NewRouter wires the full route table. Three tiers: public, authenticated,
// and admin-only.
func NewRouter(deps RouterDeps) *mux.Router {
	validate := validator.New()

	authHandler := NewAuthHandler(deps.Auth, validate)
	borrowHandler := NewBorrowHandler(deps.Borrow, validate)
	stationHandler := NewStationHandler(deps.Station, deps.Umbrella, validate)
	umbrellaHandler := NewUmbrellaHandler(deps.Umbrella, validate)
	adminHandler := NewAdminHandler(deps.Admin)

	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondMessage(w, http.StatusOK, "ok", nil)
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	authed := api.PathPrefix("").Subrouter()
	authed.Use(AuthMiddleware(deps.Tokens))
	authed.HandleFunc("/auth/profile", authHandler.Profile).Methods(http.MethodGet)
	authed.HandleFunc("/borrow/borrow", borrowHandler.Borrow).Methods(http.MethodPost)
	authed.HandleFunc("/borrow/return", borrowHandler.Return).Methods(http.MethodPost)
	authed.HandleFunc("/borrow/current", borrowHandler.Current).Methods(http.MethodGet)
	authed.HandleFunc("/borrow/history", borrowHandler.History).Methods(http.MethodGet)
	authed.HandleFunc("/stations", stationHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/umbrellas/station/{stationID}", stationHandler.UmbrellasByStation).Methods(http.MethodGet)

	// Station create is admin-gated on both paths.
	api.Handle("/stations",
		AuthMiddleware(deps.Tokens)(AdminOnly(http.HandlerFunc(stationHandler.Create)))).
		Methods(http.MethodPost)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(AuthMiddleware(deps.Tokens), AdminOnly)
	admin.HandleFunc("/initialize", adminHandler.Initialize).Methods(http.MethodPost)
	admin.HandleFunc("/stations", adminHandler.ListStations).Methods(http.MethodGet)
	admin.HandleFunc("/stations", stationHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/stations/{id}", stationHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/stations/{id}", stationHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/users", adminHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/reset", adminHandler.ResetUser).Methods(http.MethodPatch)
	admin.HandleFunc("/umbrellas", adminHandler.ListUmbrellas).Methods(http.MethodGet)
	admin.HandleFunc("/umbrellas", umbrellaHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/umbrellas/{id}", umbrellaHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/umbrellas/{id}", umbrellaHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/borrow-records", adminHandler.ListBorrowRecords).Methods(http.MethodGet)
	admin.HandleFunc("/active-borrows", adminHandler.ListActiveBorrows).Methods(http.MethodGet)

	return r
}
