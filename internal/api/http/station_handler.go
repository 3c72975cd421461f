package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"umbrella-share-backend/internal/domain"
	"umbrella-share-backend/internal/service"
)

type StationHandler struct {
	stationSvc  service.StationService
	umbrellaSvc service.UmbrellaService
	validate    *validator.Validate
}

func NewStationHandler(stationSvc service.StationService, umbrellaSvc service.UmbrellaService, validate *validator.Validate) *StationHandler {
	return &StationHandler{stationSvc: stationSvc, umbrellaSvc: umbrellaSvc, validate: validate}
}

type stationRequest struct {
	Name       string   `json:"name" validate:"required"`
	Location   string   `json:"location" validate:"required"`
	Address    string   `json:"address" validate:"required"`
	TotalSlots int32    `json:"totalSlots" validate:"required,gt=0"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	IsActive   *bool    `json:"isActive"`
}

func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	stations, err := h.stationSvc.ListActive(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, stations)
}

func (h *StationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req stationRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	station := &domain.Station{
		Name:       req.Name,
		Location:   req.Location,
		Address:    req.Address,
		TotalSlots: req.TotalSlots,
		Lat:        req.Lat,
		Lng:        req.Lng,
		IsActive:   true,
	}
	if req.IsActive != nil {
		station.IsActive = *req.IsActive
	}

	if err := h.stationSvc.Create(r.Context(), station); err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusCreated, station)
}

func (h *StationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existing, err := h.stationSvc.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	var req stationRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing.Name = req.Name
	existing.Location = req.Location
	existing.Address = req.Address
	existing.TotalSlots = req.TotalSlots
	existing.Lat = req.Lat
	existing.Lng = req.Lng
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := h.stationSvc.Update(r.Context(), existing); err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, existing)
}

func (h *StationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.stationSvc.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Station deleted successfully", nil)
}

// UmbrellasByStation lists available umbrellas at one station.
func (h *StationHandler) UmbrellasByStation(w http.ResponseWriter, r *http.Request) {
	stationID := mux.Vars(r)["stationID"]
	umbrellas, err := h.umbrellaSvc.ListAvailableByStation(r.Context(), stationID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, umbrellas)
}
