package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"umbrella-share-backend/internal/domain"
	"umbrella-share-backend/internal/service"
)

type UmbrellaHandler struct {
	umbrellaSvc service.UmbrellaService
	validate    *validator.Validate
}

func NewUmbrellaHandler(umbrellaSvc service.UmbrellaService, validate *validator.Validate) *UmbrellaHandler {
	return &UmbrellaHandler{umbrellaSvc: umbrellaSvc, validate: validate}
}

type umbrellaRequest struct {
	UmbrellaID string `json:"umbrellaId" validate:"required"`
	StationID  string `json:"stationId" validate:"required"`
	Color      string `json:"color"`
	Size       string `json:"size" validate:"omitempty,oneof=small medium large"`
	Status     string `json:"status" validate:"omitempty,oneof=available borrowed maintenance"`
	IsActive   *bool  `json:"isActive"`
}

func (h *UmbrellaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req umbrellaRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	umbrella := &domain.Umbrella{
		UmbrellaID: req.UmbrellaID,
		StationID:  req.StationID,
		Color:      req.Color,
		Size:       domain.UmbrellaSize(req.Size),
		Status:     domain.UmbrellaStatus(req.Status),
		IsActive:   true,
	}
	if req.IsActive != nil {
		umbrella.IsActive = *req.IsActive
	}

	if err := h.umbrellaSvc.Create(r.Context(), umbrella); err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusCreated, umbrella)
}

func (h *UmbrellaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existing, err := h.umbrellaSvc.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	var req umbrellaRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing.UmbrellaID = req.UmbrellaID
	existing.StationID = req.StationID
	existing.Color = req.Color
	if req.Size != "" {
		existing.Size = domain.UmbrellaSize(req.Size)
	}
	if req.Status != "" {
		existing.Status = domain.UmbrellaStatus(req.Status)
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := h.umbrellaSvc.Update(r.Context(), existing); err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, existing)
}

func (h *UmbrellaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.umbrellaSvc.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Umbrella deleted successfully", nil)
}
