package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"umbrella-share-backend/internal/service"
)

type BorrowHandler struct {
	borrowSvc service.BorrowService
	validate  *validator.Validate
}

func NewBorrowHandler(borrowSvc service.BorrowService, validate *validator.Validate) *BorrowHandler {
	return &BorrowHandler{borrowSvc: borrowSvc, validate: validate}
}

type borrowRequest struct {
	UmbrellaID string `json:"umbrellaId" validate:"required"`
	StationID  string `json:"stationId" validate:"required"`
}

func (h *BorrowHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization token is not provided")
		return
	}

	var req borrowRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.borrowSvc.Borrow(r.Context(), userID, req.UmbrellaID, req.StationID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Umbrella borrowed successfully", record)
}

func (h *BorrowHandler) Return(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization token is not provided")
		return
	}

	var req borrowRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.borrowSvc.Return(r.Context(), userID, req.UmbrellaID, req.StationID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Umbrella returned successfully", record)
}

func (h *BorrowHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization token is not provided")
		return
	}

	record, err := h.borrowSvc.GetCurrent(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	// record is nil when the user holds nothing; data stays null.
	respondData(w, http.StatusOK, record)
}

func (h *BorrowHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization token is not provided")
		return
	}

	records, err := h.borrowSvc.GetHistory(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, records)
}
