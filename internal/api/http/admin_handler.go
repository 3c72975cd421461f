package http

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"umbrella-share-backend/internal/service"
)

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// Initialize rebuilds the station and umbrella fleet from the campus seed
// set. Existing borrow history goes with it, so this is admin-only.
func (h *AdminHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	stations, umbrellas, err := h.adminSvc.Initialize(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	msg := fmt.Sprintf("Initialized %d stations with %d umbrellas", stations, umbrellas)
	respondMessage(w, http.StatusOK, msg, map[string]int{
		"stations":  stations,
		"umbrellas": umbrellas,
	})
}

func (h *AdminHandler) ResetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]
	record, err := h.adminSvc.ResetUserBorrow(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if record == nil {
		respondMessage(w, http.StatusOK, "User has no active borrow", nil)
		return
	}
	respondMessage(w, http.StatusOK, "User borrow state reset successfully", record)
}

func (h *AdminHandler) ListStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.adminSvc.ListStations(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, stations)
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminSvc.ListUsers(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, users)
}

func (h *AdminHandler) ListUmbrellas(w http.ResponseWriter, r *http.Request) {
	umbrellas, err := h.adminSvc.ListUmbrellas(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, umbrellas)
}

func (h *AdminHandler) ListBorrowRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.adminSvc.ListBorrowRecords(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, records)
}

func (h *AdminHandler) ListActiveBorrows(w http.ResponseWriter, r *http.Request) {
	records, err := h.adminSvc.ListActiveBorrows(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, records)
}
