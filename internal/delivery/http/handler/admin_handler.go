package handler

import (
	"net/http"

	"mediscript-server/internal/usecase"
	"mediscript-server/pkg/response"

	"github.com/gorilla/mux"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
	}
}

func (h *AdminHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.adminUsecase.Summary(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load summary")
		return
	}

	response.Success(w, http.StatusOK, "", summary)
}

func (h *AdminHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.adminUsecase.ListDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "", doctors)
}

func (h *AdminHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.adminUsecase.ListPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list patients")
		return
	}

	response.Success(w, http.StatusOK, "", patients)
}

func (h *AdminHandler) RemoveDoctor(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := h.adminUsecase.RemoveDoctor(r.Context(), userID); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to remove doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor removed", nil)
}

func (h *AdminHandler) RemovePatient(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := h.adminUsecase.RemovePatient(r.Context(), userID); err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to remove patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient removed", nil)
}
