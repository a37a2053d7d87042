package handler

import (
	"encoding/json"
	"net/http"

	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/usecase"
	"mediscript-server/pkg/response"
	"mediscript-server/pkg/validator"
)

type DoctorHandler struct {
	profileUsecase usecase.DoctorProfileUsecase
	validator      *validator.CustomValidator
}

func NewDoctorHandler(profileUsecase usecase.DoctorProfileUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

func (h *DoctorHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileUsecase.GetMine(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Profile not found")
		default:
			response.InternalServerError(w, "Failed to load profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "", profile)
}

func (h *DoctorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateDoctorProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.UpdateMine(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Profile not found")
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated", profile)
}

func (h *DoctorHandler) UpdatePicture(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("picture")
	if err != nil {
		response.BadRequest(w, "Picture file is required")
		return
	}
	defer file.Close()

	profile, err := h.profileUsecase.UpdatePicture(r.Context(), file, header.Filename)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Profile not found")
		default:
			response.InternalServerError(w, "Failed to update picture")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile picture updated", profile)
}
