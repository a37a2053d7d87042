package handler

import (
	"io"
	"net/http"
	"strconv"

	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/usecase"
	"mediscript-server/pkg/response"
	"mediscript-server/pkg/validator"

	"github.com/gorilla/mux"
)

const maxUploadSize = 10 << 20 // 10 MiB

type ApplicationHandler struct {
	applicationUsecase usecase.ApplicationUsecase
	validator          *validator.CustomValidator
}

func NewApplicationHandler(applicationUsecase usecase.ApplicationUsecase, validator *validator.CustomValidator) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUsecase: applicationUsecase,
		validator:          validator,
	}
}

// Apply accepts the public multipart doctor application form with an
// optional license PDF.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	age, _ := strconv.Atoi(r.FormValue("age"))
	experience, _ := strconv.Atoi(r.FormValue("experience_years"))

	req := dto.ApplyDoctorRequest{
		DoctorID:        r.FormValue("doctor_id"),
		FullName:        r.FormValue("full_name"),
		Email:           r.FormValue("email"),
		PhoneNumber:     r.FormValue("phone_number"),
		Password:        r.FormValue("password"),
		Age:             age,
		Gender:          r.FormValue("gender"),
		Specialization:  r.FormValue("specialization"),
		BMDCNumber:      r.FormValue("bmdc_number"),
		CurrentHospital: r.FormValue("current_hospital"),
		ExperienceYears: experience,
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	var license io.Reader
	licenseName := ""
	if file, header, err := r.FormFile("license"); err == nil {
		defer file.Close()
		license = file
		licenseName = header.Filename
	}

	app, err := h.applicationUsecase.Apply(r.Context(), &req, license, licenseName)
	if err != nil {
		switch err {
		case usecase.ErrApplicationConflict:
			response.Conflict(w, "Doctor ID, email or BMDC number already registered")
		default:
			response.InternalServerError(w, "Failed to submit application")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Application submitted", app)
}

func (h *ApplicationHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	apps, err := h.applicationUsecase.ListPending(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list applications")
		return
	}

	response.Success(w, http.StatusOK, "", apps)
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]

	app, err := h.applicationUsecase.Get(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrApplicationNotFound:
			response.NotFound(w, "Application not found")
		default:
			response.InternalServerError(w, "Failed to load application")
		}
		return
	}

	response.Success(w, http.StatusOK, "", app)
}

func (h *ApplicationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]

	if err := h.applicationUsecase.Approve(r.Context(), doctorID); err != nil {
		switch err {
		case usecase.ErrApplicationNotFound:
			response.NotFound(w, "Application not found")
		case usecase.ErrApplicationConflict:
			response.Conflict(w, "Doctor ID or email already registered")
		default:
			response.InternalServerError(w, "Failed to approve application")
		}
		return
	}

	response.Success(w, http.StatusOK, "Application approved", nil)
}

func (h *ApplicationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]

	if err := h.applicationUsecase.Reject(r.Context(), doctorID); err != nil {
		switch err {
		case usecase.ErrApplicationNotFound:
			response.NotFound(w, "Application not found")
		default:
			response.InternalServerError(w, "Failed to reject application")
		}
		return
	}

	response.Success(w, http.StatusOK, "Application rejected", nil)
}
