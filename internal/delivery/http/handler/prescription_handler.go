package handler

import (
	"encoding/json"
	"net/http"

	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/usecase"
	"mediscript-server/pkg/response"
	"mediscript-server/pkg/validator"

	"github.com/gorilla/mux"
)

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	catalogUsecase      usecase.CatalogUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(
	prescriptionUsecase usecase.PrescriptionUsecase,
	catalogUsecase usecase.CatalogUsecase,
	validator *validator.CustomValidator,
) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		catalogUsecase:      catalogUsecase,
		validator:           validator,
	}
}

// Create writes a new prescription for the patient named in the body.
func (h *PrescriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.prescriptionUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create prescription")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription created", result)
}

func (h *PrescriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid prescription id")
		return
	}

	prescription, err := h.prescriptionUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		default:
			response.InternalServerError(w, "Failed to load prescription")
		}
		return
	}

	response.Success(w, http.StatusOK, "", prescription)
}

// PatientOverview serves the prescribe form: profile plus recent history.
func (h *PrescriptionHandler) PatientOverview(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patientId"]
	if patientID == "" {
		response.BadRequest(w, "Invalid patient id")
		return
	}

	overview, err := h.prescriptionUsecase.PatientOverview(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to load patient overview")
		}
		return
	}

	response.Success(w, http.StatusOK, "", overview)
}

// ActiveMedicines feeds the medicine picker on the prescribe form.
func (h *PrescriptionHandler) ActiveMedicines(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.catalogUsecase.ListActive(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list medicines")
		return
	}

	response.Success(w, http.StatusOK, "", medicines)
}

func (h *PrescriptionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	prescriptions, err := h.prescriptionUsecase.ListMine(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "", prescriptions)
}

func (h *PrescriptionHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid prescription id")
		return
	}

	prescription, err := h.prescriptionUsecase.GetMine(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		default:
			response.InternalServerError(w, "Failed to load prescription")
		}
		return
	}

	response.Success(w, http.StatusOK, "", prescription)
}
