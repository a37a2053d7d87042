package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/usecase"
	"mediscript-server/pkg/response"
	"mediscript-server/pkg/validator"

	"github.com/gorilla/mux"
)

type MedicineHandler struct {
	catalogUsecase usecase.CatalogUsecase
	validator      *validator.CustomValidator
}

func NewMedicineHandler(catalogUsecase usecase.CatalogUsecase, validator *validator.CustomValidator) *MedicineHandler {
	return &MedicineHandler{
		catalogUsecase: catalogUsecase,
		validator:      validator,
	}
}

func pathID(r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (h *MedicineHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.catalogUsecase.AddMedicine(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to add medicine")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medicine added", medicine)
}

func (h *MedicineHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.catalogUsecase.ListActive(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list medicines")
		return
	}

	response.Success(w, http.StatusOK, "", medicines)
}

// RemoveExpired sweeps expired and out-of-stock medicines into the refill
// queue.
func (h *MedicineHandler) RemoveExpired(w http.ResponseWriter, r *http.Request) {
	processed, err := h.catalogUsecase.RetireExpiredOrDepleted(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to process expired medicines")
		return
	}

	response.Success(w, http.StatusOK, "Expired and depleted medicines moved to refill queue", dto.RetireSweepResponse{Processed: processed})
}

func (h *MedicineHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid medicine id")
		return
	}

	if err := h.catalogUsecase.RemoveManually(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found in active catalog")
		default:
			response.InternalServerError(w, "Failed to remove medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine moved to refill queue", nil)
}

func (h *MedicineHandler) ListRefillQueue(w http.ResponseWriter, r *http.Request) {
	queue, err := h.catalogUsecase.ListRefillQueue(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list refill queue")
		return
	}

	response.Success(w, http.StatusOK, "", queue)
}

func (h *MedicineHandler) Refill(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid medicine id")
		return
	}

	var req dto.RefillMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.catalogUsecase.Refill(r.Context(), id, &req); err != nil {
		switch err {
		case usecase.ErrRefillEntryNotFound:
			response.NotFound(w, "Refill queue entry not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to refill medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine restocked", nil)
}

func (h *MedicineHandler) DeletePermanently(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid medicine id")
		return
	}

	if err := h.catalogUsecase.DeletePermanently(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrRefillEntryNotFound:
			response.NotFound(w, "Refill queue entry not found")
		default:
			response.InternalServerError(w, "Failed to delete medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine permanently removed", nil)
}
