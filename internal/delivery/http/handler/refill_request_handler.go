package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/usecase"
	"mediscript-server/pkg/response"
	"mediscript-server/pkg/validator"
)

type RefillRequestHandler struct {
	requestUsecase usecase.RefillRequestUsecase
	validator      *validator.CustomValidator
}

func NewRefillRequestHandler(requestUsecase usecase.RefillRequestUsecase, validator *validator.CustomValidator) *RefillRequestHandler {
	return &RefillRequestHandler{
		requestUsecase: requestUsecase,
		validator:      validator,
	}
}

// Submit turns the caller's cart into a pending refill request.
func (h *RefillRequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitRefillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.requestUsecase.Submit(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmptyCart:
			response.BadRequest(w, "Cart is empty")
		default:
			response.InternalServerError(w, "Failed to submit refill request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Refill request submitted", result)
}

func (h *RefillRequestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestUsecase.ListMine(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list refill requests")
		return
	}

	response.Success(w, http.StatusOK, "", requests)
}

func (h *RefillRequestHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid request id")
		return
	}

	request, err := h.requestUsecase.GetMine(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Refill request not found")
		default:
			response.InternalServerError(w, "Failed to load refill request")
		}
		return
	}

	response.Success(w, http.StatusOK, "", request)
}

func (h *RefillRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	requests, err := h.requestUsecase.List(r.Context(), status)
	if err != nil {
		response.InternalServerError(w, "Failed to list refill requests")
		return
	}

	response.Success(w, http.StatusOK, "", requests)
}

func (h *RefillRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid request id")
		return
	}

	request, err := h.requestUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Refill request not found")
		default:
			response.InternalServerError(w, "Failed to load refill request")
		}
		return
	}

	response.Success(w, http.StatusOK, "", request)
}

func (h *RefillRequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.requestUsecase.Approve, "Refill request approved")
}

func (h *RefillRequestHandler) Decline(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.requestUsecase.Decline, "Refill request declined")
}

func (h *RefillRequestHandler) setStatus(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, id uint) error, message string) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid request id")
		return
	}

	if err := apply(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Refill request not found")
		default:
			response.InternalServerError(w, "Failed to update refill request")
		}
		return
	}

	response.Success(w, http.StatusOK, message, nil)
}

func (h *RefillRequestHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid request id")
		return
	}

	if err := h.requestUsecase.MarkDelivered(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrDeliveryNotAllowed:
			response.Conflict(w, "Request is not in approved state")
		default:
			response.InternalServerError(w, "Failed to mark request delivered")
		}
		return
	}

	response.Success(w, http.StatusOK, "Refill request marked delivered", nil)
}

func (h *RefillRequestHandler) Archive(w http.ResponseWriter, r *http.Request) {
	archived, err := h.requestUsecase.ArchiveFinished(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to archive refill requests")
		return
	}

	response.Success(w, http.StatusOK, "Finished refill requests archived", dto.ArchiveResponse{Archived: archived})
}

func (h *RefillRequestHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.requestUsecase.ListHistory(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list request history")
		return
	}

	response.Success(w, http.StatusOK, "", history)
}
