package handler

import (
	"encoding/json"
	"net/http"

	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/usecase"
	"mediscript-server/pkg/response"
	"mediscript-server/pkg/validator"
)

type RefillCartHandler struct {
	cartUsecase usecase.RefillCartUsecase
	validator   *validator.CustomValidator
}

func NewRefillCartHandler(cartUsecase usecase.RefillCartUsecase, validator *validator.CustomValidator) *RefillCartHandler {
	return &RefillCartHandler{
		cartUsecase: cartUsecase,
		validator:   validator,
	}
}

func (h *RefillCartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartUsecase.GetCart(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load cart")
		return
	}

	response.Success(w, http.StatusOK, "", cart)
}

func (h *RefillCartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.cartUsecase.AddToCart(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrLineNotFound:
			response.NotFound(w, "Prescription medicine not found")
		case usecase.ErrNotRefillable:
			response.Forbidden(w, "This medicine is not refillable")
		case usecase.ErrAlreadyInCart:
			response.Conflict(w, "Medicine is already in the cart")
		default:
			response.InternalServerError(w, "Failed to add to cart")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Added to cart", nil)
}

func (h *RefillCartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid cart item id")
		return
	}

	var req dto.UpdateCartQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.cartUsecase.UpdateQuantity(r.Context(), id, req.Quantity); err != nil {
		switch err {
		case usecase.ErrCartItemNotFound:
			response.NotFound(w, "Cart item not found")
		default:
			response.InternalServerError(w, "Failed to update cart")
		}
		return
	}

	response.Success(w, http.StatusOK, "Cart updated", nil)
}

func (h *RefillCartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid cart item id")
		return
	}

	if err := h.cartUsecase.RemoveItem(r.Context(), id); err != nil {
		response.InternalServerError(w, "Failed to remove cart item")
		return
	}

	response.Success(w, http.StatusOK, "Cart item removed", nil)
}

func (h *RefillCartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cartUsecase.ClearCart(r.Context()); err != nil {
		response.InternalServerError(w, "Failed to clear cart")
		return
	}

	response.Success(w, http.StatusOK, "Cart cleared", nil)
}
