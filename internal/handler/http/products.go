package http

import (
	"net/http"

	"github.com/MKhiriev/pinvent/internal/app"
	"github.com/MKhiriev/pinvent/internal/utils"
	"github.com/MKhiriev/pinvent/models"
	"github.com/go-chi/chi/v5"
)

const productIDURLParam = "id"

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoUserInContext)
		return
	}

	fields, err := h.productFieldsFromRequest(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	product, err := h.services.ProductService.CreateProduct(r.Context(), ownerID, fields)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, product, http.StatusCreated)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoUserInContext)
		return
	}

	products, err := h.services.ProductService.ListProducts(r.Context(), ownerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoUserInContext)
		return
	}

	product, err := h.services.ProductService.GetProduct(r.Context(), ownerID, chi.URLParam(r, productIDURLParam))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoUserInContext)
		return
	}

	fields, err := h.productFieldsFromRequest(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	product, err := h.services.ProductService.UpdateProduct(r.Context(), ownerID, chi.URLParam(r, productIDURLParam), fields)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoUserInContext)
		return
	}

	if err := h.services.ProductService.DeleteProduct(r.Context(), ownerID, chi.URLParam(r, productIDURLParam)); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgProductDeleted}, http.StatusOK)
}
