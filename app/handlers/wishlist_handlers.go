package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/stylehub/fashion-store/app/helpers"
	"github.com/stylehub/fashion-store/app/middlewares"
	"github.com/stylehub/fashion-store/app/repositories"
	"github.com/stylehub/fashion-store/app/services"
	"github.com/unrolled/render"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WishlistHandler struct {
	wishlist *services.WishlistService
	render   *render.Render
	validate *validator.Validate
}

func NewWishlistHandler(wishlist *services.WishlistService, r *render.Render, v *validator.Validate) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist, render: r, validate: v}
}

type WishlistPayload struct {
	ProductID string `json:"productId" validate:"required"`
}

func (h *WishlistHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	products, err := h.wishlist.List(r.Context(), userID)
	if err != nil {
		log.Printf("wishlist: list: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to fetch wishlist"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, products)
}

func (h *WishlistHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var payload WishlistPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]any{"errors": map[string]string{"body": "invalid JSON body"}})
		return
	}
	if err := h.validate.Struct(&payload); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			_ = h.render.JSON(w, http.StatusBadRequest, map[string]any{"errors": helpers.FormatValidationErrors(verrs)})
			return
		}
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]any{"errors": map[string]string{"body": "invalid request"}})
		return
	}

	productID, err := primitive.ObjectIDFromHex(payload.ProductID)
	if err != nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "Product not found"})
		return
	}

	products, err := h.wishlist.Add(r.Context(), userID, productID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "Product not found"})
		case errors.Is(err, repositories.ErrDuplicate):
			_ = h.render.JSON(w, http.StatusConflict, map[string]string{"message": "Product already in wishlist"})
		default:
			log.Printf("wishlist: add: %v", err)
			_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to update wishlist"})
		}
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, products)
}

func (h *WishlistHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	productID, err := primitive.ObjectIDFromHex(mux.Vars(r)["productId"])
	if err != nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "Product not found"})
		return
	}

	products, err := h.wishlist.Remove(r.Context(), userID, productID)
	if err != nil {
		log.Printf("wishlist: remove: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to update wishlist"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, products)
}

func (h *WishlistHandler) userID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	raw, ok := middlewares.UserID(r)
	if !ok {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"message": "No token provided"})
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid or expired token"})
		return primitive.NilObjectID, false
	}
	return id, true
}
