package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/stylehub/fashion-store/app/helpers"
	"github.com/stylehub/fashion-store/app/models"
	"github.com/stylehub/fashion-store/app/repositories"
	"github.com/stylehub/fashion-store/app/services"
	"github.com/unrolled/render"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryHandler struct {
	catalog  *services.CatalogService
	render   *render.Render
	validate *validator.Validate
}

func NewCategoryHandler(catalog *services.CatalogService, r *render.Render, v *validator.Validate) *CategoryHandler {
	return &CategoryHandler{catalog: catalog, render: r, validate: v}
}

type CategoryPayload struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (h *CategoryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		log.Printf("categories: list: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to fetch categories"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) CategoryDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.categoryID(w, r)
	if !ok {
		return
	}

	category, err := h.catalog.GetCategory(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "Category not found"})
			return
		}
		log.Printf("categories: detail %s: %v", id.Hex(), err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to fetch category"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	payload, errs := h.decodeAndValidate(r)
	if errs != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	category, err := h.catalog.CreateCategory(r.Context(), &models.Category{
		Title:       payload.Title,
		Description: payload.Description,
	})
	if err != nil {
		log.Printf("categories: create: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to create category"})
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.categoryID(w, r)
	if !ok {
		return
	}

	payload, errs := h.decodeAndValidate(r)
	if errs != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	category, err := h.catalog.UpdateCategory(r.Context(), id, &models.Category{
		Title:       payload.Title,
		Description: payload.Description,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "Category not found"})
			return
		}
		log.Printf("categories: update %s: %v", id.Hex(), err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to update category"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.categoryID(w, r)
	if !ok {
		return
	}

	if err := h.catalog.DeleteCategory(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "Category not found"})
			return
		}
		log.Printf("categories: delete %s: %v", id.Hex(), err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to delete category"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}

func (h *CategoryHandler) categoryID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "Category not found"})
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *CategoryHandler) decodeAndValidate(r *http.Request) (*CategoryPayload, map[string]string) {
	var payload CategoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return nil, map[string]string{"body": "invalid JSON body"}
	}
	if err := h.validate.Struct(&payload); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, helpers.FormatValidationErrors(verrs)
		}
		return nil, map[string]string{"body": "invalid request"}
	}
	return &payload, nil
}
