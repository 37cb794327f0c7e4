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

type ProductHandler struct {
	catalog  *services.CatalogService
	render   *render.Render
	validate *validator.Validate
}

func NewProductHandler(catalog *services.CatalogService, r *render.Render, v *validator.Validate) *ProductHandler {
	return &ProductHandler{catalog: catalog, render: r, validate: v}
}

// ProductPayload is the write-endpoint body. Required fields use pointers so
// an explicit zero (price 0, stock 0) is not mistaken for an absent field.
type ProductPayload struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Description  string   `json:"description" validate:"max=1000"`
	Price        *float64 `json:"price" validate:"required,gte=0"`
	Discount     float64  `json:"discount" validate:"gte=0,lte=100"`
	CountInStock *int     `json:"countInStock" validate:"required,gte=0"`
	Category     string   `json:"category" validate:"required"`
	Images       []string `json:"images"`
	Sizes        []string `json:"sizes" validate:"dive,oneof=XS S M L XL XXL"`
	Colors       []string `json:"colors" validate:"dive,oneof=Black White Blue Red Green Gray"`
	Brand        string   `json:"brand"`
	Material     string   `json:"material"`
}

func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	filter := helpers.ParseProductFilter(r.URL.Query())

	products, err := h.catalog.ListProducts(r.Context(), filter)
	if err != nil {
		log.Printf("products: list: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to fetch products"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := h.catalog.GetProductBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "Product not found"})
			return
		}
		log.Printf("products: detail %q: %v", slug, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to fetch product"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	payload, errs := h.decodeAndValidate(r)
	if errs != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), payload.toModel())
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			_ = h.render.JSON(w, http.StatusConflict, map[string]string{"message": "A product with this name already exists"})
			return
		}
		log.Printf("products: create: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to create product"})
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	payload, errs := h.decodeAndValidate(r)
	if errs != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), slug, payload.toModel())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "Product not found"})
			return
		}
		log.Printf("products: update %q: %v", slug, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to update product"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	if err := h.catalog.DeleteProduct(r.Context(), slug); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "Product not found"})
			return
		}
		log.Printf("products: delete %q: %v", slug, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to delete product"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// decodeAndValidate parses the body and runs payload validation. A non-nil
// map enumerates every failing field.
func (h *ProductHandler) decodeAndValidate(r *http.Request) (*ProductPayload, map[string]string) {
	var payload ProductPayload
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

	if _, err := primitive.ObjectIDFromHex(payload.Category); err != nil {
		return nil, map[string]string{"category": "category must be a valid category id"}
	}

	return &payload, nil
}

func (p *ProductPayload) toModel() *models.Product {
	categoryID, _ := primitive.ObjectIDFromHex(p.Category)
	return &models.Product{
		Name:         p.Name,
		Description:  p.Description,
		Price:        *p.Price,
		Discount:     p.Discount,
		CountInStock: *p.CountInStock,
		Category:     categoryID,
		Images:       p.Images,
		Sizes:        p.Sizes,
		Colors:       p.Colors,
		Brand:        p.Brand,
		Material:     p.Material,
	}
}
