package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stylehub/fashion-store/app/helpers"
	"github.com/stylehub/fashion-store/app/models"
	"github.com/stylehub/fashion-store/app/repositories"
	"github.com/stylehub/fashion-store/app/services"
	"github.com/unrolled/render"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubProductRepo struct {
	products []models.Product
	created  *models.Product
}

func (s *stubProductRepo) Find(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return s.products, nil
}

func (s *stubProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	for i := range s.products {
		if s.products[i].Slug == slug {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *stubProductRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return nil, repositories.ErrNotFound
}

func (s *stubProductRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	return []models.Product{}, nil
}

func (s *stubProductRepo) Create(ctx context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	s.products = append(s.products, *product)
	s.created = product
	return nil
}

func (s *stubProductRepo) Update(ctx context.Context, slug string, product *models.Product) (*models.Product, error) {
	return nil, repositories.ErrNotFound
}

func (s *stubProductRepo) Delete(ctx context.Context, slug string) error {
	return repositories.ErrNotFound
}

func (s *stubProductRepo) EnsureIndexes(ctx context.Context) error { return nil }

type stubCategoryRepo struct{}

func (stubCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	return []models.Category{}, nil
}

func (stubCategoryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	return nil, repositories.ErrNotFound
}

func (stubCategoryRepo) Create(ctx context.Context, category *models.Category) error { return nil }

func (stubCategoryRepo) Update(ctx context.Context, id primitive.ObjectID, category *models.Category) (*models.Category, error) {
	return nil, repositories.ErrNotFound
}

func (stubCategoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }

func productTestRouter(repo *stubProductRepo) *mux.Router {
	catalog := services.NewCatalogService(repo, stubCategoryRepo{}, nil, "http://localhost:5000")
	h := NewProductHandler(catalog, render.New(), helpers.NewValidator())

	router := mux.NewRouter()
	router.HandleFunc("/api/products", h.Products).Methods(http.MethodGet)
	router.HandleFunc("/api/products", h.CreateProduct).Methods(http.MethodPost)
	router.HandleFunc("/api/products/{slug}", h.ProductDetail).Methods(http.MethodGet)
	router.HandleFunc("/api/products/{slug}", h.DeleteProduct).Methods(http.MethodDelete)
	return router
}

func TestProducts_List(t *testing.T) {
	repo := &stubProductRepo{products: []models.Product{
		{Name: "Classic Cotton T-Shirt", Slug: "classic-cotton-t-shirt", Price: 25, Discount: 10, Images: []string{"images/tshirt.jpg"}},
	}}
	router := productTestRouter(repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products?sizes=M&sortBy=price_asc", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var products []models.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	if products[0].Images[0] != "http://localhost:5000/images/tshirt.jpg" {
		t.Errorf("image = %q, want absolute URL", products[0].Images[0])
	}
	if products[0].DiscountedPrice != 22.5 {
		t.Errorf("discountedPrice = %v, want 22.5", products[0].DiscountedPrice)
	}
}

func TestProductDetail_NotFound(t *testing.T) {
	router := productTestRouter(&stubProductRepo{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/no-such-product", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["message"] != "Product not found" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestCreateProduct_ValidationErrors(t *testing.T) {
	repo := &stubProductRepo{}
	router := productTestRouter(repo)

	body := `{"countInStock": 10, "category": "` + primitive.NewObjectID().Hex() + `"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := resp.Errors["name"]; !ok {
		t.Errorf("errors should name the missing name field, got %v", resp.Errors)
	}
	if _, ok := resp.Errors["price"]; !ok {
		t.Errorf("errors should name the missing price field, got %v", resp.Errors)
	}
	if repo.created != nil {
		t.Error("nothing should be persisted on validation failure")
	}
}

func TestCreateProduct_BadCategoryID(t *testing.T) {
	router := productTestRouter(&stubProductRepo{})

	body := `{"name": "Classic Cotton T-Shirt", "price": 25, "countInStock": 10, "category": "not-an-id"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := resp.Errors["category"]; !ok {
		t.Errorf("errors should name the category field, got %v", resp.Errors)
	}
}

func TestCreateProduct_OK(t *testing.T) {
	repo := &stubProductRepo{}
	router := productTestRouter(repo)

	body := `{"name": "Classic Cotton T-Shirt", "price": 25, "discount": 10, "countInStock": 10, "category": "` +
		primitive.NewObjectID().Hex() + `", "sizes": ["S", "M"], "colors": ["Black"]}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}

	var created models.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Slug != "classic-cotton-t-shirt" {
		t.Errorf("slug = %q, want %q", created.Slug, "classic-cotton-t-shirt")
	}
	if repo.created == nil {
		t.Error("product should be persisted")
	}
}

func TestDeleteProduct_NotFound(t *testing.T) {
	router := productTestRouter(&stubProductRepo{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/products/no-such-product", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
