package services

import (
	"context"
	"fmt"
	"log"

	"github.com/gosimple/slug"
	"github.com/stylehub/fashion-store/app/helpers"
	"github.com/stylehub/fashion-store/app/models"
	"github.com/stylehub/fashion-store/app/repositories"
	"github.com/stylehub/fashion-store/app/utils/calc"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResponseCache is what the catalog needs from the cache layer. Satisfied by
// *cache.Cache; a nil cache disables caching entirely.
type ResponseCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// CatalogService composes filter -> store query -> projection for reads,
// with the response cache wrapping the read path, and slug derivation ->
// store persist for writes. Cache failures never fail a request; they are
// logged and the request proceeds as a miss. Writes do not purge read keys;
// staleness is bounded by the cache TTL.
type CatalogService struct {
	products   repositories.ProductRepositoryImpl
	categories repositories.CategoryRepositoryImpl
	cache      ResponseCache
	serverURL  string
}

func NewCatalogService(
	products repositories.ProductRepositoryImpl,
	categories repositories.CategoryRepositoryImpl,
	cache ResponseCache,
	serverURL string,
) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		cache:      cache,
		serverURL:  serverURL,
	}
}

func (s *CatalogService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	key := filter.CacheKey()

	var cached []models.Product
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	products, err := s.products.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	for i := range products {
		s.projectProduct(&products[i])
	}

	s.cacheSet(ctx, key, products)
	return products, nil
}

func (s *CatalogService) GetProductBySlug(ctx context.Context, productSlug string) (*models.Product, error) {
	key := "product:" + productSlug

	var cached models.Product
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	product, err := s.products.GetBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}
	s.projectProduct(product)

	s.cacheSet(ctx, key, product)
	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	product.Slug = slug.Make(product.Name)
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	s.projectProduct(product)
	return product, nil
}

// UpdateProduct replaces the product stored under productSlug. The slug is
// re-derived from the submitted name, so renames move the product to a new
// URL.
func (s *CatalogService) UpdateProduct(ctx context.Context, productSlug string, product *models.Product) (*models.Product, error) {
	product.Slug = slug.Make(product.Name)
	updated, err := s.products.Update(ctx, productSlug, product)
	if err != nil {
		return nil, err
	}
	s.projectProduct(updated)
	return updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, productSlug string) error {
	return s.products.Delete(ctx, productSlug)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	const key = "categories"

	var cached []models.Category
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	s.cacheSet(ctx, key, categories)
	return categories, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	key := "category:" + id.Hex()

	var cached models.Category
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, category)
	return category, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id primitive.ObjectID, category *models.Category) (*models.Category, error) {
	return s.categories.Update(ctx, id, category)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	return s.categories.Delete(ctx, id)
}

// projectProduct rewrites image paths to absolute URLs and fills in the
// derived discounted price.
func (s *CatalogService) projectProduct(p *models.Product) {
	for i, img := range p.Images {
		p.Images[i] = helpers.FullImageURL(s.serverURL, img)
	}
	p.DiscountedPrice = calc.DiscountedPrice(p.Price, p.Discount)
}

func (s *CatalogService) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		log.Printf("catalog: cache get %q: %v", key, err)
		return false
	}
	return hit
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		log.Printf("catalog: cache set %q: %v", key, err)
	}
}
