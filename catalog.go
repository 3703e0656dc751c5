package nsgifts

import "context"

// CatalogService browses the vendor's service and category listings.
type CatalogService struct {
	client *Client
}

type categoryRequest struct {
	CategoryID int64 `json:"category_id" validate:"required,gt=0"`
}

// Service is one purchasable catalog entry.
type Service struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	CategoryID int64   `json:"category_id"`
	Price      float64 `json:"price"`
}

// Category groups catalog services.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AllServices returns the complete service catalog.
func (s *CatalogService) AllServices(ctx context.Context) ([]Service, error) {
	var services []Service
	if err := s.client.post(ctx, epAllServices, nil, &services); err != nil {
		return nil, err
	}

	return services, nil
}

// Categories returns all catalog categories.
func (s *CatalogService) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := s.client.post(ctx, epCategories, nil, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// ServicesByCategory returns the services in one category.
func (s *CatalogService) ServicesByCategory(ctx context.Context, categoryID int64) ([]Service, error) {
	req := categoryRequest{CategoryID: categoryID}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var services []Service
	if err := s.client.post(ctx, epServicesByCategory, req, &services); err != nil {
		return nil, err
	}

	return services, nil
}
