package services

import (
	"database/sql"
	"errors"

	"luxelane/internal/domain"
	"luxelane/internal/repos"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

// ProductInput is a full product payload. Images is the submitted gallery;
// the main ImageURL is merged into it on write.
type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	IsFeatured  bool     `json:"is_featured"`
	IsNew       bool     `json:"is_new"`
	IsLuxury    bool     `json:"is_luxury"`
	ImageURL    string   `json:"image_url"`
	Images      []string `json:"images"`
}

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

// List returns every product, newest first, with its display image set.
func (s *CatalogService) List() ([]domain.Product, error) {
	ps, err := s.Prods.ListAll()
	if err != nil {
		return nil, err
	}
	return s.attachImages(ps)
}

// Featured returns up to the 5 most recent featured products.
func (s *CatalogService) Featured() ([]domain.Product, error) {
	ps, err := s.Prods.ListFeatured(5)
	if err != nil {
		return nil, err
	}
	return s.attachImages(ps)
}

// Get returns a single product with the main image guaranteed first in
// its de-duplicated image set.
func (s *CatalogService) Get(id string) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, ErrProductNotFound
		}
		return domain.Product{}, err
	}
	gallery, err := s.Prods.Gallery(id)
	if err != nil {
		return domain.Product{}, err
	}
	p.Images = mergeImages(p.ImageURL, gallery)
	return p, nil
}

// Create inserts the product and its gallery (main image first,
// de-duplicated) and returns the stored product.
func (s *CatalogService) Create(in ProductInput) (domain.Product, error) {
	p := productFromInput(uuid.NewString(), in)
	if err := s.Prods.Create(p, mergeImages(in.ImageURL, in.Images)); err != nil {
		return domain.Product{}, err
	}
	return s.Get(p.ID)
}

// Update overwrites all scalar fields and replaces the gallery wholesale.
func (s *CatalogService) Update(id string, in ProductInput) (domain.Product, error) {
	p := productFromInput(id, in)
	ok, err := s.Prods.Update(p, mergeImages(in.ImageURL, in.Images))
	if err != nil {
		return domain.Product{}, err
	}
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return s.Get(id)
}

func (s *CatalogService) Delete(id string) error {
	ok, err := s.Prods.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProductNotFound
	}
	return nil
}

func (s *CatalogService) attachImages(ps []domain.Product) ([]domain.Product, error) {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	galleries, err := s.Prods.GalleryByProduct(ids)
	if err != nil {
		return nil, err
	}
	for i := range ps {
		ps[i].Images = displayImages(ps[i].ImageURL, galleries[ps[i].ID])
	}
	return ps, nil
}

// displayImages implements the list-endpoint rule: the gallery as stored
// when it has rows, [main] when only the main image exists, else empty.
func displayImages(main string, gallery []string) []string {
	if len(gallery) > 0 {
		return gallery
	}
	if main != "" {
		return []string{main}
	}
	return []string{}
}

// mergeImages builds the de-duplicated display set with the main image
// first and the rest in the order given. Empty URLs are dropped.
func mergeImages(main string, rest []string) []string {
	out := make([]string, 0, len(rest)+1)
	seen := make(map[string]bool, len(rest)+1)
	if main != "" {
		out = append(out, main)
		seen[main] = true
	}
	for _, u := range rest {
		if u == "" || seen[u] {
			continue
		}
		out = append(out, u)
		seen[u] = true
	}
	return out
}

func productFromInput(id string, in ProductInput) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		IsFeatured:  in.IsFeatured,
		IsNew:       in.IsNew,
		IsLuxury:    in.IsLuxury,
		ImageURL:    in.ImageURL,
	}
}
