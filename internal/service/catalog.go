package service

import (
	"context"
	"fmt"

	"ShopAdmin/internal/model"
	"ShopAdmin/internal/repo"
	"ShopAdmin/internal/validation"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// maxCategoryDepth bounds the ancestor walk of the cycle check.
const maxCategoryDepth = 64

// CatalogService управляет брендами и категориями. Каждый кандидат сначала
// проходит правила валидации, затем проверки, требующие БД.
type CatalogService struct {
	brands     repo.BrandRepository
	categories repo.CategoryRepository
	engine     *validation.Engine
	logger     *zap.SugaredLogger
}

func NewCatalogService(b repo.BrandRepository, c repo.CategoryRepository, engine *validation.Engine, logger *zap.SugaredLogger) *CatalogService {
	return &CatalogService{brands: b, categories: c, engine: engine, logger: logger}
}

// ListBrands returns live brands ordered by name.
func (s *CatalogService) ListBrands(ctx context.Context) ([]model.Brand, error) {
	return s.brands.List(ctx)
}

// GetBrand returns a live brand.
func (s *CatalogService) GetBrand(ctx context.Context, id string) (*model.Brand, error) {
	b, err := s.brands.GetByID(ctx, id)
	return b, notFound(err)
}

// CreateBrand validates the candidate and stores a new brand.
func (s *CatalogService) CreateBrand(ctx context.Context, candidate map[string]any, locale string) (*model.Brand, error) {
	in, err := s.engine.Brand(candidate, locale)
	if err != nil {
		return nil, err
	}
	b := &model.Brand{}
	applyBrand(b, in)
	if err := s.brands.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}
	s.logger.Infow("brand created", "id", b.ID, "slug", b.Slug)
	return b, nil
}

// UpdateBrand validates the candidate and overwrites the brand fields.
func (s *CatalogService) UpdateBrand(ctx context.Context, id string, candidate map[string]any, locale string) (*model.Brand, error) {
	in, err := s.engine.Brand(candidate, locale)
	if err != nil {
		return nil, err
	}
	b, err := s.brands.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	applyBrand(b, in)
	if err := s.brands.Update(ctx, b); err != nil {
		return nil, notFound(err)
	}
	return b, nil
}

// DeleteBrand soft-deletes a brand.
func (s *CatalogService) DeleteBrand(ctx context.Context, id string) error {
	return notFound(s.brands.SoftDelete(ctx, id))
}

func applyBrand(b *model.Brand, in validation.BrandInput) {
	b.Name = in.Name
	b.Slug = slug.Make(in.Name)
	b.Description = deref(in.Description)
	b.Logo = deref(in.Logo)
	b.Website = deref(in.Website)
	b.Email = deref(in.Email)
}

// ListCategories returns live categories ordered by name.
func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

// GetCategory returns a live category.
func (s *CatalogService) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	return c, notFound(err)
}

// CreateCategory validates the candidate, checks the parent reference and
// stores a new category.
func (s *CatalogService) CreateCategory(ctx context.Context, candidate map[string]any, locale string) (*model.Category, error) {
	in, err := s.engine.Category(candidate, locale)
	if err != nil {
		return nil, err
	}
	c := &model.Category{}
	applyCategory(c, in)
	if err := s.checkParent(ctx, "", c.ParentID); err != nil {
		return nil, err
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	s.logger.Infow("category created", "id", c.ID, "parent", deref(c.ParentID))
	return c, nil
}

// UpdateCategory validates the candidate and overwrites the category fields.
func (s *CatalogService) UpdateCategory(ctx context.Context, id string, candidate map[string]any, locale string) (*model.Category, error) {
	in, err := s.engine.Category(candidate, locale)
	if err != nil {
		return nil, err
	}
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	applyCategory(c, in)
	if err := s.checkParent(ctx, id, c.ParentID); err != nil {
		return nil, err
	}
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

// DeleteCategory soft-deletes a category. Children keep their parent id.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	return notFound(s.categories.SoftDelete(ctx, id))
}

// checkParent requires the direct parent to exist and walks up its ancestors
// to make sure none of them is self.
func (s *CatalogService) checkParent(ctx context.Context, self string, parentID *string) error {
	next := deref(parentID)
	for depth := 0; next != ""; depth++ {
		if next == self || depth >= maxCategoryDepth {
			return ErrParentCycle
		}
		p, err := s.categories.GetByID(ctx, next)
		if err != nil {
			if notFound(err) != ErrNotFound {
				return err
			}
			if depth == 0 {
				return ErrParentNotFound
			}
			// broken chain above the direct parent cannot loop back to self
			return nil
		}
		next = deref(p.ParentID)
	}
	return nil
}

func applyCategory(c *model.Category, in validation.CategoryInput) {
	c.Name = in.Name
	c.Slug = slug.Make(in.Name)
	c.Description = deref(in.Description)
	c.Icon = deref(in.Icon)
	c.ParentID = nil
	if p := deref(in.ParentID); p != "" {
		c.ParentID = &p
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
