package service

import (
	"context"
	"strings"
	"sync"

	"github.com/sangkips/laundry-admin/internal/domain/entity"
	"github.com/sangkips/laundry-admin/internal/domain/repository"
	"github.com/sangkips/laundry-admin/pkg/apperror"
	"github.com/sangkips/laundry-admin/pkg/money"
)

// PriceNotSet is shown for sub-categories without a stored price
const PriceNotSet = "Not set"

// CategoryService manages the sub-category lists and their prices
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	mu           sync.Mutex
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CategoryOverview is the full tree with prices
type CategoryOverview struct {
	Categories       entity.CategoryTree `json:"categories"`
	Prices           entity.PriceMap     `json:"prices"`
	MainCategories   []string            `json:"mainCategories"`
	TotalSubCategory int                 `json:"totalSubCategories"`
}

// SubCategoryView is one sub-category with its price, if any
type SubCategoryView struct {
	Name       string   `json:"name"`
	Price      *float64 `json:"price"`
	PriceLabel string   `json:"priceLabel"`
}

// SubCategoryInput represents the add form
type SubCategoryInput struct {
	Category string
	Name     string
	Price    float64
}

// EditSubCategoryInput represents an inline edit. The sub-category is
// renamed from OldName to Name and repriced.
type EditSubCategoryInput struct {
	Category string
	OldName  string
	Name     string
	Price    float64
}

func priceView(name string, prices entity.PriceMap) SubCategoryView {
	v := SubCategoryView{Name: name, PriceLabel: PriceNotSet}
	if p, ok := prices[name]; ok && p > 0 {
		price := p
		v.Price = &price
		v.PriceLabel = "₹" + money.Format(p)
	}
	return v
}

func validateSubCategory(category, name string, price float64) error {
	var fieldErrors []apperror.FieldError
	if !entity.IsMainCategory(category) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "category", Message: "unknown main category"})
	}
	if strings.TrimSpace(name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "is required"})
	} else if strings.Contains(name, "/") {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "must not contain '/'"})
	}
	if price <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "must be greater than zero"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

func (s *CategoryService) load(ctx context.Context) (entity.CategoryTree, entity.PriceMap, error) {
	tree, err := s.categoryRepo.GetTree(ctx)
	if err != nil {
		return nil, nil, storageError("read", err)
	}
	prices, err := s.categoryRepo.GetPrices(ctx)
	if err != nil {
		return nil, nil, storageError("read", err)
	}
	return tree, prices, nil
}

func (s *CategoryService) save(ctx context.Context, tree entity.CategoryTree, prices entity.PriceMap) error {
	if err := s.categoryRepo.SaveTree(ctx, tree); err != nil {
		return storageError("write", err)
	}
	if err := s.categoryRepo.SavePrices(ctx, prices); err != nil {
		return storageError("write", err)
	}
	return nil
}

// GetCategories returns the normalised tree with prices
func (s *CategoryService) GetCategories(ctx context.Context) (*CategoryOverview, error) {
	tree, prices, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return &CategoryOverview{
		Categories:       tree,
		Prices:           prices,
		MainCategories:   append([]string(nil), entity.MainCategories...),
		TotalSubCategory: tree.Total(),
	}, nil
}

// AddSubCategory appends a sub-category and sets its price
func (s *CategoryService) AddSubCategory(ctx context.Context, input *SubCategoryInput) (*SubCategoryView, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateSubCategory(input.Category, name, input.Price); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tree, prices, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if tree.Contains(input.Category, name) {
		return nil, apperror.NewConflictError("This sub-category already exists in " + input.Category)
	}

	tree[input.Category] = append(tree[input.Category], name)
	prices[name] = input.Price
	if err := s.save(ctx, tree, prices); err != nil {
		return nil, err
	}

	v := priceView(name, prices)
	return &v, nil
}

// EditSubCategory renames and reprices a sub-category in place
func (s *CategoryService) EditSubCategory(ctx context.Context, input *EditSubCategoryInput) (*SubCategoryView, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateSubCategory(input.Category, name, input.Price); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tree, prices, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, sub := range tree[input.Category] {
		if sub == input.OldName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperror.NewNotFoundError("Sub-category")
	}
	if name != input.OldName && tree.Contains(input.Category, name) {
		return nil, apperror.NewConflictError("This sub-category name already exists in " + input.Category)
	}

	tree[input.Category][idx] = name
	if name != input.OldName {
		delete(prices, input.OldName)
	}
	prices[name] = input.Price
	if err := s.save(ctx, tree, prices); err != nil {
		return nil, err
	}

	v := priceView(name, prices)
	return &v, nil
}

// DeleteSubCategory removes a sub-category and its price. Prices are keyed
// by name, so a same-named sub-category under another main category loses
// its price too.
func (s *CategoryService) DeleteSubCategory(ctx context.Context, category, name string) error {
	if !entity.IsMainCategory(category) {
		return apperror.NewFieldError("category", "unknown main category")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tree, prices, err := s.load(ctx)
	if err != nil {
		return err
	}
	if !tree.Contains(category, name) {
		return apperror.NewNotFoundError("Sub-category")
	}

	kept := make([]string, 0, len(tree[category]))
	for _, sub := range tree[category] {
		if sub != name {
			kept = append(kept, sub)
		}
	}
	tree[category] = kept
	delete(prices, name)
	return s.save(ctx, tree, prices)
}

// GetPrice looks up a sub-category price
func (s *CategoryService) GetPrice(ctx context.Context, name string) (*SubCategoryView, error) {
	prices, err := s.categoryRepo.GetPrices(ctx)
	if err != nil {
		return nil, storageError("read", err)
	}
	v := priceView(name, prices)
	return &v, nil
}

// SearchSubCategories lists a main category's sub-categories containing query
func (s *CategoryService) SearchSubCategories(ctx context.Context, category, query string) ([]SubCategoryView, error) {
	if !entity.IsMainCategory(category) {
		return nil, apperror.NewFieldError("category", "unknown main category")
	}

	tree, prices, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	out := []SubCategoryView{}
	for _, sub := range tree[category] {
		if matchesFold(query, sub) {
			out = append(out, priceView(sub, prices))
		}
	}
	return out, nil
}
