// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package product_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantran/mercato/internal/catalog/product"
	"github.com/vantran/mercato/internal/platform/apperr"
)

// fakeProductRepository is an in-memory ProductRepository for service tests.
type fakeProductRepository struct {
	byID        map[string]*product.Product
	createCalls int
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{byID: make(map[string]*product.Product)}
}

func (f *fakeProductRepository) Search(_ context.Context, _ product.Filter) ([]product.Product, error) {
	return f.all(), nil
}

func (f *fakeProductRepository) ListAll(_ context.Context) ([]product.Product, error) {
	return f.all(), nil
}

func (f *fakeProductRepository) ListByCategory(_ context.Context, category string) ([]product.Product, error) {
	matches := make([]product.Product, 0)
	for _, p := range f.byID {
		if p.Category == category {
			matches = append(matches, *p)
		}
	}
	return matches, nil
}

func (f *fakeProductRepository) FindByID(_ context.Context, id string) (*product.Product, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, apperr.NotFound("Product")
}

func (f *fakeProductRepository) FindByName(_ context.Context, name string) (*product.Product, error) {
	for _, p := range f.byID {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, apperr.NotFound("Product")
}

func (f *fakeProductRepository) Create(_ context.Context, p *product.Product) error {
	f.createCalls++
	for _, existing := range f.byID {
		if existing.Name == p.Name {
			return apperr.Duplicate("Product name already exists")
		}
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepository) Update(_ context.Context, p *product.Product) error {
	if _, ok := f.byID[p.ID]; !ok {
		return apperr.NotFound("Product")
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepository) Rename(_ context.Context, id, name string) error {
	p, ok := f.byID[id]
	if !ok {
		return apperr.NotFound("Product")
	}
	p.Name = name
	return nil
}

func (f *fakeProductRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return apperr.NotFound("Product")
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeProductRepository) all() []product.Product {
	products := make([]product.Product, 0, len(f.byID))
	for _, p := range f.byID {
		products = append(products, *p)
	}
	return products
}

func newProductService(repo product.ProductRepository) *product.Service {
	return product.NewService(repo, slog.Default())
}

func validProduct() *product.Product {
	return &product.Product{
		Name:            "Wireless Ergonomic Keyboard",
		Category:        "Peripherals",
		Manufacturer:    "Logitech",
		Price:           249.90,
		Discount:        0,
		QuantityInStock: 12,
		Description:     "Split-layout keyboard with a wrist rest.",
		Image:           product.Image{URL: "https://cdn.mercato.app/p/keyboard.jpg", Alt: "keyboard"},
	}
}

/*
TestService_CreateProduct_Success verifies identity/slug generation and
persistence of a valid product.
*/
func TestService_CreateProduct_Success(t *testing.T) {
	repo := newFakeProductRepository()
	service := newProductService(repo)

	p := validProduct()
	require.NoError(t, service.CreateProduct(context.Background(), p))

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "wireless-ergonomic-keyboard", p.Slug)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, 1, repo.createCalls)
}

/*
TestService_CreateProduct_DuplicateName verifies that a second product with
the same name is rejected before the insert is attempted.
*/
func TestService_CreateProduct_DuplicateName(t *testing.T) {
	repo := newFakeProductRepository()
	service := newProductService(repo)

	require.NoError(t, service.CreateProduct(context.Background(), validProduct()))

	err := service.CreateProduct(context.Background(), validProduct())
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "DUPLICATE", ae.Code)
	assert.Equal(t, 400, ae.HTTPStatus)
	assert.Equal(t, 1, repo.createCalls)
}

/*
TestService_CreateProduct_Invalid verifies that validation failures never
reach the repository.
*/
func TestService_CreateProduct_Invalid(t *testing.T) {
	repo := newFakeProductRepository()
	service := newProductService(repo)

	p := validProduct()
	p.Name = ""
	p.Price = -10

	err := service.CreateProduct(context.Background(), p)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Zero(t, repo.createCalls)
}

/*
TestService_DeleteProduct verifies that deleting a missing product reports
NotFound while a real delete makes the product unreachable.
*/
func TestService_DeleteProduct(t *testing.T) {
	repo := newFakeProductRepository()
	service := newProductService(repo)

	err := service.DeleteProduct(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	p := validProduct()
	require.NoError(t, service.CreateProduct(context.Background(), p))
	require.NoError(t, service.DeleteProduct(context.Background(), p.ID))

	_, err = service.GetProduct(context.Background(), p.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_ListProducts_EmptyCatalog verifies the catalog listing's contract
of reporting an empty catalog as NotFound.
*/
func TestService_ListProducts_EmptyCatalog(t *testing.T) {
	service := newProductService(newFakeProductRepository())

	_, err := service.ListProducts(context.Background())
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, 404, ae.HTTPStatus)
}

/*
TestService_ListByCategory_Empty verifies that an unknown category reports
NotFound rather than an empty array.
*/
func TestService_ListByCategory_Empty(t *testing.T) {
	repo := newFakeProductRepository()
	service := newProductService(repo)

	require.NoError(t, service.CreateProduct(context.Background(), validProduct()))

	_, err := service.ListByCategory(context.Background(), "Groceries")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_RenameProduct verifies the rename-only mutation and its required
payload field.
*/
func TestService_RenameProduct(t *testing.T) {
	repo := newFakeProductRepository()
	service := newProductService(repo)

	p := validProduct()
	require.NoError(t, service.CreateProduct(context.Background(), p))

	err := service.RenameProduct(context.Background(), p.ID, "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	require.NoError(t, service.RenameProduct(context.Background(), p.ID, "Mechanical Keyboard"))

	renamed, err := service.GetProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mechanical Keyboard", renamed.Name)
	// The slug is stable across renames.
	assert.Equal(t, "wireless-ergonomic-keyboard", renamed.Slug)
}
