package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ideadrop/content-api/internal/core/domain"
	"github.com/ideadrop/content-api/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.nextID++
	created := *product
	created.ID = "product-" + strconv.Itoa(r.nextID)
	r.products[created.ID] = &created
	return &created, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := r.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if _, ok := r.products[product.ID]; !ok {
		return nil, domain.ErrProductNotFound
	}
	copied := *product
	r.products[product.ID] = &copied
	return product, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func validProductInput() ports.ProductInput {
	return ports.ProductInput{
		Name:        "Trail Runner",
		Price:       89.90,
		Categories:  []string{"shoes"},
		Brand:       "Acme",
		Quantity:    12,
		Description: "lightweight trail shoe",
	}
}

func TestProductCreate(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())

	product, err := svc.Create(context.Background(), validProductInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if product.ID == "" {
		t.Error("expected assigned ID")
	}
	if product.Images == nil {
		t.Error("images must encode as [], not null")
	}
}

func TestProductValidation(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*ports.ProductInput)
		want   error
	}{
		{"missing name", func(in *ports.ProductInput) { in.Name = " " }, domain.ErrInvalidInput},
		{"missing brand", func(in *ports.ProductInput) { in.Brand = "" }, domain.ErrInvalidInput},
		{"no categories", func(in *ports.ProductInput) { in.Categories = nil }, domain.ErrInvalidInput},
		{"zero price", func(in *ports.ProductInput) { in.Price = 0 }, domain.ErrInvalidPrice},
		{"negative price", func(in *ports.ProductInput) { in.Price = -1 }, domain.ErrInvalidPrice},
		{"zero quantity", func(in *ports.ProductInput) { in.Quantity = 0 }, domain.ErrInvalidQuantity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validProductInput()
			tc.mutate(&in)
			if _, err := svc.Create(ctx, in); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestProductUpdateKeepsCreatedAt(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, validProductInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// Ensure UpdatedAt moves past CreatedAt even on coarse clocks.
	repo.products[created.ID].CreatedAt = created.CreatedAt.Add(-time.Minute)
	created.CreatedAt = created.CreatedAt.Add(-time.Minute)

	in := validProductInput()
	in.Name = "Road Runner"
	updated, err := svc.Update(ctx, created.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Road Runner" {
		t.Errorf("name = %q, want Road Runner", updated.Name)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("CreatedAt changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Errorf("UpdatedAt %v not after CreatedAt %v", updated.UpdatedAt, updated.CreatedAt)
	}
}

func TestProductUpdateMissing(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), "product-404", validProductInput()); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("err = %v, want ErrProductNotFound", err)
	}
}

func TestProductDeleteReturnsDeleted(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, validProductInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := svc.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ID != created.ID {
		t.Errorf("deleted ID = %q, want %q", deleted.ID, created.ID)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("get after delete err = %v, want ErrProductNotFound", err)
	}
}
