package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ideadrop/content-api/internal/core/domain"
)

type stubCategoryRepo struct {
	categories map[string]*domain.Category
	nextID     int
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.Name == category.Name {
			return nil, domain.ErrCategoryExists
		}
	}
	r.nextID++
	created := *category
	created.ID = "category-" + strconv.Itoa(r.nextID)
	r.categories[created.ID] = &created
	return &created, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	if c, ok := r.categories[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) FindAll(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if _, ok := r.categories[category.ID]; !ok {
		return nil, domain.ErrCategoryNotFound
	}
	copied := *category
	r.categories[category.ID] = &copied
	return category, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func newTestCategoryService() (*CategoryService, *stubCategoryRepo, *stubMediaStore) {
	repo := newStubCategoryRepo()
	store := &stubMediaStore{}
	return NewCategoryService(repo, store, zerolog.Nop()), repo, store
}

func TestCategoryCreateNormalizes(t *testing.T) {
	svc, _, _ := newTestCategoryService()

	category, err := svc.Create(context.Background(), "  Science Fiction  ", "stories about the future")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if category.Name != "science fiction" {
		t.Errorf("name = %q, want lowercase trimmed", category.Name)
	}
	if category.Slug != "science-fiction" {
		t.Errorf("slug = %q, want science-fiction", category.Slug)
	}
	if category.Image != domain.DefaultCategoryImage {
		t.Errorf("image = %q, want default", category.Image)
	}
}

func TestCategoryCreateDuplicate(t *testing.T) {
	svc, _, _ := newTestCategoryService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "fiction", "made-up stories"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, "Fiction", "same name, different case"); !errors.Is(err, domain.ErrCategoryExists) {
		t.Errorf("err = %v, want ErrCategoryExists", err)
	}
}

func TestCategoryUpdateKeepsShortValues(t *testing.T) {
	svc, _, _ := newTestCategoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "fiction", "made-up stories")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Values at or under the minimum length leave the stored fields alone.
	updated, err := svc.Update(ctx, created.ID, "ab", "xy")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "fiction" || updated.Description != "made-up stories" {
		t.Errorf("got %q/%q, short values must keep stored fields", updated.Name, updated.Description)
	}

	updated, err = svc.Update(ctx, created.ID, "Long Fiction", "longer description")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "long fiction" {
		t.Errorf("name = %q, want long fiction", updated.Name)
	}
	if updated.Slug != "long-fiction" {
		t.Errorf("slug = %q, want refreshed slug", updated.Slug)
	}
}

func TestCategoryDelete(t *testing.T) {
	svc, _, _ := newTestCategoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "fiction", "made-up stories")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("second delete err = %v, want ErrCategoryNotFound", err)
	}
}

func TestCategoryUploadPhoto(t *testing.T) {
	svc, _, store := newTestCategoryService()
	ctx := context.Background()
	store.url = "https://cdn.example.com/categories/key"

	created, err := svc.Create(ctx, "fiction", "made-up stories")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UploadPhoto(ctx, created.ID, "data:image/jpeg;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("upload photo: %v", err)
	}
	if updated.Image != store.url {
		t.Errorf("image = %q, want %q", updated.Image, store.url)
	}
	if store.folder != "categories" {
		t.Errorf("folder = %q, want categories", store.folder)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"fiction":          "fiction",
		"science fiction":  "science-fiction",
		"  Mixed CASE  ":   "mixed-case",
		"punct!u@ation":    "punct-u-ation",
		"trailing spaces ": "trailing-spaces",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
