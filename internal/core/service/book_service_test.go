package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ideadrop/content-api/internal/core/domain"
	"github.com/ideadrop/content-api/internal/core/ports"
)

type stubBookRepo struct {
	books []*domain.Book
}

func (r *stubBookRepo) Create(_ context.Context, book *domain.Book) (*domain.Book, error) {
	created := *book
	created.ID = "book-1"
	r.books = append(r.books, &created)
	return &created, nil
}

func (r *stubBookRepo) FindAll(_ context.Context) ([]*domain.Book, error) {
	return r.books, nil
}

func TestBookCreate(t *testing.T) {
	store := &stubMediaStore{url: "https://cdn.example.com/books/key"}
	svc := NewBookService(&stubBookRepo{}, store, zerolog.Nop())

	book, err := svc.Create(context.Background(), ports.CreateBookInput{
		Name:    "The Dispossessed",
		Caption: "an ambiguous utopia",
		Author:  "Ursula K. Le Guin",
		Rating:  5,
		Image:   "data:image/png;base64,aGVsbG8=",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if book.Image != store.url {
		t.Errorf("image = %q, want hosted URL %q", book.Image, store.url)
	}
	if store.folder != "books" {
		t.Errorf("folder = %q, want books", store.folder)
	}
}

func TestBookCreateDefaultImage(t *testing.T) {
	svc := NewBookService(&stubBookRepo{}, &stubMediaStore{}, zerolog.Nop())

	book, err := svc.Create(context.Background(), ports.CreateBookInput{
		Name:    "The Dispossessed",
		Caption: "an ambiguous utopia",
		Author:  "Ursula K. Le Guin",
		Rating:  4,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if book.Image != domain.DefaultBookImage {
		t.Errorf("image = %q, want default", book.Image)
	}
}

func TestBookCreateValidation(t *testing.T) {
	svc := NewBookService(&stubBookRepo{}, &stubMediaStore{}, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, ports.CreateBookInput{Name: "no caption", Author: "a", Rating: 3}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("missing caption err = %v, want ErrInvalidInput", err)
	}

	for _, rating := range []int{0, 6, -1} {
		in := ports.CreateBookInput{Name: "n", Caption: "c", Author: "a", Rating: rating}
		if _, err := svc.Create(ctx, in); !errors.Is(err, domain.ErrInvalidRating) {
			t.Errorf("rating %d err = %v, want ErrInvalidRating", rating, err)
		}
	}
}

func TestBookCreateRejectsBadImage(t *testing.T) {
	svc := NewBookService(&stubBookRepo{}, &stubMediaStore{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateBookInput{
		Name:    "n",
		Caption: "c",
		Author:  "a",
		Rating:  3,
		Image:   "not-an-image",
	})
	if !errors.Is(err, domain.ErrInvalidImage) {
		t.Errorf("err = %v, want ErrInvalidImage", err)
	}
}

func TestBookList(t *testing.T) {
	repo := &stubBookRepo{}
	svc := NewBookService(repo, &stubMediaStore{}, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, ports.CreateBookInput{Name: "n", Caption: "c", Author: "a", Rating: 3}); err != nil {
		t.Fatalf("create: %v", err)
	}

	books, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(books) != 1 {
		t.Errorf("len = %d, want 1", len(books))
	}
}
