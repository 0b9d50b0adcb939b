package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ideadrop/content-api/internal/api/handler"
	"github.com/ideadrop/content-api/internal/core/domain"
	"github.com/ideadrop/content-api/internal/core/token"
)

// In-memory repositories backing the router tests. They mirror the
// behavior the mongo implementations promise: duplicate keys surface as
// conflict errors, lookups on absent IDs return not-found errors, and idea
// listings come back newest first.

type memUsers struct {
	byID   map[string]*domain.User
	nextID int
}

func newMemUsers() *memUsers {
	return &memUsers{byID: make(map[string]*domain.User)}
}

func (r *memUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := *user
	created.ID = "user-" + strconv.Itoa(r.nextID)
	r.byID[created.ID] = &created
	return &created, nil
}

func (r *memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUsers) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

type memIdeas struct {
	ordered []*domain.Idea
	nextID  int
}

func (r *memIdeas) Create(_ context.Context, idea *domain.Idea) (*domain.Idea, error) {
	r.nextID++
	created := *idea
	created.ID = "idea-" + strconv.Itoa(r.nextID)
	r.ordered = append(r.ordered, &created)
	return &created, nil
}

func (r *memIdeas) FindByID(_ context.Context, id string) (*domain.Idea, error) {
	for _, i := range r.ordered {
		if i.ID == id {
			copied := *i
			return &copied, nil
		}
	}
	return nil, domain.ErrIdeaNotFound
}

func (r *memIdeas) List(_ context.Context, limit int) ([]*domain.Idea, error) {
	out := make([]*domain.Idea, 0, limit)
	for i := len(r.ordered) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.ordered[i])
	}
	return out, nil
}

func (r *memIdeas) Update(_ context.Context, idea *domain.Idea) (*domain.Idea, error) {
	for n, i := range r.ordered {
		if i.ID == idea.ID {
			copied := *idea
			r.ordered[n] = &copied
			return idea, nil
		}
	}
	return nil, domain.ErrIdeaNotFound
}

func (r *memIdeas) Delete(_ context.Context, id string) error {
	for n, i := range r.ordered {
		if i.ID == id {
			r.ordered = append(r.ordered[:n], r.ordered[n+1:]...)
			return nil
		}
	}
	return domain.ErrIdeaNotFound
}

type memBooks struct {
	books []*domain.Book
}

func (r *memBooks) Create(_ context.Context, book *domain.Book) (*domain.Book, error) {
	created := *book
	created.ID = "book-" + strconv.Itoa(len(r.books)+1)
	r.books = append(r.books, &created)
	return &created, nil
}

func (r *memBooks) FindAll(_ context.Context) ([]*domain.Book, error) {
	return r.books, nil
}

type memCategories struct {
	byID   map[string]*domain.Category
	nextID int
}

func newMemCategories() *memCategories {
	return &memCategories{byID: make(map[string]*domain.Category)}
}

func (r *memCategories) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	for _, c := range r.byID {
		if c.Name == category.Name {
			return nil, domain.ErrCategoryExists
		}
	}
	r.nextID++
	created := *category
	created.ID = "category-" + strconv.Itoa(r.nextID)
	r.byID[created.ID] = &created
	return &created, nil
}

func (r *memCategories) FindByID(_ context.Context, id string) (*domain.Category, error) {
	if c, ok := r.byID[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *memCategories) FindAll(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCategories) Update(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if _, ok := r.byID[category.ID]; !ok {
		return nil, domain.ErrCategoryNotFound
	}
	copied := *category
	r.byID[category.ID] = &copied
	return category, nil
}

func (r *memCategories) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.byID, id)
	return nil
}

type memProducts struct {
	byID   map[string]*domain.Product
	nextID int
}

func newMemProducts() *memProducts {
	return &memProducts{byID: make(map[string]*domain.Product)}
}

func (r *memProducts) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.nextID++
	created := *product
	created.ID = "product-" + strconv.Itoa(r.nextID)
	r.byID[created.ID] = &created
	return &created, nil
}

func (r *memProducts) FindByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := r.byID[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *memProducts) FindAll(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProducts) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if _, ok := r.byID[product.ID]; !ok {
		return nil, domain.ErrProductNotFound
	}
	copied := *product
	r.byID[product.ID] = &copied
	return product, nil
}

func (r *memProducts) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.byID, id)
	return nil
}

type memMedia struct {
	uploads int
}

func (m *memMedia) Upload(_ context.Context, folder, _ string, _ []byte) (string, error) {
	m.uploads++
	return "https://cdn.test.local/" + folder + "/" + strconv.Itoa(m.uploads), nil
}

type testEnv struct {
	router  *echo.Echo
	users   *memUsers
	ideas   *memIdeas
	media   *memMedia
	codec   *token.Codec
	pingErr error
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	codec, err := token.New("test-secret", time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("codec: %v", err)
	}

	env := &testEnv{
		users: newMemUsers(),
		ideas: &memIdeas{},
		media: &memMedia{},
		codec: codec,
	}
	env.router = NewRouter(Dependencies{
		Users:       env.users,
		Ideas:       env.ideas,
		Books:       &memBooks{},
		Categories:  newMemCategories(),
		Products:    newMemProducts(),
		Media:       env.media,
		Codec:       codec,
		Cookies:     handler.NewCookieSettings(false, 24*time.Hour),
		PasswordMin: 3,
		Health: map[string]handler.Pinger{
			"store": func(context.Context) error { return env.pingErr },
		},
		Logger: zerolog.Nop(),
	})
	return env
}

// doJSON drives the full router with a JSON request and returns the recorder.
func (env *testEnv) doJSON(method, path, body string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, m := range mutate {
		m(req)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func withBearer(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func withCookie(name, value string) func(*http.Request) {
	return func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
}

type authBody struct {
	Message     string          `json:"message"`
	AccessToken string          `json:"accessToken"`
	Data        json.RawMessage `json:"data"`
}

// registerUser registers an account and returns the access token and the
// refresh cookie from the response.
func (env *testEnv) registerUser(t *testing.T, name, email, password string) (string, *http.Cookie) {
	t.Helper()

	body := `{"name":"` + name + `","email":"` + email + `","password":"` + password + `"}`
	rec := env.doJSON(http.MethodPost, "/api/v1/auth/register", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp authBody
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("register response missing access token")
	}
	return resp.AccessToken, findCookie(rec, "refreshToken")
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
