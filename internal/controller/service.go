package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/project/bookshelf/internal/catalog"
	"github.com/project/bookshelf/internal/entity"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_usecase.go -package=mocks

type (
	ShelfUseCase interface {
		SaveBookForUser(ctx context.Context, volume entity.Volume, userID string) (entity.Book, error)
		RemoveBook(ctx context.Context, bookID string) error
		RemoveBookFromUser(ctx context.Context, bookID, userID string) error
		GetAllBooks(ctx context.Context) ([]entity.Book, error)
		FindBooksByAuthor(ctx context.Context, authorID string) ([]entity.Book, error)
		FindBookByID(ctx context.Context, bookID string) (entity.Book, error)
		GetBooksOwnedByUser(ctx context.Context, userID string) ([]entity.Book, error)
	}

	CatalogService interface {
		Search(ctx context.Context, title, authorSurname string) ([]entity.Volume, error)
	}
)

const log = true

type implementation struct {
	logger       *zap.Logger
	shelfUseCase ShelfUseCase
	catalog      CatalogService
}

func New(
	logger *zap.Logger,
	shelfUseCase ShelfUseCase,
	catalogService CatalogService,
) *implementation {
	return &implementation{
		logger:       logger,
		shelfUseCase: shelfUseCase,
		catalog:      catalogService,
	}
}

func (i *implementation) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/books", i.GetAllBooks)
		r.Get("/books/{bookID}", i.FindBookByID)
		r.Delete("/books/{bookID}", i.RemoveBook)
		r.Get("/authors/{authorID}/books", i.FindBooksByAuthor)
		r.Get("/catalog", i.SearchCatalog)
		r.Route("/users/{userID}/books", func(r chi.Router) {
			r.Get("/", i.GetBooksOwnedByUser)
			r.Post("/", i.SaveBookForUser)
			r.Delete("/{bookID}", i.RemoveBookFromUser)
		})
	})

	return r
}

type bookResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	PublishedDate string   `json:"published_date"`
	PageCount     int      `json:"page_count"`
	AverageRating float64  `json:"average_rating"`
	Language      string   `json:"language"`
	Description   string   `json:"description"`
	AuthorIDs     []string `json:"author_ids"`
	UserIDs       []string `json:"user_ids"`
}

func toBookResponse(book entity.Book) bookResponse {
	return bookResponse{
		ID:            book.ID,
		Title:         book.Title,
		PublishedDate: book.PublishedDate,
		PageCount:     book.PageCount,
		AverageRating: book.AverageRating,
		Language:      book.Language,
		Description:   book.Description,
		AuthorIDs:     book.AuthorIDs,
		UserIDs:       book.UserIDs,
	}
}

func toBookResponses(books []entity.Book) []bookResponse {
	return lo.Map(books, func(book entity.Book, _ int) bookResponse {
		return toBookResponse(book)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (i *implementation) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil && log && i.logger != nil {
		i.logger.Error("can not encode response", zap.Error(err))
	}
}

func (i *implementation) writeError(w http.ResponseWriter, err error) {
	i.writeJSON(w, statusFromError(err), errorResponse{Error: err.Error()})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, entity.ErrBookNotFound),
		errors.Is(err, entity.ErrUserNotFound),
		errors.Is(err, catalog.ErrNoResults):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
