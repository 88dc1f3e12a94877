package shelf

import (
	"context"

	"github.com/project/bookshelf/internal/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/project/bookshelf/internal/entity"
)

func (s *shelfImpl) GetAllBooks(ctx context.Context) ([]entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	books, err := s.booksRepository.GetAllBooks(ctx)

	if log.ErrorGetAllBooks(s.logger, err, "Failed get all books", traceID) {
		span.RecordError(err)
		return nil, err
	}

	log.InfoGetAllBooks(s.logger, "Got all books", traceID)
	return books, nil
}

// FindBooksByAuthor returns an empty slice for an unknown author id, an
// absent author is never an error.
func (s *shelfImpl) FindBooksByAuthor(ctx context.Context, authorID string) ([]entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("author_id", authorID))

	books, err := s.booksRepository.GetAuthorBooks(ctx, authorID)

	if log.ErrorFindBooksByAuthor(s.logger, err, "Failed find books by author", traceID, authorID) {
		span.RecordError(err)
		return nil, err
	}

	log.InfoFindBooksByAuthor(s.logger, "Found the author's books", traceID, authorID)
	return books, nil
}

func (s *shelfImpl) FindBookByID(ctx context.Context, bookID string) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("book_id", bookID))

	book, err := s.booksRepository.GetBook(ctx, bookID)

	if log.ErrorFindBookByID(s.logger, err, "Failed find book by id", traceID, bookID) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	log.InfoFindBookByID(s.logger, "Found the book", traceID, bookID)
	return book, nil
}

// GetBooksOwnedByUser fails with ErrUserNotFound for an unknown user and
// returns an empty slice for a user who owns nothing.
func (s *shelfImpl) GetBooksOwnedByUser(ctx context.Context, userID string) ([]entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("user_id", userID))

	if _, err := s.usersRepository.GetUser(ctx, userID); err != nil {
		log.ErrorGetBooksOwnedByUser(s.logger, err, "Failed resolve user", traceID, userID)
		span.RecordError(err)
		return nil, err
	}

	books, err := s.booksRepository.GetUserBooks(ctx, userID)

	if log.ErrorGetBooksOwnedByUser(s.logger, err, "Failed get books owned by user", traceID, userID) {
		span.RecordError(err)
		return nil, err
	}

	log.InfoGetBooksOwnedByUser(s.logger, "Got the user's books", traceID, userID)
	return books, nil
}
