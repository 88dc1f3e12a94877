package shelf

import (
	"context"
	"encoding/json"

	"github.com/project/bookshelf/internal/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/usecase/repository"
)

// SaveBookForUser resolves the volume into a persisted book and links it
// to the user. Title is the dedup key for books, surname for authors: a
// known title reuses the existing row untouched, a known surname attaches
// the new book to the existing author. The whole sequence runs in one
// transaction, so concurrent saves of the same title cannot leave
// duplicate rows behind.
func (s *shelfImpl) SaveBookForUser(ctx context.Context, volume entity.Volume, userID string) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoSaveBookForUser(s.logger, "Start of save book for user", traceID, volume.Title, userID)

	var book entity.Book
	err := s.transactor.WithTx(ctx, func(ctx context.Context) error {
		if _, txErr := s.usersRepository.GetUser(ctx, userID); txErr != nil {
			return txErr
		}

		exists, txErr := s.booksRepository.BookExistsByTitle(ctx, volume.Title)

		if txErr != nil {
			return txErr
		}

		if exists {
			book, txErr = s.booksRepository.GetBookByTitle(ctx, volume.Title)
		} else {
			book, txErr = s.createBookWithAuthors(ctx, volume)
		}

		if txErr != nil {
			return txErr
		}

		if txErr = s.usersRepository.AttachBookToUser(ctx, userID, book.ID); txErr != nil {
			return txErr
		}

		serialized, txErr := json.Marshal(book)

		if txErr != nil {
			return txErr
		}

		idempotencyKey := repository.OutboxKindBookSaved.String() + "_" + book.ID + "_" + userID
		return s.outboxRepository.SendMessage(ctx, idempotencyKey, repository.OutboxKindBookSaved, serialized)
	})

	if log.ErrorSaveBookForUser(s.logger, err, "Failed save book for user", traceID, volume.Title, userID) {
		span.SetAttributes(attribute.String("book_title", volume.Title))
		span.RecordError(err)
		return entity.Book{}, err
	}

	span.SetAttributes(attribute.String("book_id", book.ID))
	log.InfoSaveBookForUser(s.logger, "Saved the book for user", traceID, volume.Title, userID, book.ID)
	return book, nil
}

// createBookWithAuthors inserts a fresh book row and resolves every raw
// author name against the surname key, creating authors only when the
// surname is unknown. An absent author is always a create path, never an
// error.
func (s *shelfImpl) createBookWithAuthors(ctx context.Context, volume entity.Volume) (entity.Book, error) {
	book, err := s.booksRepository.CreateBook(ctx, entity.Book{
		Title:         volume.Title,
		PublishedDate: volume.PublishedDate,
		PageCount:     volume.PageCount,
		AverageRating: volume.AverageRating,
		Language:      volume.Language,
		Description:   volume.Description,
	})

	if err != nil {
		return entity.Book{}, err
	}

	for _, raw := range volume.Authors {
		name, surname := ParseAuthorName(raw)

		exists, err := s.authorsRepository.AuthorExistsBySurname(ctx, surname)

		if err != nil {
			return entity.Book{}, err
		}

		var author entity.Author
		if exists {
			author, err = s.authorsRepository.GetAuthorBySurname(ctx, surname)
		} else {
			author, err = s.authorsRepository.CreateAuthor(ctx, entity.Author{
				Name:    name,
				Surname: surname,
			})
		}

		if err != nil {
			return entity.Book{}, err
		}

		if err = s.authorsRepository.AttachBookToAuthor(ctx, author.ID, book.ID); err != nil {
			return entity.Book{}, err
		}

		book.AuthorIDs = append(book.AuthorIDs, author.ID)
	}

	return book, nil
}
