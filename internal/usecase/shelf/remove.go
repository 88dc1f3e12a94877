package shelf

import (
	"context"
	"encoding/json"

	"github.com/project/bookshelf/internal/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/project/bookshelf/internal/usecase/repository"
)

// RemoveBook cascades over the whole graph: every owning user and every
// author is detached before the book row itself goes away, and an author
// whose last book was detached is deleted outright. Detach must precede
// delete, the join tables do not cascade on their own.
func (s *shelfImpl) RemoveBook(ctx context.Context, bookID string) error {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("book_id", bookID))
	log.InfoRemoveBook(s.logger, "Start of remove book", traceID, bookID)

	err := s.transactor.WithTx(ctx, func(ctx context.Context) error {
		book, txErr := s.booksRepository.GetBook(ctx, bookID)

		if txErr != nil {
			return txErr
		}

		for _, userID := range book.UserIDs {
			if txErr = s.usersRepository.DetachBookFromUser(ctx, userID, book.ID); txErr != nil {
				return txErr
			}
		}

		for _, authorID := range book.AuthorIDs {
			if txErr = s.authorsRepository.DetachBookFromAuthor(ctx, authorID, book.ID); txErr != nil {
				return txErr
			}

			remaining, txErr := s.authorsRepository.CountAuthorBooks(ctx, authorID)

			if txErr != nil {
				return txErr
			}

			if remaining == 0 {
				if txErr = s.authorsRepository.DeleteAuthor(ctx, authorID); txErr != nil {
					return txErr
				}
			}
		}

		if txErr = s.booksRepository.DeleteBook(ctx, book.ID); txErr != nil {
			return txErr
		}

		serialized, txErr := json.Marshal(book)

		if txErr != nil {
			return txErr
		}

		idempotencyKey := repository.OutboxKindBookRemoved.String() + "_" + book.ID
		return s.outboxRepository.SendMessage(ctx, idempotencyKey, repository.OutboxKindBookRemoved, serialized)
	})

	if log.ErrorRemoveBook(s.logger, err, "Failed remove book", traceID, bookID) {
		span.RecordError(err)
		return err
	}

	log.InfoRemoveBook(s.logger, "Removed the book", traceID, bookID)
	return nil
}

// RemoveBookFromUser detaches a single ownership link. Both lookups run
// before anything is mutated, and the book and its authors survive even
// when the last owner is detached, only RemoveBook deletes rows.
func (s *shelfImpl) RemoveBookFromUser(ctx context.Context, bookID, userID string) error {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("book_id", bookID), attribute.String("user_id", userID))
	log.InfoRemoveBookFromUser(s.logger, "Start of remove book from user", traceID, bookID, userID)

	err := s.transactor.WithTx(ctx, func(ctx context.Context) error {
		if _, txErr := s.booksRepository.GetBook(ctx, bookID); txErr != nil {
			return txErr
		}

		if _, txErr := s.usersRepository.GetUser(ctx, userID); txErr != nil {
			return txErr
		}

		return s.usersRepository.DetachBookFromUser(ctx, userID, bookID)
	})

	if log.ErrorRemoveBookFromUser(s.logger, err, "Failed remove book from user", traceID, bookID, userID) {
		span.RecordError(err)
		return err
	}

	log.InfoRemoveBookFromUser(s.logger, "Removed the book from user", traceID, bookID, userID)
	return nil
}
