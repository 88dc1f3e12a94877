package repository

import (
	"context"
	"time"

	"github.com/project/bookshelf/internal/entity"
)

type (
	BooksRepository interface {
		CreateBook(ctx context.Context, book entity.Book) (entity.Book, error)
		GetBook(ctx context.Context, bookID string) (entity.Book, error)
		GetBookByTitle(ctx context.Context, title string) (entity.Book, error)
		BookExistsByTitle(ctx context.Context, title string) (bool, error)
		GetAllBooks(ctx context.Context) ([]entity.Book, error)
		GetAuthorBooks(ctx context.Context, authorID string) ([]entity.Book, error)
		GetUserBooks(ctx context.Context, userID string) ([]entity.Book, error)
		DeleteBook(ctx context.Context, bookID string) error
	}

	AuthorsRepository interface {
		CreateAuthor(ctx context.Context, author entity.Author) (entity.Author, error)
		GetAuthorBySurname(ctx context.Context, surname string) (entity.Author, error)
		AuthorExistsBySurname(ctx context.Context, surname string) (bool, error)
		AttachBookToAuthor(ctx context.Context, authorID, bookID string) error
		DetachBookFromAuthor(ctx context.Context, authorID, bookID string) error
		CountAuthorBooks(ctx context.Context, authorID string) (int, error)
		DeleteAuthor(ctx context.Context, authorID string) error
	}

	UsersRepository interface {
		GetUser(ctx context.Context, userID string) (entity.User, error)
		AttachBookToUser(ctx context.Context, userID, bookID string) error
		DetachBookFromUser(ctx context.Context, userID, bookID string) error
	}

	OutboxRepository interface {
		SendMessage(ctx context.Context, idempotencyKey string, kind OutboxKind, message []byte) error
		GetMessages(ctx context.Context, batchSize int, inProgressTTL time.Duration) ([]OutboxData, error)
		MarkAs(ctx context.Context, idempotencyKeys []string, s Status) error
	}

	OutboxData struct {
		IdempotencyKey string
		Kind           OutboxKind
		RawData        []byte
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}
)

type OutboxKind int

const (
	OutboxKindUndefined OutboxKind = iota
	OutboxKindBookSaved
	OutboxKindBookRemoved
)

func (o OutboxKind) String() string {
	switch o {
	case OutboxKindBookSaved:
		return "book_saved"
	case OutboxKindBookRemoved:
		return "book_removed"
	default:
		return "undefined"
	}
}
