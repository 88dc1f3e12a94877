package shelf

import (
	"context"
	"time"

	"github.com/project/bookshelf/internal/usecase/repository"

	"github.com/project/bookshelf/internal/entity"
	"go.uber.org/zap"
)

//go:generate mockgen -source=usecases.go -destination=mocks/mock_repository.go -package=mocks

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
		SendMessage(ctx context.Context, idempotencyKey string, kind repository.OutboxKind, message []byte) error
		GetMessages(ctx context.Context, batchSize int, inProgressTTL time.Duration) ([]repository.OutboxData, error)
		MarkAs(ctx context.Context, idempotencyKeys []string, s repository.Status) error
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}
)

var _ ShelfUseCase = (*shelfImpl)(nil)

// ShelfUseCase is the full surface consumed by the controller.
type ShelfUseCase interface {
	SaveBookForUser(ctx context.Context, volume entity.Volume, userID string) (entity.Book, error)
	RemoveBook(ctx context.Context, bookID string) error
	RemoveBookFromUser(ctx context.Context, bookID, userID string) error
	GetAllBooks(ctx context.Context) ([]entity.Book, error)
	FindBooksByAuthor(ctx context.Context, authorID string) ([]entity.Book, error)
	FindBookByID(ctx context.Context, bookID string) (entity.Book, error)
	GetBooksOwnedByUser(ctx context.Context, userID string) ([]entity.Book, error)
}

type shelfImpl struct {
	logger            *zap.Logger
	booksRepository   BooksRepository
	authorsRepository AuthorsRepository
	usersRepository   UsersRepository
	outboxRepository  OutboxRepository
	transactor        Transactor
}

func New(
	logger *zap.Logger,
	booksRepository BooksRepository,
	authorsRepository AuthorsRepository,
	usersRepository UsersRepository,
	outboxRepository OutboxRepository,
	transactor Transactor,
) *shelfImpl {
	return &shelfImpl{
		logger:            logger,
		booksRepository:   booksRepository,
		authorsRepository: authorsRepository,
		usersRepository:   usersRepository,
		outboxRepository:  outboxRepository,
		transactor:        transactor,
	}
}
