package shelf

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/usecase/repository"
)

// fakeStore is an in-memory stand-in for the Postgres repositories. It
// keeps the same join-table representation, so invariant checks against
// it exercise the same graph shape the real store holds.
type fakeStore struct {
	books   map[string]entity.Book
	authors map[string]entity.Author
	users   map[string]entity.User

	authorBook map[[2]string]struct{}
	userBook   map[[2]string]struct{}

	outbox []repository.OutboxData
}

var errAuthorAbsent = errors.New("author absent in fake store")

func newFakeStore() *fakeStore {
	return &fakeStore{
		books:      make(map[string]entity.Book),
		authors:    make(map[string]entity.Author),
		users:      make(map[string]entity.User),
		authorBook: make(map[[2]string]struct{}),
		userBook:   make(map[[2]string]struct{}),
	}
}

func (f *fakeStore) addUser(name string) string {
	id := uuid.NewString()
	f.users[id] = entity.User{ID: id, Name: name, CreatedAt: time.Now()}
	return id
}

var _ BooksRepository = (*fakeStore)(nil)
var _ AuthorsRepository = (*fakeStore)(nil)
var _ UsersRepository = (*fakeStore)(nil)
var _ OutboxRepository = (*fakeStore)(nil)

func (f *fakeStore) CreateBook(_ context.Context, book entity.Book) (entity.Book, error) {
	book.ID = uuid.NewString()
	book.CreatedAt = time.Now()
	book.UpdatedAt = book.CreatedAt
	book.AuthorIDs = nil
	book.UserIDs = nil
	f.books[book.ID] = book
	return book, nil
}

func (f *fakeStore) GetBook(_ context.Context, bookID string) (entity.Book, error) {
	book, ok := f.books[bookID]
	if !ok {
		return entity.Book{}, entity.ErrBookNotFound
	}
	return f.withAssociations(book), nil
}

func (f *fakeStore) GetBookByTitle(_ context.Context, title string) (entity.Book, error) {
	for _, book := range f.books {
		if book.Title == title {
			return f.withAssociations(book), nil
		}
	}
	return entity.Book{}, entity.ErrBookNotFound
}

func (f *fakeStore) BookExistsByTitle(_ context.Context, title string) (bool, error) {
	for _, book := range f.books {
		if book.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) GetAllBooks(_ context.Context) ([]entity.Book, error) {
	ans := make([]entity.Book, 0, len(f.books))
	for _, book := range f.books {
		ans = append(ans, f.withAssociations(book))
	}
	return ans, nil
}

func (f *fakeStore) GetAuthorBooks(_ context.Context, authorID string) ([]entity.Book, error) {
	ans := make([]entity.Book, 0)
	for key := range f.authorBook {
		if key[0] == authorID {
			ans = append(ans, f.withAssociations(f.books[key[1]]))
		}
	}
	return ans, nil
}

func (f *fakeStore) GetUserBooks(_ context.Context, userID string) ([]entity.Book, error) {
	ans := make([]entity.Book, 0)
	for key := range f.userBook {
		if key[0] == userID {
			ans = append(ans, f.withAssociations(f.books[key[1]]))
		}
	}
	return ans, nil
}

func (f *fakeStore) DeleteBook(_ context.Context, bookID string) error {
	delete(f.books, bookID)
	return nil
}

func (f *fakeStore) withAssociations(book entity.Book) entity.Book {
	book.AuthorIDs = nil
	book.UserIDs = nil
	for key := range f.authorBook {
		if key[1] == book.ID {
			book.AuthorIDs = append(book.AuthorIDs, key[0])
		}
	}
	for key := range f.userBook {
		if key[1] == book.ID {
			book.UserIDs = append(book.UserIDs, key[0])
		}
	}
	return book
}

func (f *fakeStore) CreateAuthor(_ context.Context, author entity.Author) (entity.Author, error) {
	author.ID = uuid.NewString()
	author.CreatedAt = time.Now()
	author.UpdatedAt = author.CreatedAt
	f.authors[author.ID] = author
	return author, nil
}

func (f *fakeStore) GetAuthorBySurname(_ context.Context, surname string) (entity.Author, error) {
	for _, author := range f.authors {
		if author.Surname == surname {
			return author, nil
		}
	}
	return entity.Author{}, errAuthorAbsent
}

func (f *fakeStore) AuthorExistsBySurname(_ context.Context, surname string) (bool, error) {
	for _, author := range f.authors {
		if author.Surname == surname {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) AttachBookToAuthor(_ context.Context, authorID, bookID string) error {
	f.authorBook[[2]string{authorID, bookID}] = struct{}{}
	return nil
}

func (f *fakeStore) DetachBookFromAuthor(_ context.Context, authorID, bookID string) error {
	delete(f.authorBook, [2]string{authorID, bookID})
	return nil
}

func (f *fakeStore) CountAuthorBooks(_ context.Context, authorID string) (int, error) {
	count := 0
	for key := range f.authorBook {
		if key[0] == authorID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) DeleteAuthor(_ context.Context, authorID string) error {
	delete(f.authors, authorID)
	return nil
}

func (f *fakeStore) GetUser(_ context.Context, userID string) (entity.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return entity.User{}, entity.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeStore) AttachBookToUser(_ context.Context, userID, bookID string) error {
	f.userBook[[2]string{userID, bookID}] = struct{}{}
	return nil
}

func (f *fakeStore) DetachBookFromUser(_ context.Context, userID, bookID string) error {
	delete(f.userBook, [2]string{userID, bookID})
	return nil
}

func (f *fakeStore) SendMessage(_ context.Context, idempotencyKey string, kind repository.OutboxKind, message []byte) error {
	for _, data := range f.outbox {
		if data.IdempotencyKey == idempotencyKey {
			return nil
		}
	}
	f.outbox = append(f.outbox, repository.OutboxData{
		IdempotencyKey: idempotencyKey,
		Kind:           kind,
		RawData:        message,
	})
	return nil
}

func (f *fakeStore) GetMessages(_ context.Context, batchSize int, _ time.Duration) ([]repository.OutboxData, error) {
	if batchSize > len(f.outbox) {
		batchSize = len(f.outbox)
	}
	return f.outbox[:batchSize], nil
}

func (f *fakeStore) MarkAs(_ context.Context, _ []string, _ repository.Status) error {
	return nil
}

// passTransactor runs the function directly, the fake store has no
// transactions to manage.
type passTransactor struct{}

func (passTransactor) WithTx(ctx context.Context, function func(ctx context.Context) error) error {
	return function(ctx)
}
