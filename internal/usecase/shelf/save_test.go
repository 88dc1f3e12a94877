package shelf

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/usecase/repository"
	"github.com/project/bookshelf/internal/usecase/shelf/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var errInternalShelf = errors.New("internal error")

type shelfMocks struct {
	books   *mocks.MockBooksRepository
	authors *mocks.MockAuthorsRepository
	users   *mocks.MockUsersRepository
	outbox  *mocks.MockOutboxRepository
}

func initShelfTest(t *testing.T) (context.Context, shelfMocks, *shelfImpl) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := shelfMocks{
		books:   mocks.NewMockBooksRepository(ctrl),
		authors: mocks.NewMockAuthorsRepository(ctrl),
		users:   mocks.NewMockUsersRepository(ctrl),
		outbox:  mocks.NewMockOutboxRepository(ctrl),
	}

	transactor := mocks.NewMockTransactor(ctrl)
	transactor.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, function func(ctx context.Context) error) error {
			return function(ctx)
		}).AnyTimes()

	ctx := context.Background()
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	s := New(logger, m.books, m.authors, m.users, m.outbox, transactor)
	return ctx, m, s
}

func TestSaveBookForUser_NewBookNewAuthor(t *testing.T) {
	t.Parallel()

	ctx, m, s := initShelfTest(t)

	userID := uuid.NewString()
	volume := entity.Volume{Title: "Dune", Authors: []string{"Frank Herbert"}}

	m.users.EXPECT().GetUser(ctx, userID).Return(entity.User{ID: userID}, nil)
	m.books.EXPECT().BookExistsByTitle(ctx, volume.Title).Return(false, nil)
	m.books.EXPECT().CreateBook(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input entity.Book) (entity.Book, error) {
			require.Equal(t, volume.Title, input.Title)
			input.ID = uuid.NewString()
			return input, nil
		})
	m.authors.EXPECT().AuthorExistsBySurname(ctx, "Herbert").Return(false, nil)
	m.authors.EXPECT().CreateAuthor(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input entity.Author) (entity.Author, error) {
			require.Equal(t, "Frank", input.Name)
			require.Equal(t, "Herbert", input.Surname)
			input.ID = uuid.NewString()
			return input, nil
		})
	m.authors.EXPECT().AttachBookToAuthor(ctx, gomock.Any(), gomock.Any()).Return(nil)
	m.users.EXPECT().AttachBookToUser(ctx, userID, gomock.Any()).Return(nil)
	m.outbox.EXPECT().SendMessage(ctx, gomock.Any(), repository.OutboxKindBookSaved, gomock.Any()).Return(nil)

	book, err := s.SaveBookForUser(ctx, volume, userID)
	require.NoError(t, err)
	require.Equal(t, volume.Title, book.Title)
	require.Len(t, book.AuthorIDs, 1)
}

func TestSaveBookForUser_ExistingTitleReused(t *testing.T) {
	t.Parallel()

	ctx, m, s := initShelfTest(t)

	userID := uuid.NewString()
	existing := entity.Book{ID: uuid.NewString(), Title: "Dune"}
	volume := entity.Volume{Title: "Dune", Authors: []string{"Somebody Else"}}

	m.users.EXPECT().GetUser(ctx, userID).Return(entity.User{ID: userID}, nil)
	m.books.EXPECT().BookExistsByTitle(ctx, volume.Title).Return(true, nil)
	m.books.EXPECT().GetBookByTitle(ctx, volume.Title).Return(existing, nil)
	m.users.EXPECT().AttachBookToUser(ctx, userID, existing.ID).Return(nil)
	m.outbox.EXPECT().SendMessage(ctx, gomock.Any(), repository.OutboxKindBookSaved, gomock.Any()).Return(nil)

	// no CreateBook, no author resolution: the known title wins as-is
	book, err := s.SaveBookForUser(ctx, volume, userID)
	require.NoError(t, err)
	require.Equal(t, existing.ID, book.ID)
}

func TestSaveBookForUser_ExistingSurnameReused(t *testing.T) {
	t.Parallel()

	ctx, m, s := initShelfTest(t)

	userID := uuid.NewString()
	author := entity.Author{ID: uuid.NewString(), Name: "Frank", Surname: "Herbert"}
	volume := entity.Volume{Title: "Dune Messiah", Authors: []string{"F. Herbert"}}

	m.users.EXPECT().GetUser(ctx, userID).Return(entity.User{ID: userID}, nil)
	m.books.EXPECT().BookExistsByTitle(ctx, volume.Title).Return(false, nil)
	m.books.EXPECT().CreateBook(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input entity.Book) (entity.Book, error) {
			input.ID = uuid.NewString()
			return input, nil
		})
	m.authors.EXPECT().AuthorExistsBySurname(ctx, "Herbert").Return(true, nil)
	m.authors.EXPECT().GetAuthorBySurname(ctx, "Herbert").Return(author, nil)
	m.authors.EXPECT().AttachBookToAuthor(ctx, author.ID, gomock.Any()).Return(nil)
	m.users.EXPECT().AttachBookToUser(ctx, userID, gomock.Any()).Return(nil)
	m.outbox.EXPECT().SendMessage(ctx, gomock.Any(), repository.OutboxKindBookSaved, gomock.Any()).Return(nil)

	book, err := s.SaveBookForUser(ctx, volume, userID)
	require.NoError(t, err)
	require.Equal(t, []string{author.ID}, book.AuthorIDs)
}

func TestSaveBookForUser_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setup      func(ctx context.Context, m shelfMocks, userID string)
		requireErr error
	}{
		{name: "unknown user stops before any book work",
			setup: func(ctx context.Context, m shelfMocks, userID string) {
				m.users.EXPECT().GetUser(ctx, userID).Return(entity.User{}, entity.ErrUserNotFound)
			},
			requireErr: entity.ErrUserNotFound},

		{name: "existence check with internal error",
			setup: func(ctx context.Context, m shelfMocks, userID string) {
				m.users.EXPECT().GetUser(ctx, userID).Return(entity.User{ID: userID}, nil)
				m.books.EXPECT().BookExistsByTitle(ctx, gomock.Any()).Return(false, errInternalShelf)
			},
			requireErr: errInternalShelf},

		{name: "create book with internal error",
			setup: func(ctx context.Context, m shelfMocks, userID string) {
				m.users.EXPECT().GetUser(ctx, userID).Return(entity.User{ID: userID}, nil)
				m.books.EXPECT().BookExistsByTitle(ctx, gomock.Any()).Return(false, nil)
				m.books.EXPECT().CreateBook(ctx, gomock.Any()).Return(entity.Book{}, errInternalShelf)
			},
			requireErr: errInternalShelf},

		{name: "outbox message with internal error",
			setup: func(ctx context.Context, m shelfMocks, userID string) {
				m.users.EXPECT().GetUser(ctx, userID).Return(entity.User{ID: userID}, nil)
				m.books.EXPECT().BookExistsByTitle(ctx, gomock.Any()).Return(true, nil)
				m.books.EXPECT().GetBookByTitle(ctx, gomock.Any()).Return(entity.Book{ID: uuid.NewString()}, nil)
				m.users.EXPECT().AttachBookToUser(ctx, userID, gomock.Any()).Return(nil)
				m.outbox.EXPECT().SendMessage(ctx, gomock.Any(), repository.OutboxKindBookSaved, gomock.Any()).Return(errInternalShelf)
			},
			requireErr: errInternalShelf},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, m, s := initShelfTest(t)
			userID := uuid.NewString()
			test.setup(ctx, m, userID)

			book, err := s.SaveBookForUser(ctx, entity.Volume{Title: "Dune", Authors: []string{"Frank Herbert"}}, userID)
			require.ErrorIs(t, err, test.requireErr)
			require.Empty(t, book)
		})
	}
}
