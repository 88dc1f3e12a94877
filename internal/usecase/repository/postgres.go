package repository

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/project/bookshelf/internal/entity"
)

const log = false

// DataBase is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock pools.
type DataBase interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

var _ BooksRepository = (*postgresRepository)(nil)
var _ AuthorsRepository = (*postgresRepository)(nil)
var _ UsersRepository = (*postgresRepository)(nil)

type postgresRepository struct {
	logger *zap.Logger
	db     DataBase
}

func New(logger *zap.Logger, db DataBase) *postgresRepository {
	return &postgresRepository{
		logger: logger,
		db:     db,
	}
}

// conn returns the transaction injected by the transactor when present,
// otherwise the pool itself.
func (p *postgresRepository) conn(ctx context.Context) DataBase {
	if tx, err := extractTx(ctx); err == nil {
		return tx
	}
	return p.db
}

func (p *postgresRepository) CreateBook(ctx context.Context, book entity.Book) (entity.Book, error) {
	const query = `
INSERT INTO book (title, published_date, page_count, average_rating, language, description)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at
`
	result := book

	err := p.conn(ctx).QueryRow(ctx, query,
		book.Title, book.PublishedDate, book.PageCount,
		book.AverageRating, book.Language, book.Description).
		Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)

	if err != nil {
		return entity.Book{}, err
	}

	if log && p.logger != nil {
		p.logger.Info("book row created", zap.String("book_id", result.ID))
	}

	return result, nil
}

func (p *postgresRepository) GetBook(ctx context.Context, bookID string) (entity.Book, error) {
	const query = `
SELECT id, title, published_date, page_count, average_rating, language, description, created_at, updated_at
FROM book
WHERE id = $1
`
	book, err := p.scanBook(ctx, query, bookID)
	if err != nil {
		return entity.Book{}, err
	}
	return p.loadBookAssociations(ctx, book)
}

func (p *postgresRepository) GetBookByTitle(ctx context.Context, title string) (entity.Book, error) {
	const query = `
SELECT id, title, published_date, page_count, average_rating, language, description, created_at, updated_at
FROM book
WHERE title = $1
`
	book, err := p.scanBook(ctx, query, title)
	if err != nil {
		return entity.Book{}, err
	}
	return p.loadBookAssociations(ctx, book)
}

func (p *postgresRepository) scanBook(ctx context.Context, query string, arg any) (entity.Book, error) {
	var book entity.Book
	err := p.conn(ctx).QueryRow(ctx, query, arg).
		Scan(&book.ID, &book.Title, &book.PublishedDate, &book.PageCount,
			&book.AverageRating, &book.Language, &book.Description,
			&book.CreatedAt, &book.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return entity.Book{}, entity.ErrBookNotFound
	}

	if err != nil {
		return entity.Book{}, err
	}

	return book, nil
}

// loadBookAssociations fetches both sides of the book graph explicitly,
// there is no lazy loading hidden behind field access.
func (p *postgresRepository) loadBookAssociations(ctx context.Context, book entity.Book) (entity.Book, error) {
	const queryAuthors = `
SELECT author_id
FROM author_book
WHERE book_id = $1
`
	authorIDs, err := p.scanIDs(ctx, queryAuthors, book.ID)
	if err != nil {
		return entity.Book{}, err
	}
	book.AuthorIDs = authorIDs

	const queryUsers = `
SELECT user_id
FROM user_book
WHERE book_id = $1
`
	userIDs, err := p.scanIDs(ctx, queryUsers, book.ID)
	if err != nil {
		return entity.Book{}, err
	}
	book.UserIDs = userIDs

	return book, nil
}

func (p *postgresRepository) scanIDs(ctx context.Context, query string, arg any) ([]string, error) {
	rows, err := p.conn(ctx).Query(ctx, query, arg)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string

		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (p *postgresRepository) BookExistsByTitle(ctx context.Context, title string) (bool, error) {
	const query = `
SELECT EXISTS (SELECT 1 FROM book WHERE title = $1)
`
	var exists bool
	err := p.conn(ctx).QueryRow(ctx, query, title).Scan(&exists)

	if err != nil {
		return false, err
	}

	return exists, nil
}

func (p *postgresRepository) GetAllBooks(ctx context.Context) ([]entity.Book, error) {
	const query = `
SELECT id, title, published_date, page_count, average_rating, language, description, created_at, updated_at
FROM book
ORDER BY created_at
`
	return p.scanBooks(ctx, query)
}

func (p *postgresRepository) GetAuthorBooks(ctx context.Context, authorID string) ([]entity.Book, error) {
	const query = `
SELECT b.id, b.title, b.published_date, b.page_count, b.average_rating, b.language, b.description, b.created_at, b.updated_at
FROM book b
JOIN author_book ab ON ab.book_id = b.id
WHERE ab.author_id = $1
ORDER BY b.created_at
`
	return p.scanBooks(ctx, query, authorID)
}

func (p *postgresRepository) GetUserBooks(ctx context.Context, userID string) ([]entity.Book, error) {
	const query = `
SELECT b.id, b.title, b.published_date, b.page_count, b.average_rating, b.language, b.description, b.created_at, b.updated_at
FROM book b
JOIN user_book ub ON ub.book_id = b.id
WHERE ub.user_id = $1
ORDER BY b.created_at
`
	return p.scanBooks(ctx, query, userID)
}

func (p *postgresRepository) scanBooks(ctx context.Context, query string, args ...any) ([]entity.Book, error) {
	rows, err := p.conn(ctx).Query(ctx, query, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	ans := make([]entity.Book, 0)
	for rows.Next() {
		var book entity.Book

		if err = rows.Scan(&book.ID, &book.Title, &book.PublishedDate, &book.PageCount,
			&book.AverageRating, &book.Language, &book.Description,
			&book.CreatedAt, &book.UpdatedAt); err != nil {
			return nil, err
		}

		ans = append(ans, book)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range ans {
		ans[i], err = p.loadBookAssociations(ctx, ans[i])
		if err != nil {
			return nil, err
		}
	}

	return ans, nil
}

func (p *postgresRepository) DeleteBook(ctx context.Context, bookID string) error {
	const query = `
DELETE FROM book WHERE id = $1
`
	_, err := p.conn(ctx).Exec(ctx, query, bookID)
	return err
}

func (p *postgresRepository) CreateAuthor(ctx context.Context, author entity.Author) (entity.Author, error) {
	const query = `
INSERT INTO author (name, surname)
VALUES ($1, $2)
RETURNING id, created_at, updated_at
`
	result := author

	err := p.conn(ctx).QueryRow(ctx, query, author.Name, author.Surname).
		Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)

	if err != nil {
		return entity.Author{}, err
	}

	return result, nil
}

func (p *postgresRepository) GetAuthorBySurname(ctx context.Context, surname string) (entity.Author, error) {
	const query = `
SELECT id, name, surname, created_at, updated_at
FROM author
WHERE surname = $1
`
	var author entity.Author
	err := p.conn(ctx).QueryRow(ctx, query, surname).
		Scan(&author.ID, &author.Name, &author.Surname, &author.CreatedAt, &author.UpdatedAt)

	if err != nil {
		return entity.Author{}, err
	}

	const queryBooks = `
SELECT book_id
FROM author_book
WHERE author_id = $1
`
	author.BookIDs, err = p.scanIDs(ctx, queryBooks, author.ID)

	if err != nil {
		return entity.Author{}, err
	}

	return author, nil
}

func (p *postgresRepository) AuthorExistsBySurname(ctx context.Context, surname string) (bool, error) {
	const query = `
SELECT EXISTS (SELECT 1 FROM author WHERE surname = $1)
`
	var exists bool
	err := p.conn(ctx).QueryRow(ctx, query, surname).Scan(&exists)

	if err != nil {
		return false, err
	}

	return exists, nil
}

func (p *postgresRepository) AttachBookToAuthor(ctx context.Context, authorID, bookID string) error {
	const query = `
INSERT INTO author_book (author_id, book_id)
VALUES ($1, $2)
ON CONFLICT (author_id, book_id) DO NOTHING
`
	_, err := p.conn(ctx).Exec(ctx, query, authorID, bookID)
	return err
}

func (p *postgresRepository) DetachBookFromAuthor(ctx context.Context, authorID, bookID string) error {
	const query = `
DELETE FROM author_book WHERE author_id = $1 AND book_id = $2
`
	_, err := p.conn(ctx).Exec(ctx, query, authorID, bookID)
	return err
}

func (p *postgresRepository) CountAuthorBooks(ctx context.Context, authorID string) (int, error) {
	const query = `
SELECT count(*) FROM author_book WHERE author_id = $1
`
	var count int
	err := p.conn(ctx).QueryRow(ctx, query, authorID).Scan(&count)

	if err != nil {
		return 0, err
	}

	return count, nil
}

func (p *postgresRepository) DeleteAuthor(ctx context.Context, authorID string) error {
	const query = `
DELETE FROM author WHERE id = $1
`
	_, err := p.conn(ctx).Exec(ctx, query, authorID)
	return err
}

func (p *postgresRepository) GetUser(ctx context.Context, userID string) (entity.User, error) {
	const query = `
SELECT id, name, created_at
FROM users
WHERE id = $1
`
	var user entity.User
	err := p.conn(ctx).QueryRow(ctx, query, userID).
		Scan(&user.ID, &user.Name, &user.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, entity.ErrUserNotFound
	}

	if err != nil {
		return entity.User{}, err
	}

	return user, nil
}

// AttachBookToUser is idempotent: re-linking an already owned book is a
// no-op, so saving the same title twice for one user leaves one row.
func (p *postgresRepository) AttachBookToUser(ctx context.Context, userID, bookID string) error {
	const query = `
INSERT INTO user_book (user_id, book_id)
VALUES ($1, $2)
ON CONFLICT (user_id, book_id) DO NOTHING
`
	_, err := p.conn(ctx).Exec(ctx, query, userID, bookID)
	return err
}

func (p *postgresRepository) DetachBookFromUser(ctx context.Context, userID, bookID string) error {
	const query = `
DELETE FROM user_book WHERE user_id = $1 AND book_id = $2
`
	_, err := p.conn(ctx).Exec(ctx, query, userID, bookID)
	return err
}
