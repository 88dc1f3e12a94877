package entity

import (
	"errors"
	"time"
)

var (
	ErrBookNotFound = errors.New("book not found")
	ErrUserNotFound = errors.New("user not found")
)

type (
	// Book is a catalog record. Title is the natural key: no two books
	// share a title, saves against an existing title reuse the row.
	Book struct {
		ID            string    `json:"id"`
		Title         string    `json:"title"`
		PublishedDate string    `json:"published_date"`
		PageCount     int       `json:"page_count"`
		AverageRating float64   `json:"average_rating"`
		Language      string    `json:"language"`
		Description   string    `json:"description"`
		AuthorIDs     []string  `json:"author_ids,omitempty"`
		UserIDs       []string  `json:"user_ids,omitempty"`
		CreatedAt     time.Time `json:"created_at"`
		UpdatedAt     time.Time `json:"updated_at"`
	}

	// Author surname is the natural key, see ParseAuthorName for how
	// surnames are derived from raw volume author strings.
	Author struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Surname   string    `json:"surname"`
		BookIDs   []string  `json:"book_ids,omitempty"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	// User rows are created outside this service, the engine only
	// references them by id.
	User struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"created_at"`
	}

	// Volume is one bibliographic record returned by the external
	// catalog search.
	Volume struct {
		Title         string   `json:"title"`
		PublishedDate string   `json:"published_date"`
		PageCount     int      `json:"page_count"`
		AverageRating float64  `json:"average_rating"`
		Language      string   `json:"language"`
		Description   string   `json:"description"`
		Authors       []string `json:"authors"`
	}
)
