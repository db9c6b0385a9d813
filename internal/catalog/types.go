package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Author is the author block embedded in a book record.
type Author struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName joins first and last name.
func (a Author) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Book is one entry of /catalog/books. URL is the book's link target.
type Book struct {
	ID     string `json:"_id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Author Author `json:"author"`
}

// bookListResponse mirrors GET /catalog/books. Pointers distinguish a
// missing or null field from an empty one.
type bookListResponse struct {
	BookList *[]bookPayload `json:"book_list"`
}

type bookPayload struct {
	ID     *string        `json:"_id"`
	Title  *string        `json:"title"`
	URL    *string        `json:"url"`
	Author *authorPayload `json:"author"`
}

type authorPayload struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func decodeBookList(body []byte) ([]Book, error) {
	var payload bookListResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if payload.BookList == nil {
		return nil, fmt.Errorf("response has no book_list")
	}

	raw := *payload.BookList
	books := make([]Book, 0, len(raw))
	for i, p := range raw {
		book, err := p.book()
		if err != nil {
			return nil, fmt.Errorf("book_list[%d]: %w", i, err)
		}
		books = append(books, book)
	}
	return books, nil
}

// book checks every field is present. Title, url and author names may be
// empty strings but not missing or null; _id and url must be non-blank.
func (p bookPayload) book() (Book, error) {
	switch {
	case p.ID == nil || strings.TrimSpace(*p.ID) == "":
		return Book{}, fmt.Errorf("missing _id")
	case p.Title == nil:
		return Book{}, fmt.Errorf("missing title")
	case p.URL == nil || strings.TrimSpace(*p.URL) == "":
		return Book{}, fmt.Errorf("missing url")
	case p.Author == nil:
		return Book{}, fmt.Errorf("missing author")
	case p.Author.FirstName == nil:
		return Book{}, fmt.Errorf("missing author.first_name")
	case p.Author.LastName == nil:
		return Book{}, fmt.Errorf("missing author.last_name")
	}
	return Book{
		ID:    *p.ID,
		Title: *p.Title,
		URL:   *p.URL,
		Author: Author{
			FirstName: *p.Author.FirstName,
			LastName:  *p.Author.LastName,
		},
	}, nil
}
