package schemas

import "blog-server/entities"

// BlogRequest is the body accepted by POST /blog and PUT /blog/:id. Fields are
// pointers so that only a missing field fails; "" and false are valid values.
type BlogRequest struct {
	Title     *string `json:"title" binding:"required"`
	Body      *string `json:"body" binding:"required"`
	Published *bool   `json:"published" binding:"required"`
	AuthorID  *uint   `json:"author_id" binding:"omitempty,min=1"`
}

// ToEntity builds a new, unsaved blog from the request.
func (r BlogRequest) ToEntity() *entities.Blog {
	return &entities.Blog{
		Title:     value(r.Title),
		Body:      value(r.Body),
		Published: value(r.Published),
		AuthorID:  r.AuthorID,
	}
}

// Blog is the flat representation returned by list and create.
type Blog struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
	AuthorID  *uint  `json:"author_id"`
}

// BlogSummary is a blog nested inside a user.
type BlogSummary struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

// ShowBlog is a single blog with its author resolved.
type ShowBlog struct {
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
	Author    *ShowUser `json:"author"`
}

func NewBlog(b *entities.Blog) Blog {
	return Blog{
		ID:        b.ID,
		Title:     b.Title,
		Body:      b.Body,
		Published: b.Published,
		AuthorID:  b.AuthorID,
	}
}

func NewBlogs(blogs []entities.Blog) []Blog {
	out := make([]Blog, 0, len(blogs))
	for i := range blogs {
		out = append(out, NewBlog(&blogs[i]))
	}
	return out
}

// NewShowBlog expects Author (and Author.Blogs) to be preloaded. A blog whose
// author is missing gets a null author.
func NewShowBlog(b *entities.Blog) ShowBlog {
	show := ShowBlog{
		Title:     b.Title,
		Body:      b.Body,
		Published: b.Published,
	}
	if b.Author != nil {
		author := NewShowUser(b.Author)
		show.Author = &author
	}
	return show
}

func newBlogSummaries(blogs []entities.Blog) []BlogSummary {
	out := make([]BlogSummary, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, BlogSummary{Title: b.Title, Body: b.Body, Published: b.Published})
	}
	return out
}

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
