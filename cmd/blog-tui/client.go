package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type blogItem struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
	AuthorID  *uint  `json:"author_id"`
}

type blogAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type blogDetail struct {
	Title     string      `json:"title"`
	Body      string      `json:"body"`
	Published bool        `json:"published"`
	Author    *blogAuthor `json:"author"`
}

type blogsLoadedMsg []blogItem
type blogLoadedMsg blogDetail
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// client talks to a running blog server.
type client struct {
	baseURL string
	http    *http.Client
}

func newClient(baseURL string, timeout time.Duration) *client {
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *client) get(path string, out interface{}) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("server not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var errNotFound = errors.New("not found")

func (c *client) listBlogs() tea.Cmd {
	return func() tea.Msg {
		var blogs []blogItem
		if err := c.get("/blog", &blogs); err != nil {
			if errors.Is(err, errNotFound) {
				return blogsLoadedMsg(nil)
			}
			return errMsg{err}
		}
		return blogsLoadedMsg(blogs)
	}
}

func (c *client) showBlog(id uint) tea.Cmd {
	return func() tea.Msg {
		var detail blogDetail
		if err := c.get(fmt.Sprintf("/blog/%d", id), &detail); err != nil {
			if errors.Is(err, errNotFound) {
				return errMsg{fmt.Errorf("blog %d no longer exists", id)}
			}
			return errMsg{err}
		}
		return blogLoadedMsg(detail)
	}
}
