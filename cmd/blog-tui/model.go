package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	draftStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	bodyStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Width(72)
)

type step int

const (
	stepLoadingList step = iota
	stepListing
	stepLoadingDetail
	stepShowingDetail
)

type model struct {
	api      *client
	step     step
	blogs    []blogItem
	cursor   int
	detail   *blogDetail
	message  string
	quitting bool
}

func initialModel(api *client) model {
	return model{api: api, step: stepLoadingList}
}

func (m model) Init() tea.Cmd {
	return m.api.listBlogs()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.step == stepListing && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.step == stepListing && m.cursor < len(m.blogs)-1 {
				m.cursor++
			}

		case "r":
			if m.step == stepListing || m.step == stepShowingDetail {
				m.step = stepLoadingList
				m.message = ""
				return m, m.api.listBlogs()
			}

		case "esc", "backspace":
			if m.step == stepShowingDetail {
				m.step = stepListing
				m.detail = nil
			}

		case "enter":
			if m.step == stepListing && len(m.blogs) > 0 {
				m.step = stepLoadingDetail
				m.message = ""
				return m, m.api.showBlog(m.blogs[m.cursor].ID)
			}
		}

	case blogsLoadedMsg:
		m.blogs = []blogItem(msg)
		m.step = stepListing
		if m.cursor >= len(m.blogs) {
			m.cursor = max(len(m.blogs)-1, 0)
		}

	case blogLoadedMsg:
		d := blogDetail(msg)
		m.detail = &d
		m.step = stepShowingDetail

	case errMsg:
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		m.step = stepListing
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Blog browser"))
	s.WriteString("\n")
	if m.message != "" {
		s.WriteString(m.message + "\n\n")
	}

	switch m.step {
	case stepLoadingList:
		s.WriteString("Loading blogs...\n")

	case stepListing:
		if len(m.blogs) == 0 {
			s.WriteString("No blogs yet.\n")
		}
		for i, b := range m.blogs {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			line := fmt.Sprintf("#%d %s", b.ID, b.Title)
			if !b.Published {
				line += draftStyle.Render(" (draft)")
			}
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(line)))
		}
		s.WriteString("\nUse ↑/↓, Enter to open, r to refresh, q to quit\n")

	case stepLoadingDetail:
		s.WriteString("Loading blog...\n")

	case stepShowingDetail:
		d := m.detail
		s.WriteString(selectedStyle.Render(d.Title) + "\n")
		author := "unknown author"
		if d.Author != nil {
			author = fmt.Sprintf("%s <%s>", d.Author.Name, d.Author.Email)
		}
		status := "published"
		if !d.Published {
			status = "draft"
		}
		s.WriteString(normalStyle.Render(fmt.Sprintf("by %s, %s", author, status)) + "\n\n")
		s.WriteString(bodyStyle.Render(d.Body) + "\n")
		s.WriteString("\nEsc to go back, r to refresh, q to quit\n")
	}

	return s.String()
}
