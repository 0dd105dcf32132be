package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/bloglist/internal/adapter"
	"github.com/MKhiriev/bloglist/models"
)

type browserModel struct {
	ctx             context.Context
	api             adapter.ServerAdapter
	copyToClipboard func(string) error

	blogs         []models.Blog
	idx           int
	loading       bool
	confirmDelete bool

	spinner spinner.Model
	help    help.Model
	status  string
	lastErr error
}

func newBrowserModel(ctx context.Context, api adapter.ServerAdapter, copyFn func(string) error) browserModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return browserModel{
		ctx:             ctx,
		api:             api,
		copyToClipboard: copyFn,
		loading:         true,
		spinner:         s,
		help:            help.New(),
	}
}

func (m browserModel) current() (models.Blog, bool) {
	if m.idx < 0 || m.idx >= len(m.blogs) {
		return models.Blog{}, false
	}
	return m.blogs[m.idx], true
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadBlogs())
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case blogsLoadedMsg:
		m.loading = false
		m.lastErr = msg.err
		if msg.err == nil {
			m.blogs = msg.blogs
			m.status = fmt.Sprintf("%d blogs", len(msg.blogs))
		}
		m.clampCursor()

	case blogLikedMsg:
		m.lastErr = msg.err
		if msg.err == nil {
			for i := range m.blogs {
				if m.blogs[i].ID == msg.blog.ID {
					m.blogs[i] = msg.blog
				}
			}
			m.status = fmt.Sprintf("liked %q (%d)", msg.blog.Title, msg.blog.Likes)
		}

	case blogDeletedMsg:
		m.lastErr = msg.err
		if msg.err == nil {
			m.removeBlog(msg.id)
			m.status = "blog deleted"
		}

	case copiedMsg:
		m.lastErr = msg.err
		if msg.err == nil {
			m.status = "copied " + msg.url
		}
	}

	return m, nil
}

func (m browserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmDelete {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirmDelete = false
			if blog, ok := m.current(); ok {
				return m, m.deleteBlog(blog.ID)
			}
		case key.Matches(msg, keys.no):
			m.confirmDelete = false
			m.status = "delete cancelled"
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}

	case key.Matches(msg, keys.down):
		if m.idx < len(m.blogs)-1 {
			m.idx++
		}

	case key.Matches(msg, keys.refresh):
		m.loading = true
		m.lastErr = nil
		return m, tea.Batch(m.spinner.Tick, m.loadBlogs())

	case key.Matches(msg, keys.like):
		if blog, ok := m.current(); ok {
			return m, m.likeBlog(blog)
		}

	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); !ok {
			return m, nil
		}
		if m.api.Token() == "" {
			m.lastErr = adapter.ErrNoToken
			return m, nil
		}
		m.confirmDelete = true

	case key.Matches(msg, keys.copy):
		if blog, ok := m.current(); ok {
			return m, m.copyURL(blog.URL)
		}
	}

	return m, nil
}

func (m *browserModel) clampCursor() {
	if m.idx >= len(m.blogs) {
		m.idx = len(m.blogs) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *browserModel) removeBlog(id string) {
	for i := range m.blogs {
		if m.blogs[i].ID == id {
			m.blogs = append(m.blogs[:i], m.blogs[i+1:]...)
			break
		}
	}
	m.clampCursor()
}

// ── commands ─────────────────────────────────────────

func (m browserModel) loadBlogs() tea.Cmd {
	return func() tea.Msg {
		blogs, err := m.api.ListBlogs(m.ctx)
		return blogsLoadedMsg{blogs: blogs, err: err}
	}
}

func (m browserModel) likeBlog(blog models.Blog) tea.Cmd {
	return func() tea.Msg {
		likes := blog.Likes + 1
		updated, err := m.api.UpdateBlog(m.ctx, blog.ID, models.UpdateBlogRequest{
			Title:  blog.Title,
			Author: blog.Author,
			URL:    blog.URL,
			Likes:  &likes,
		})
		return blogLikedMsg{blog: updated, err: err}
	}
}

func (m browserModel) deleteBlog(id string) tea.Cmd {
	return func() tea.Msg {
		return blogDeletedMsg{id: id, err: m.api.DeleteBlog(m.ctx, id)}
	}
}

func (m browserModel) copyURL(url string) tea.Cmd {
	return func() tea.Msg {
		if err := m.copyToClipboard(url); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{url: url}
	}
}

// ── view ─────────────────────────────────────────────

func (m browserModel) View() string {
	var b strings.Builder

	header := titleStyle.Render("Blogs")
	if m.loading {
		header += " " + m.spinner.View()
	}
	b.WriteString(header + "\n\n")

	switch {
	case m.loading && len(m.blogs) == 0:
		b.WriteString(mutedStyle.Render("loading...") + "\n")
	case len(m.blogs) == 0:
		b.WriteString(mutedStyle.Render("no blogs yet") + "\n")
	default:
		for i, blog := range m.blogs {
			line := fmt.Sprintf("%s by %s  %d likes", blog.Title, blog.Author, blog.Likes)
			if i == m.idx {
				b.WriteString("> " + selectedStyle.Render(line) + "\n")
			} else {
				b.WriteString("  " + line + "\n")
			}
		}
	}

	if blog, ok := m.current(); ok {
		owner := "nobody"
		if blog.User != nil {
			owner = blog.User.Name + " (" + blog.User.Username + ")"
		}
		b.WriteString("\n" + detailStyle.Render(blog.URL+"\nadded by "+owner) + "\n")
	}

	if m.confirmDelete {
		if blog, ok := m.current(); ok {
			b.WriteString(fmt.Sprintf("\nremove %q? (y/n)\n", blog.Title))
		}
	}
	if m.status != "" {
		b.WriteString("\n" + mutedStyle.Render(m.status) + "\n")
	}
	if m.lastErr != nil {
		b.WriteString("\n" + errorStyle.Render("error: "+m.lastErr.Error()) + "\n")
	}

	b.WriteString("\n" + m.help.View(keys))

	return appStyle.Render(b.String())
}
