package client

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/bloglist/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	idStyle     = lipgloss.NewStyle().Faint(true)
	labelStyle  = lipgloss.NewStyle().Bold(true)
)

func renderBlog(b models.Blog) string {
	owner := "-"
	if b.User != nil {
		owner = b.User.Username
	}

	return fmt.Sprintf("%s %s by %s\n    %s  likes: %d  owner: %s",
		idStyle.Render(b.ID), labelStyle.Render(b.Title), b.Author, b.URL, b.Likes, owner)
}

func renderBlogs(blogs []models.Blog) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Blogs (%d)", len(blogs))) + "\n")
	for _, blog := range blogs {
		b.WriteString(renderBlog(blog) + "\n")
	}
	return b.String()
}

func renderUsers(users []models.User) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Users (%d)", len(users))) + "\n")
	for _, u := range users {
		fmt.Fprintf(&b, "%s %s (%s)  blogs: %d\n", idStyle.Render(u.ID), labelStyle.Render(u.Username), u.Name, len(u.Blogs))
		for _, ref := range u.Blogs {
			fmt.Fprintf(&b, "    - %s by %s\n", ref.Title, ref.Author)
		}
	}
	return b.String()
}

func renderStats(s models.BlogStats) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Blog stats") + "\n")
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("total likes:"), s.TotalLikes)

	if s.FavoriteBlog != nil {
		fmt.Fprintf(&b, "%s %s by %s (%d likes)\n", labelStyle.Render("favorite:"), s.FavoriteBlog.Title, s.FavoriteBlog.Author, s.FavoriteBlog.Likes)
	}
	if s.MostBlogs != nil {
		fmt.Fprintf(&b, "%s %s (%d blogs)\n", labelStyle.Render("most blogs:"), s.MostBlogs.Author, s.MostBlogs.Blogs)
	}
	if s.MostLikes != nil {
		fmt.Fprintf(&b, "%s %s (%d likes)\n", labelStyle.Render("most likes:"), s.MostLikes.Author, s.MostLikes.Likes)
	}
	return b.String()
}
