package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/store"
	"github.com/MKhiriev/bloglist/models"
)

type statsService struct {
	blogRepository store.BlogRepository

	logger *logger.Logger
}

func NewStatsService(blogRepository store.BlogRepository, logger *logger.Logger) StatsService {
	return &statsService{
		blogRepository: blogRepository,
		logger:         logger,
	}
}

func (s *statsService) BlogStats(ctx context.Context) (models.BlogStats, error) {
	blogs, err := s.blogRepository.ListBlogs(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*statsService.BlogStats").Msg("listing blogs failed")
		return models.BlogStats{}, fmt.Errorf("listing blogs failed: %w", err)
	}

	return models.BlogStats{
		TotalLikes:   TotalLikes(blogs),
		FavoriteBlog: FavoriteBlog(blogs),
		MostBlogs:    MostBlogs(blogs),
		MostLikes:    MostLikes(blogs),
	}, nil
}

// TotalLikes sums the likes of blogs.
func TotalLikes(blogs []models.Blog) int64 {
	var total int64
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the most liked blog. The earliest one wins a tie.
func FavoriteBlog(blogs []models.Blog) *models.FavoriteBlog {
	if len(blogs) == 0 {
		return nil
	}

	best := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > best.Likes {
			best = b
		}
	}

	return &models.FavoriteBlog{Title: best.Title, Author: best.Author, Likes: best.Likes}
}

// MostBlogs returns the author with the most blogs. Among equal counts the
// author seen first wins.
func MostBlogs(blogs []models.Blog) *models.AuthorBlogs {
	authors, counts := groupByAuthor(blogs, func(models.Blog) int64 { return 1 })
	if len(authors) == 0 {
		return nil
	}

	best := authors[0]
	for _, a := range authors[1:] {
		if counts[a] > counts[best] {
			best = a
		}
	}

	return &models.AuthorBlogs{Author: best, Blogs: int(counts[best])}
}

// MostLikes returns the author whose blogs have the most likes in total.
func MostLikes(blogs []models.Blog) *models.AuthorLikes {
	authors, likes := groupByAuthor(blogs, func(b models.Blog) int64 { return b.Likes })
	if len(authors) == 0 {
		return nil
	}

	best := authors[0]
	for _, a := range authors[1:] {
		if likes[a] > likes[best] {
			best = a
		}
	}

	return &models.AuthorLikes{Author: best, Likes: likes[best]}
}

// groupByAuthor sums value per author and returns authors in first-seen order.
func groupByAuthor(blogs []models.Blog, value func(models.Blog) int64) ([]string, map[string]int64) {
	order := make([]string, 0)
	sums := make(map[string]int64)
	for _, b := range blogs {
		if _, seen := sums[b.Author]; !seen {
			order = append(order, b.Author)
		}
		sums[b.Author] += value(b)
	}
	return order, sums
}
