package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/utils"
	"github.com/MKhiriev/bloglist/models"
)

func (h *Handler) listBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.services.BlogService.ListBlogs(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}

	utils.WriteJSON(w, blogs, http.StatusOK)
}

func (h *Handler) getBlog(w http.ResponseWriter, r *http.Request) {
	blog, err := h.services.BlogService.GetBlog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, blog, http.StatusOK)
}

func (h *Handler) createBlog(w http.ResponseWriter, r *http.Request) {
	var request models.CreateBlogRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	var caller *models.User
	if user, ok := utils.GetUserFromContext(r.Context()); ok {
		caller = &user
	}

	blog, err := h.services.BlogService.CreateBlog(r.Context(), caller, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, blog, http.StatusCreated)
}

// updateBlog replaces the blog fields. The route is public.
func (h *Handler) updateBlog(w http.ResponseWriter, r *http.Request) {
	var request models.UpdateBlogRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	blog, err := h.services.BlogService.UpdateBlog(r.Context(), chi.URLParam(r, "id"), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, blog, http.StatusOK)
}

func (h *Handler) deleteBlog(w http.ResponseWriter, r *http.Request) {
	var caller *models.User
	if user, ok := utils.GetUserFromContext(r.Context()); ok {
		caller = &user
	}

	id := chi.URLParam(r, "id")
	if err := h.services.BlogService.DeleteBlog(r.Context(), caller, id); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("blog_id", id).Msg("blog removed")
	utils.NoContent(w)
}

func (h *Handler) blogStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.StatsService.BlogStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
