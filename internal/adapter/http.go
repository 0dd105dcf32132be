package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/bloglist/internal/config"
	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/utils"
	"github.com/MKhiriev/bloglist/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds the REST implementation of [ServerAdapter]
// for cfg.ServerURL. A URL without a scheme is treated as http. The
// token from cfg, if any, is used for authenticated requests.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterUserRequest) (models.User, error) {
	var user models.User
	if err := h.do(h.client.R().SetContext(ctx).SetBody(request).SetResult(&user), "POST", "/api/users"); err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	return user, nil
}

// Login stores the returned token for the following requests.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	var login models.LoginResponse
	if err := h.do(h.client.R().SetContext(ctx).SetBody(request).SetResult(&login), "POST", "/api/login"); err != nil {
		return models.LoginResponse{}, fmt.Errorf("login: %w", err)
	}
	if login.Token == "" {
		return models.LoginResponse{}, errors.New("login: empty token in response")
	}

	h.SetToken(login.Token)
	h.logger.Debug().Str("username", login.Username).Msg("logged in")

	return login, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := h.do(h.client.R().SetContext(ctx).SetResult(&users), "GET", "/api/users"); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (h *httpServerAdapter) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	blogs := []models.Blog{}
	if err := h.do(h.client.R().SetContext(ctx).SetResult(&blogs), "GET", "/api/blogs"); err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}

	return blogs, nil
}

func (h *httpServerAdapter) GetBlog(ctx context.Context, id string) (models.Blog, error) {
	var blog models.Blog
	req := h.client.R().SetContext(ctx).SetPathParam("id", id).SetResult(&blog)
	if err := h.do(req, "GET", "/api/blogs/{id}"); err != nil {
		return models.Blog{}, fmt.Errorf("get blog: %w", err)
	}

	return blog, nil
}

func (h *httpServerAdapter) CreateBlog(ctx context.Context, request models.CreateBlogRequest) (models.Blog, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Blog{}, err
	}

	var blog models.Blog
	if err = h.do(req.SetBody(request).SetResult(&blog), "POST", "/api/blogs"); err != nil {
		return models.Blog{}, fmt.Errorf("create blog: %w", err)
	}

	return blog, nil
}

func (h *httpServerAdapter) UpdateBlog(ctx context.Context, id string, request models.UpdateBlogRequest) (models.Blog, error) {
	var blog models.Blog
	req := h.client.R().SetContext(ctx).SetPathParam("id", id).SetBody(request).SetResult(&blog)
	if err := h.do(req, "PUT", "/api/blogs/{id}"); err != nil {
		return models.Blog{}, fmt.Errorf("update blog: %w", err)
	}

	return blog, nil
}

func (h *httpServerAdapter) DeleteBlog(ctx context.Context, id string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	if err = h.do(req.SetPathParam("id", id), "DELETE", "/api/blogs/{id}"); err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}

	return nil
}

func (h *httpServerAdapter) BlogStats(ctx context.Context) (models.BlogStats, error) {
	var stats models.BlogStats
	if err := h.do(h.client.R().SetContext(ctx).SetResult(&stats), "GET", "/api/blogs/stats"); err != nil {
		return models.BlogStats{}, fmt.Errorf("blog stats: %w", err)
	}

	return stats, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}

// do sends req and maps a non-2xx answer to an [*APIError].
func (h *httpServerAdapter) do(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	return mapHTTPError(resp)
}
