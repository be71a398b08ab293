package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Yapcheekian/shortcode/models"
	"github.com/Yapcheekian/shortcode/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	msgURLRequired   = "URL is required"
	msgCreateFailed  = "Failed to create short URL"
	msgNotFound      = "Short URL not found"
	msgResolveFailed = "Failed to find the original URL"
)

type shortenerService interface {
	Shorten(ctx context.Context, originalURL string) (models.URL, error)
	Resolve(ctx context.Context, code string) (models.URL, error)
}

type ShortenerHandler struct {
	service shortenerService
	baseURL string
}

// NewShortenerHandler registers the shortener routes on router. When baseURL
// is empty, short URLs are built from the scheme and host of the request.
func NewShortenerHandler(router gin.IRoutes, service shortenerService, baseURL string) *ShortenerHandler {
	handler := &ShortenerHandler{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
	}

	router.POST("/shorten", handler.ShortenURL)
	router.GET("/:shortUrl", handler.RedirectURL)

	return handler
}

type urlRequest struct {
	OriginalURL string `json:"originalUrl"`
}

type urlResponse struct {
	OriginalURL string `json:"originalUrl"`
	ShortURL    string `json:"shortUrl"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ShortenURL creates a new mapping for the posted URL. The same URL posted
// twice gets two different codes.
func (h *ShortenerHandler) ShortenURL(c *gin.Context) {
	var req urlRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debug().Err(err).Msg("ShouldBindJSON failed")
		c.JSON(http.StatusBadRequest, errorResponse{Error: msgURLRequired})
		return
	}

	if req.OriginalURL == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: msgURLRequired})
		return
	}

	url, err := h.service.Shorten(c.Request.Context(), req.OriginalURL)
	if err != nil {
		log.Error().Err(err).Msg("Shorten failed")
		c.JSON(http.StatusInternalServerError, errorResponse{Error: msgCreateFailed})
		return
	}

	c.JSON(http.StatusOK, urlResponse{
		OriginalURL: url.OriginalURL,
		ShortURL:    h.host(c.Request) + "/" + url.ShortCode,
	})
}

func (h *ShortenerHandler) RedirectURL(c *gin.Context) {
	code := c.Param("shortUrl")

	url, err := h.service.Resolve(c.Request.Context(), code)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{Error: msgNotFound})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("Resolve failed")
		c.JSON(http.StatusInternalServerError, errorResponse{Error: msgResolveFailed})
		return
	}

	c.Redirect(http.StatusFound, url.OriginalURL)
}

func (h *ShortenerHandler) host(req *http.Request) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	return parseServerHost(req)
}

func parseServerHost(req *http.Request) string {
	var scheme string
	if req.TLS == nil {
		scheme = "http"
	} else {
		scheme = "https"
	}

	return scheme + "://" + req.Host
}
