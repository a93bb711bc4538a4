// Package api exposes the school directory over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kass/go-school-locator/pkg/directory"
	"github.com/kass/go-school-locator/pkg/validate"
)

// registerBody is decoded loosely so the validator sees the caller's original types
type registerBody struct {
	Name      any `json:"name"`
	Address   any `json:"address"`
	Latitude  any `json:"latitude"`
	Longitude any `json:"longitude"`
}

type Handler struct {
	svc    *directory.Service
	logger *slog.Logger
}

func NewHandler(svc *directory.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Register adds the directory routes to r
func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/addSchool", h.AddSchool)
	r.GET("/listSchools", h.ListSchools)
	r.GET("/healthz", h.Health)
}

// AddSchool handles POST /addSchool
func (h *Handler) AddSchool(c *gin.Context) {
	// numbers stay json.Number so out-of-range literals reach the validator
	var body registerBody
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"request body must be a JSON object"}})
		return
	}

	id, err := h.svc.Register(c.Request.Context(), directory.RegisterRequest{
		Name:      body.Name,
		Address:   body.Address,
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "school added", "id": id})
}

// ListSchools handles GET /listSchools?latitude=..&longitude=..
func (h *Handler) ListSchools(c *gin.Context) {
	// absent parameters stay nil so they are reported as missing
	var lat, lon any
	if v, ok := c.GetQuery("latitude"); ok {
		lat = v
	}
	if v, ok := c.GetQuery("longitude"); ok {
		lon = v
	}

	listing, err := h.svc.List(c.Request.Context(), lat, lon)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

// Health handles GET /healthz
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// fail maps validation errors to 400 and everything else to an opaque 500
func (h *Handler) fail(c *gin.Context, err error) {
	var verr *validate.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Problems})
		return
	}

	h.logger.ErrorContext(c.Request.Context(), "request failed",
		"path", c.Request.URL.Path,
		"request_id", c.GetString(requestIDKey),
		"error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
