// Package v0 serves the map generator over HTTP
package v0

import (
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
	"github.com/KirkDiggler/dominions-mapgen/internal/orchestrators/catalog"
	"github.com/KirkDiggler/dominions-mapgen/internal/orchestrators/mapgen"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	MapService     mapgen.Service
	CatalogService catalog.Service
	Logger         *zap.Logger
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.MapService == nil {
		vb.RequiredField("MapService")
	}
	if c.CatalogService == nil {
		vb.RequiredField("CatalogService")
	}
	return vb.Build()
}

// Handler serves the v0 HTTP API
type Handler struct {
	mapService     mapgen.Service
	catalogService catalog.Service
	logger         *zap.Logger
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		mapService:     cfg.MapService,
		catalogService: cfg.CatalogService,
		logger:         logger.Named("http"),
	}, nil
}

// RegisterRoutes mounts the API under /api/v0
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	api := router.Group("/api/v0")
	api.POST("/generate_map/", h.GenerateMap)
	api.GET("/autocomplete/nations/", h.AutocompleteNations)
	api.GET("/autocomplete/units/", h.AutocompleteUnits)
}

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// NationResponse is one nation autocomplete entry
type NationResponse struct {
	DominionID int32  `json:"dominion_id"`
	Name       string `json:"name"`
	Era        string `json:"era"`
}

// UnitResponse is one unit autocomplete entry
type UnitResponse struct {
	DominionID int32  `json:"dominion_id"`
	Name       string `json:"name"`
}

// GenerateMap renders the submitted selection and returns the map as a file download
func (h *Handler) GenerateMap(c *gin.Context) {
	var req dominions.MapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "request body is not a valid map selection"))
		return
	}

	out, err := h.mapService.GenerateMap(c.Request.Context(), &mapgen.GenerateMapInput{Request: &req})
	if err != nil {
		mapRequestsRejectedTotal.WithLabelValues(errors.GetCode(err).String()).Inc()
		h.writeError(c, err)
		return
	}

	mapsGeneratedTotal.WithLabelValues(out.TemplateName).Inc()

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": out.Filename()}))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(out.Content))
}

// AutocompleteNations lists nations matching ?search=, limited to ?modded=1,2
func (h *Handler) AutocompleteNations(c *gin.Context) {
	modded, err := parseModded(c.Query("modded"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	autocompleteRequestsTotal.WithLabelValues(dominions.EntityTypeNation).Inc()

	out, err := h.catalogService.SearchNations(c.Request.Context(), &catalog.SearchNationsInput{
		Search: c.Query("search"),
		Modded: modded,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]NationResponse, len(out.Nations))
	for i, n := range out.Nations {
		resp[i] = NationResponse{DominionID: n.DominionID, Name: n.Name, Era: n.Era.Code()}
	}
	c.JSON(http.StatusOK, resp)
}

// AutocompleteUnits lists units and commanders matching ?search=, limited to ?modded=1,2
func (h *Handler) AutocompleteUnits(c *gin.Context) {
	modded, err := parseModded(c.Query("modded"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	autocompleteRequestsTotal.WithLabelValues(dominions.EntityTypeUnit).Inc()

	out, err := h.catalogService.SearchUnits(c.Request.Context(), &catalog.SearchUnitsInput{
		Search: c.Query("search"),
		Modded: modded,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]UnitResponse, len(out.Units))
	for i, u := range out.Units {
		resp[i] = UnitResponse{DominionID: u.DominionID, Name: u.Name}
	}
	c.JSON(http.StatusOK, resp)
}

func parseModded(raw string) ([]int32, error) {
	if raw == "" {
		return nil, nil
	}

	var modded []int32
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseInt(part, 10, 32)
		if err != nil {
			return nil, errors.NewValidationBuilder().
				Fieldf("modded", "%q is not a number", part).
				Build()
		}
		modded = append(modded, int32(n))
	}
	return modded, nil
}

// writeError maps err to its HTTP status. Internal details are logged, not returned.
func (h *Handler) writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	resp := ErrorResponse{
		Code:    code.String(),
		Message: errors.GetMessage(err),
		Fields:  errors.GetFieldErrors(err),
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
		resp.Message = http.StatusText(status)
		resp.Fields = nil
	}

	c.AbortWithStatusJSON(status, resp)
}
