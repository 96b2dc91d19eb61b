package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"catalog-dashboard/models"
	"catalog-dashboard/services"
	"catalog-dashboard/utils"
)

type Handler struct {
	svc    *services.DashboardService
	logger *utils.Logger
}

func NewHandler(svc *services.DashboardService, logger *utils.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(svc *services.DashboardService, logger *utils.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), instrument())

	h := NewHandler(svc, logger)
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	h.RegisterRoutes(router.Group("/api"))
	return router
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/options", h.options)     // GET /api/options
	rg.GET("/dashboard", h.dashboard) // GET /api/dashboard
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "titles": h.svc.Len()})
}

func (h *Handler) options(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Options())
}

func (h *Handler) dashboard(c *gin.Context) {
	criteria, err := h.criteria(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	d := h.svc.Render(criteria)
	observeDashboard(start, d.Summary.TotalTitles)

	c.JSON(http.StatusOK, gin.H{
		"criteria":  criteria,
		"dashboard": d,
	})
}

// criteria reads the filter selection from the query string. Unset filters
// take the sidebar defaults: every type and the full year span.
func (h *Handler) criteria(c *gin.Context) (models.Criteria, error) {
	def := h.svc.DefaultCriteria()

	// types=Movie,TV Show OR types=Movie&types=TV Show; "types=" selects none
	if types, ok := queryList(c, "types"); ok {
		def.Types = types
	}

	minYear, err := queryInt(c, "year_min", def.YearRange.Min)
	if err != nil {
		return models.Criteria{}, err
	}
	maxYear, err := queryInt(c, "year_max", def.YearRange.Max)
	if err != nil {
		return models.Criteria{}, err
	}
	def.YearRange = &models.YearRange{Min: minYear, Max: maxYear}

	def.Countries, _ = queryList(c, "countries")
	def.Ratings, _ = queryList(c, "ratings")
	def.Genres, _ = queryList(c, "genres")
	def.TitleContains = strings.TrimSpace(c.Query("q"))
	return def, nil
}

// queryList accepts repeated keys and comma-separated values. ok reports
// whether the key was present at all.
func queryList(c *gin.Context, key string) ([]string, bool) {
	raw, ok := c.GetQueryArray(key)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out, true
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &paramError{key: key, value: s}
	}
	return n, nil
}

type paramError struct {
	key   string
	value string
}

func (e *paramError) Error() string {
	return "invalid " + e.key + ": " + strconv.Quote(e.value)
}
