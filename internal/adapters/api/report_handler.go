package api

import (
	"net/http"

	"citycast.app/internal/ports"
	"citycast.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

type reportQuery struct {
	City string `form:"city" binding:"max=100"`
	Lang string `form:"lang" binding:"omitempty,max=35,locale"`
}

// getReport handles GET /api/report requests
func (s *HTTPServerAdapter) getReport(c *gin.Context) {
	var q reportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s.handleError(c, errors.NewValidationError("invalid query: "+err.Error()))
		return
	}

	result, err := s.reportUseCase.GetReport(c.Request.Context(), q.City, q.Lang)
	if err != nil {
		s.handleError(c, err)
		return
	}

	s.logger.Info("Report served",
		ports.F("request_id", requestIDFrom(c)),
		ports.F("city", result.Current.CityName),
		ports.F("days", len(result.Daily)))
	c.JSON(http.StatusOK, result)
}

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	status, code := "healthy", http.StatusOK
	for _, component := range components {
		if component.Status == "unhealthy" {
			status, code = "unhealthy", http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(code, HealthResponse{Status: status, Components: components})
}
