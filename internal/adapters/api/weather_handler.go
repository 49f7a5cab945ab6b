package api

import (
	"net/http"
	"strings"

	"citycast.app/internal/core/daily"
	"citycast.app/internal/core/location"
	"citycast.app/internal/core/weather"
	"citycast.app/internal/ports"
	"citycast.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// locationQuery selects a location by city name or by lat/lon pair
type locationQuery struct {
	City string   `form:"city" binding:"omitempty,max=100"`
	Lat  *float64 `form:"lat" binding:"omitempty,min=-90,max=90"`
	Lon  *float64 `form:"lon" binding:"omitempty,min=-180,max=180"`
	Lang string   `form:"lang" binding:"omitempty,max=35,locale"`
}

type suggestionsQuery struct {
	Q     string `form:"q" binding:"required"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=10"`
}

type resolveQuery struct {
	City string `form:"city" binding:"max=100"`
	Lang string `form:"lang" binding:"omitempty,max=35,locale"`
}

type reverseQuery struct {
	Lat      *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Lon      *float64 `form:"lon" binding:"required,min=-180,max=180"`
	Lang     string   `form:"lang" binding:"omitempty,max=35,locale"`
	Fallback bool     `form:"fallback"`
}

// ForecastResponse carries the forecast window and its daily summaries
type ForecastResponse struct {
	Forecast *weather.Forecast  `json:"forecast"`
	Daily    []daily.DaySummary `json:"daily"`
}

// target converts the query into a weather target. Both coordinates or
// neither must be given; with neither, the city is required.
func (q locationQuery) target() (weather.Target, error) {
	if (q.Lat == nil) != (q.Lon == nil) {
		return weather.Target{}, errors.NewValidationError("lat and lon must be provided together")
	}
	if q.Lat != nil {
		return weather.Target{City: q.City, Coordinate: &location.Coordinate{Lat: *q.Lat, Lon: *q.Lon}}, nil
	}
	if strings.TrimSpace(q.City) == "" {
		return weather.Target{}, errors.NewNoInputError(errors.CategoryNoInput.Message())
	}
	return weather.Target{City: q.City}, nil
}

func (s *HTTPServerAdapter) bindLocation(c *gin.Context) (locationQuery, weather.Target, bool) {
	var q locationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s.handleError(c, errors.NewValidationError("invalid query: "+err.Error()))
		return q, weather.Target{}, false
	}
	target, err := q.target()
	if err != nil {
		s.handleError(c, err)
		return q, weather.Target{}, false
	}
	return q, target, true
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	q, target, ok := s.bindLocation(c)
	if !ok {
		return
	}

	current, err := s.weatherUseCase.GetCurrent(c.Request.Context(), target, q.Lang)
	if err != nil {
		s.handleError(c, err)
		return
	}

	s.logger.Debug("Weather result",
		ports.F("request_id", requestIDFrom(c)),
		ports.F("city", current.CityName))
	c.JSON(http.StatusOK, current)
}

// getForecast handles GET /api/forecast requests
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	q, target, ok := s.bindLocation(c)
	if !ok {
		return
	}

	forecast, err := s.weatherUseCase.GetForecast(c.Request.Context(), target, q.Lang)
	if err != nil {
		s.handleError(c, err)
		return
	}

	aggregator := s.aggregator
	if q.Lang != "" {
		aggregator = aggregator.ForLocale(q.Lang)
	}

	c.JSON(http.StatusOK, ForecastResponse{
		Forecast: forecast,
		Daily:    aggregator.Aggregate(forecast.Points),
	})
}

// getSuggestions handles GET /api/suggestions requests
func (s *HTTPServerAdapter) getSuggestions(c *gin.Context) {
	var q suggestionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s.handleError(c, errors.NewValidationError("invalid query: "+err.Error()))
		return
	}

	candidates, err := s.weatherUseCase.GetSuggestions(c.Request.Context(), q.Q, q.Limit)
	if err != nil {
		s.handleError(c, err)
		return
	}
	if candidates == nil {
		candidates = []location.Candidate{}
	}

	c.JSON(http.StatusOK, candidates)
}

// resolveCity handles GET /api/resolve requests
func (s *HTTPServerAdapter) resolveCity(c *gin.Context) {
	var q resolveQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s.handleError(c, errors.NewValidationError("invalid query: "+err.Error()))
		return
	}

	candidate, err := s.weatherUseCase.ResolveCoordinates(c.Request.Context(), q.City, q.Lang)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// reverseLookup handles GET /api/reverse requests. With fallback=true a
// failed lookup resolves the configured default city instead.
func (s *HTTPServerAdapter) reverseLookup(c *gin.Context) {
	var q reverseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s.handleError(c, errors.NewValidationError("invalid query: "+err.Error()))
		return
	}

	coord := location.Coordinate{Lat: *q.Lat, Lon: *q.Lon}
	lookup := s.weatherUseCase.ReverseLookup
	if q.Fallback {
		lookup = s.weatherUseCase.ResolveOrDefault
	}

	candidate, err := lookup(c.Request.Context(), coord, q.Lang)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}
