package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talentsift/talentsift/config"
	"github.com/talentsift/talentsift/internal/recommend"
)

// Recommender is the single operation this handler needs from the pipeline.
type Recommender interface {
	Recommend(ctx context.Context, jobDescription string) ([]recommend.Recommendation, error)
}

// RecommendHandler serves the public recommendation endpoint.
type RecommendHandler struct {
	Service Recommender
	Cache   *Cache
	Logger  *log.Logger
}

type recommendRequest struct {
	Query          string `json:"query"`
	JobDescription string `json:"job_description"`
}

type recommendResponse struct {
	RecommendedAssessments []recommend.Recommendation `json:"recommended_assessments"`
}

func (h *RecommendHandler) Register(e *echo.Echo) {
	e.POST("/recommend", h.recommend)
}

func (h *RecommendHandler) recommend(c echo.Context) error {
	requestsTotal.Inc()

	var req recommendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	// job_description is only a fallback for an absent query; a non-empty
	// query wins even if it is all whitespace, and is then rejected below.
	query := req.Query
	if query == "" {
		query = req.JobDescription
	}
	if strings.TrimSpace(query) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "'query' or 'job_description' must be provided")
	}

	ctx := c.Request().Context()
	if h.Cache != nil {
		if payload, ok := h.Cache.Get(ctx, query); ok {
			cacheHitsTotal.Inc()
			return c.JSONBlob(http.StatusOK, payload)
		}
	}

	recs, err := h.Service.Recommend(ctx, query)
	if err != nil {
		requestFailuresTotal.Inc()
		if config.IsMissing(err) {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		h.logf("recommend failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	resp := recommendResponse{RecommendedAssessments: recs}
	if h.Cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			h.Cache.Set(ctx, query, payload)
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *RecommendHandler) logf(format string, args ...interface{}) {
	if h.Logger != nil {
		h.Logger.Printf(format, args...)
	}
}
