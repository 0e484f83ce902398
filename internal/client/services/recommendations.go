package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/goaltracker/internal/client/models"
)

const (
	MsgRecommendationsLoadFailed = "Failed to fetch recommendations"
	MsgRecommendationLoadFailed  = "Failed to fetch recommendation"
	MsgCategoriesLoadFailed      = "Failed to fetch categories"
)

// RecommendationService browses server-ranked activity recommendations.
type RecommendationService interface {
	// List returns recommendations, optionally narrowed to one category.
	List(ctx context.Context, category string) models.Result[[]models.Recommendation]
	Get(ctx context.Context, id string) models.Result[*models.Recommendation]
	ListCategories(ctx context.Context) models.Result[[]string]
}

type recommendationService struct {
	api Requester
}

func NewRecommendationService(api Requester) RecommendationService {
	return &recommendationService{api: api}
}

func (s *recommendationService) List(ctx context.Context, category string) models.Result[[]models.Recommendation] {
	path := "/recommendations"
	if category != "" {
		path += "?" + url.Values{"category": {category}}.Encode()
	}
	return callList[models.Recommendation](ctx, s.api, http.MethodGet, path, MsgRecommendationsLoadFailed)
}

func (s *recommendationService) Get(ctx context.Context, id string) models.Result[*models.Recommendation] {
	return call[*models.Recommendation](ctx, s.api, http.MethodGet, "/recommendations/"+seg(id), nil, MsgRecommendationLoadFailed)
}

func (s *recommendationService) ListCategories(ctx context.Context) models.Result[[]string] {
	return callList[string](ctx, s.api, http.MethodGet, "/recommendations/categories", MsgCategoriesLoadFailed)
}
