package services

import (
	"context"
	"net/url"
	"strings"
	"time"

	"netflix-clone-backend/models"

	"github.com/hashicorp/go-hclog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SearchService struct {
	provider MediaProvider
	userRepo UserStore
	logger   hclog.Logger
}

func NewSearchService(provider MediaProvider, userRepo UserStore, logger hclog.Logger) *SearchService {
	return &SearchService{
		provider: provider,
		userRepo: userRepo,
		logger:   logger.Named("search"),
	}
}

// Search forwards query to TMDB's search endpoint for domain. A page with no
// results is ErrNoResults, never an empty success.
func (s *SearchService) Search(ctx context.Context, domain, query string) ([]models.Content, error) {
	if !models.SearchType(domain).Valid() {
		return nil, ErrInvalidSearchType
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalid("Query is required")
	}

	page, err := s.provider.FetchPage(ctx, "/search/"+domain, url.Values{
		"query":         {query},
		"include_adult": {"false"},
		"page":          {"1"},
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug("search", "domain", domain, "results", len(page.Results))
	if len(page.Results) == 0 {
		return nil, ErrNoResults
	}
	return page.Results, nil
}

func (s *SearchService) History(ctx context.Context, userID primitive.ObjectID) ([]models.SearchHistoryEntry, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Public().SearchHistory, nil
}

// AddHistory appends an entry stamped with the server clock. Entries are not
// deduplicated here.
func (s *SearchService) AddHistory(ctx context.Context, userID primitive.ObjectID, req *models.AddHistoryRequest) (*models.SearchHistoryEntry, error) {
	if !req.SearchType.Valid() {
		return nil, ErrInvalidSearchType
	}
	entry := models.SearchHistoryEntry{
		ID:         req.ID,
		Image:      req.Image,
		Title:      strings.TrimSpace(req.Title),
		SearchType: req.SearchType,
		CreatedAt:  time.Now(),
	}
	if err := s.userRepo.AddSearchHistory(ctx, userID, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *SearchService) RemoveHistory(ctx context.Context, userID primitive.ObjectID, entryID int64) error {
	return s.userRepo.RemoveSearchHistory(ctx, userID, entryID)
}
