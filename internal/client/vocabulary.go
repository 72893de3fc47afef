package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/linguaverse/statistics-service/internal/logging"
	"github.com/linguaverse/statistics-service/internal/models"
)

const vocabularyTarget = "vocabulary-service"

// VocabularyClient fetches vocabulary counters from the vocabulary service.
type VocabularyClient struct {
	baseURL string
	http    *http.Client
	logger  *logging.Logger
}

// NewVocabularyClient creates a VocabularyClient pointing at the given base URL.
func NewVocabularyClient(baseURL string, timeout time.Duration, logger *logging.Logger) *VocabularyClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &VocabularyClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// LearnedWordsCount returns the number of words the user has learned.
// Resolves to 0 if the vocabulary service is unreachable.
func (c *VocabularyClient) LearnedWordsCount(ctx context.Context, userID string) int {
	endpoint := "/lexicon/learned/count"

	var body countResponse
	err := getJSON(ctx, c.http, c.baseURL+endpoint+"/"+url.PathEscape(userID), &body)
	observeCall(vocabularyTarget, endpoint, err)
	if err != nil {
		c.logger.ErrorContext(ctx, "learned words lookup failed, defaulting to zero",
			logging.Target(vocabularyTarget),
			logging.OwnerID(userID),
			logging.Error(err),
		)
		return 0
	}

	return body.Count
}

// LanguagePairStats returns translation counts per language pair, sorted
// descending by count by the vocabulary service. Resolves to an empty list
// if the service is unreachable.
func (c *VocabularyClient) LanguagePairStats(ctx context.Context) []models.LanguagePairCount {
	endpoint := "/translation/stats"

	var body []models.LanguagePairCount
	err := getJSON(ctx, c.http, c.baseURL+endpoint, &body)
	observeCall(vocabularyTarget, endpoint, err)
	if err != nil {
		c.logger.ErrorContext(ctx, "language pair stats lookup failed, defaulting to empty",
			logging.Target(vocabularyTarget),
			logging.Error(err),
		)
		return []models.LanguagePairCount{}
	}

	if body == nil {
		body = []models.LanguagePairCount{}
	}
	return body
}
