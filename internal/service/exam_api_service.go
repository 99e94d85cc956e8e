package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"quizboard_backend/internal/config"
	"quizboard_backend/internal/model"
	"quizboard_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ExamAPIService fetches question payloads from the upstream provider.
// Successful responses are cached briefly in Redis so repeated imports of
// the same exam do not hammer the provider.
type ExamAPIService struct {
	config config.ExamAPIConfig
	redis  *redis.Client
	client *http.Client
}

func NewExamAPIService(cfg config.ExamAPIConfig, rdb *redis.Client) *ExamAPIService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ExamAPIService{
		config: cfg,
		redis:  rdb,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *ExamAPIService) cacheKey(examID string) string {
	return "quizboard:exam:" + examID
}

// FetchQuestions retrieves the question records for one exam id. Non-2xx
// status and malformed JSON are fatal for the attempt; an empty data array
// is returned as-is for the caller to surface as a recoverable condition.
func (s *ExamAPIService) FetchQuestions(ctx context.Context, examID string) ([]model.ExamQuestion, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, s.cacheKey(examID)).Result(); err == nil {
			var payload model.ExamAPIResponse
			if err := json.Unmarshal([]byte(cached), &payload); err == nil {
				return payload.Data, nil
			}
		}
	}

	endpoint := fmt.Sprintf("%s/exam_view_questions_api?exam_id=%s",
		s.config.BaseURL, url.QueryEscape(examID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch exam questions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch exam questions: upstream status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read exam response: %w", err)
	}

	var payload model.ExamAPIResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode exam response: %w", err)
	}

	if s.redis != nil && len(payload.Data) > 0 && s.config.CacheTTL > 0 {
		if err := s.redis.Set(ctx, s.cacheKey(examID), body, s.config.CacheTTL).Err(); err != nil {
			logger.Log.Warn("failed to cache exam payload", zap.String("examId", examID), zap.Error(err))
		}
	}

	return payload.Data, nil
}
