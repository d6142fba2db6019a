package faqbank

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/askbase/faq-service/pkg/errors"
	"github.com/askbase/faq-service/pkg/util"
)

// Sentinel answers returned as successful outcomes of Ask. Neither is an
// error at any layer.
const (
	AnswerNotTrained = "Company not trained yet."
	AnswerNoMatch    = "Sorry, no relevant answer found."
)

// Service exposes the tenant FAQ ingestion and query pipelines.
type Service interface {
	Train(ctx context.Context, req TrainRequest) (TrainResponse, error)
	Ask(ctx context.Context, req AskRequest) (AskResponse, error)
	Trending(ctx context.Context) ([]TrendingQuestion, error)
}

type service struct {
	cfg      Config
	repo     BankRepository
	usage    UsageStore
	embedder Embedder
	logger   *slog.Logger
}

// NewService wires up the FAQ bank domain.
func NewService(cfg Config, repo BankRepository, usage UsageStore, embedder Embedder, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		repo:     repo,
		usage:    usage,
		embedder: embedder,
		logger:   logger.With("component", "faqbank.service"),
	}
}

func (s *service) Train(ctx context.Context, req TrainRequest) (TrainResponse, error) {
	tenantID := strings.TrimSpace(req.TenantID)
	if tenantID == "" {
		return TrainResponse{}, apperrors.Wrap("invalid_input", "tenantId cannot be empty", nil)
	}
	if len(req.Faqs) == 0 {
		return TrainResponse{}, apperrors.Wrap("invalid_input", "faqs cannot be empty", nil)
	}

	valid, skipped := filterFaqs(req.Faqs)
	if len(valid) == 0 {
		return TrainResponse{}, apperrors.Wrap("no_valid_input", "no valid FAQ items provided", nil)
	}

	questions := make([]string, len(valid))
	for i, item := range valid {
		questions[i] = item.Question
	}
	vectors, err := s.embedder.Embed(ctx, questions)
	if err != nil {
		return TrainResponse{}, apperrors.Wrap("embedding_error", "embedding failed", err)
	}
	if len(vectors) != len(valid) {
		return TrainResponse{}, apperrors.Wrap("embedding_error", "embedding count mismatch", nil)
	}

	now := util.NowUTC()
	records := make([]FaqRecord, len(valid))
	for i, item := range valid {
		records[i] = FaqRecord{
			Question:  item.Question,
			Answer:    item.Answer,
			Vector:    vectors[i],
			CreatedAt: now,
		}
	}

	if err := s.repo.AppendRecords(ctx, tenantID, records); err != nil {
		return TrainResponse{}, apperrors.Wrap("store_error", "failed to persist FAQ records", err)
	}

	s.logger.Info("faqs ingested", "tenant", tenantID, "stored", len(records), "skipped", skipped)
	return TrainResponse{Message: "Training successful", Stored: len(records), Skipped: skipped}, nil
}

func (s *service) Ask(ctx context.Context, req AskRequest) (AskResponse, error) {
	tenantID := strings.TrimSpace(req.TenantID)
	if tenantID == "" {
		return AskResponse{}, apperrors.Wrap("invalid_input", "tenantId cannot be empty", nil)
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return AskResponse{}, apperrors.Wrap("invalid_input", "question cannot be empty", nil)
	}

	bank, found, err := s.repo.GetBank(ctx, tenantID)
	if err != nil {
		return AskResponse{}, apperrors.Wrap("store_error", "bank lookup failed", err)
	}
	if !found {
		return AskResponse{Answer: AnswerNotTrained}, nil
	}

	vectors, err := s.embedder.Embed(ctx, []string{question})
	if err != nil {
		return AskResponse{}, apperrors.Wrap("embedding_error", "embedding failed", err)
	}
	if len(vectors) != 1 || len(vectors[0]) == 0 {
		return AskResponse{}, apperrors.Wrap("embedding_error", "embedding response empty", nil)
	}

	result := Match(bank.Records, vectors[0])

	if err := s.usage.IncrementAsk(ctx, normalizeQuestion(question), question); err != nil {
		s.logger.Warn("usage increment failed", "tenant", tenantID, "error", err)
	}

	if !result.Accepted {
		s.logger.Debug("no confident match", "tenant", tenantID, "score", result.Score)
		return AskResponse{Answer: AnswerNoMatch}, nil
	}
	score := result.Score
	return AskResponse{Answer: result.Best.Answer, Score: &score}, nil
}

func (s *service) Trending(ctx context.Context) ([]TrendingQuestion, error) {
	items, err := s.usage.TopQuestions(ctx, s.cfg.TopTrending)
	if err != nil {
		return nil, apperrors.Wrap("store_error", "failed to load trending questions", err)
	}
	return items, nil
}

// filterFaqs drops items with a missing question or answer. Skipping is
// silent so the rest of the batch still processes.
func filterFaqs(items []FaqInput) ([]FaqInput, int) {
	valid := make([]FaqInput, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Question) == "" || strings.TrimSpace(item.Answer) == "" {
			continue
		}
		valid = append(valid, item)
	}
	return valid, len(items) - len(valid)
}
