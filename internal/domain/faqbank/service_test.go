package faqbank

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/askbase/faq-service/pkg/errors"
)

func TestServiceTrainAndAskMatch(t *testing.T) {
	embedder := newStubEmbedder(map[string][]float32{
		"What are your hours?": {1, 0},
		"When are you open?":   {0.85, 0.5268},
	})
	repo := newStubRepo()
	svc := newTestService(repo, embedder)

	trained, err := svc.Train(context.Background(), TrainRequest{
		TenantID: "acme",
		Faqs:     []FaqInput{{Question: "What are your hours?", Answer: "9-5"}},
	})
	require.NoError(t, err)
	require.Equal(t, "Training successful", trained.Message)
	require.Equal(t, 1, trained.Stored)

	resp, err := svc.Ask(context.Background(), AskRequest{TenantID: "acme", Question: "When are you open?"})
	require.NoError(t, err)
	require.Equal(t, "9-5", resp.Answer)
	require.NotNil(t, resp.Score)
	require.Greater(t, *resp.Score, 0.7)
}

func TestServiceAskBelowThreshold(t *testing.T) {
	embedder := newStubEmbedder(map[string][]float32{
		"What are your hours?":      {1, 0},
		"Completely unrelated text": {0.3, 0.9539},
	})
	repo := newStubRepo()
	svc := newTestService(repo, embedder)

	_, err := svc.Train(context.Background(), TrainRequest{
		TenantID: "acme",
		Faqs:     []FaqInput{{Question: "What are your hours?", Answer: "9-5"}},
	})
	require.NoError(t, err)

	resp, err := svc.Ask(context.Background(), AskRequest{TenantID: "acme", Question: "Completely unrelated text"})
	require.NoError(t, err)
	require.Equal(t, AnswerNoMatch, resp.Answer)
	require.Nil(t, resp.Score)
}

func TestServiceAskUntrainedTenant(t *testing.T) {
	svc := newTestService(newStubRepo(), newStubEmbedder(nil))

	resp, err := svc.Ask(context.Background(), AskRequest{TenantID: "unknown_co", Question: "Any question"})
	require.NoError(t, err)
	require.Equal(t, AnswerNotTrained, resp.Answer)
}

func TestServiceAskEmptyBankDistinctFromUntrained(t *testing.T) {
	embedder := newStubEmbedder(map[string][]float32{"Any question": {1, 0}})
	repo := newStubRepo()
	repo.banks["acme"] = &TenantBank{TenantID: "acme"}
	svc := newTestService(repo, embedder)

	resp, err := svc.Ask(context.Background(), AskRequest{TenantID: "acme", Question: "Any question"})
	require.NoError(t, err)
	require.Equal(t, AnswerNoMatch, resp.Answer)
}

func TestServiceTrainAllItemsFiltered(t *testing.T) {
	svc := newTestService(newStubRepo(), newStubEmbedder(nil))

	_, err := svc.Train(context.Background(), TrainRequest{
		TenantID: "acme",
		Faqs:     []FaqInput{{Question: "", Answer: "x"}, {Question: "   ", Answer: "y"}},
	})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "no_valid_input"))
}

func TestServiceTrainPartialFilter(t *testing.T) {
	embedder := newStubEmbedder(map[string][]float32{"Valid question?": {1, 0}})
	repo := newStubRepo()
	svc := newTestService(repo, embedder)

	resp, err := svc.Train(context.Background(), TrainRequest{
		TenantID: "acme",
		Faqs: []FaqInput{
			{Question: "Valid question?", Answer: "valid answer"},
			{Question: "No answer here?", Answer: ""},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Stored)
	require.Equal(t, 1, resp.Skipped)
	require.Len(t, repo.banks["acme"].Records, 1)
}

func TestServiceTrainAppendsDuplicates(t *testing.T) {
	embedder := newStubEmbedder(map[string][]float32{"Same question?": {1, 0}})
	repo := newStubRepo()
	svc := newTestService(repo, embedder)

	faqs := []FaqInput{{Question: "Same question?", Answer: "first"}}
	_, err := svc.Train(context.Background(), TrainRequest{TenantID: "acme", Faqs: faqs})
	require.NoError(t, err)
	faqs[0].Answer = "second"
	_, err = svc.Train(context.Background(), TrainRequest{TenantID: "acme", Faqs: faqs})
	require.NoError(t, err)

	require.Len(t, repo.banks["acme"].Records, 2)
}

func TestServiceAskStoreFaultIsNotASentinel(t *testing.T) {
	repo := newStubRepo()
	repo.getErr = errors.New("connection refused")
	svc := newTestService(repo, newStubEmbedder(nil))

	_, err := svc.Ask(context.Background(), AskRequest{TenantID: "acme", Question: "anything"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "store_error"))
}

func TestServiceTrainStoreFault(t *testing.T) {
	embedder := newStubEmbedder(map[string][]float32{"q?": {1}})
	repo := newStubRepo()
	repo.appendErr = errors.New("write failed")
	svc := newTestService(repo, embedder)

	_, err := svc.Train(context.Background(), TrainRequest{
		TenantID: "acme",
		Faqs:     []FaqInput{{Question: "q?", Answer: "a"}},
	})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "store_error"))
}

func TestServiceAskEmptyQuestion(t *testing.T) {
	svc := newTestService(newStubRepo(), newStubEmbedder(nil))

	_, err := svc.Ask(context.Background(), AskRequest{TenantID: "acme", Question: "   "})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func newTestService(repo *stubRepo, embedder *stubEmbedder) Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(Config{TopTrending: 10}, repo, newStubUsage(), embedder, logger)
}

type stubRepo struct {
	banks     map[string]*TenantBank
	getErr    error
	appendErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{banks: make(map[string]*TenantBank)}
}

func (r *stubRepo) GetBank(_ context.Context, tenantID string) (TenantBank, bool, error) {
	if r.getErr != nil {
		return TenantBank{}, false, r.getErr
	}
	bank, ok := r.banks[tenantID]
	if !ok {
		return TenantBank{}, false, nil
	}
	return *bank, true, nil
}

func (r *stubRepo) AppendRecords(_ context.Context, tenantID string, records []FaqRecord) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	bank, ok := r.banks[tenantID]
	if !ok {
		bank = &TenantBank{TenantID: tenantID}
		r.banks[tenantID] = bank
	}
	bank.Records = append(bank.Records, records...)
	return nil
}

type stubEmbedder struct {
	vectors map[string][]float32
}

func newStubEmbedder(vectors map[string][]float32) *stubEmbedder {
	if vectors == nil {
		vectors = make(map[string][]float32)
	}
	return &stubEmbedder{vectors: vectors}
}

func (e *stubEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, ok := e.vectors[text]
		if !ok {
			vec = []float32{0.01, 0.01}
		}
		out[i] = vec
	}
	return out, nil
}

type stubUsage struct {
	counts map[string]int64
}

func newStubUsage() *stubUsage {
	return &stubUsage{counts: make(map[string]int64)}
}

func (s *stubUsage) IncrementAsk(_ context.Context, canonical, _ string) error {
	s.counts[canonical]++
	return nil
}

func (s *stubUsage) TopQuestions(_ context.Context, _ int) ([]TrendingQuestion, error) {
	return nil, nil
}
