package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/askbase/faq-service/internal/domain/faqbank"
	apperrors "github.com/askbase/faq-service/pkg/errors"
)

// Handler wires the HTTP transport to the FAQ bank service.
type Handler struct {
	faqSvc faqbank.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(faqSvc faqbank.Service, logger *slog.Logger) *Handler {
	return &Handler{
		faqSvc: faqSvc,
		logger: logger.With("component", "http.handler"),
	}
}

// Train ingests a batch of question/answer pairs for a tenant.
func (h *Handler) Train(c *gin.Context) {
	var req faqbank.TrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.faqSvc.Train(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, mapDomainError(err, "train_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Ask answers a tenant question. Sentinel answers ("Company not trained
// yet.", "Sorry, no relevant answer found.") are successful outcomes, not
// errors.
func (h *Handler) Ask(c *gin.Context) {
	var req faqbank.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.faqSvc.Ask(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, mapDomainError(err, "ask_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Trending returns the most frequently asked questions.
func (h *Handler) Trending(c *gin.Context) {
	items, err := h.faqSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, mapDomainError(err, "trending_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": items})
}

// Health reports process liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func mapDomainError(err error, fallbackCode string) *HTTPError {
	status := http.StatusInternalServerError
	code := fallbackCode
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, "no_valid_input"):
		status = http.StatusBadRequest
		code = "no_valid_input"
	case apperrors.IsCode(err, "embedding_error"):
		status = http.StatusBadGateway
		code = "embedding_error"
	case apperrors.IsCode(err, "store_error"):
		status = http.StatusInternalServerError
		code = "store_error"
	}
	return NewHTTPError(status, code, errMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
