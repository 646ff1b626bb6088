package api

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kapu/hf-wrapped-go/internal/constants"
	"github.com/kapu/hf-wrapped-go/internal/domain"
	"github.com/kapu/hf-wrapped-go/pkg/errors"
	"go.uber.org/zap"
)

// WrappedGenerator is the orchestrator surface the HTTP layer depends on.
type WrappedGenerator interface {
	Generate(ctx context.Context, input domain.GenerateInput) (*domain.WrappedResult, error)
}

type wrappedRequest struct {
	Handle       string `json:"handle"`
	Year         int    `json:"year"`
	SubjectType  string `json:"subjectType"`
	AllowRefresh bool   `json:"allowRefresh"`
}

// GenerateWrappedHandler serves POST /api/wrapped: validate, rate limit,
// delegate to the generator and map typed failures onto status codes.
func GenerateWrappedHandler(generator WrappedGenerator, limiter *RateLimiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter != nil && !limiter.Allow(clientIP(c)) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}

		var req wrappedRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}

		input, err := validateRequest(req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := generator.Generate(c.Request.Context(), input)
		if err != nil {
			status := http.StatusInternalServerError
			var notFound *errors.NotFoundError
			var refreshClosed *errors.RefreshClosedError
			switch {
			case stderrors.As(err, &notFound):
				status = http.StatusNotFound
			case stderrors.As(err, &refreshClosed):
				status = http.StatusForbidden
			}
			if status == http.StatusInternalServerError {
				logger.Error("Wrapped generation failed",
					zap.String("handle", input.Handle),
					zap.Int("year", input.Year),
					zap.Error(err),
				)
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func validateRequest(req wrappedRequest) (domain.GenerateInput, error) {
	handle := strings.TrimSpace(req.Handle)
	if len(handle) < constants.InputLimits.MinHandleLength || len(handle) > constants.InputLimits.MaxHandleLength {
		return domain.GenerateInput{}, errors.NewValidationError("handle must be between 2 and 80 characters", "handle", req.Handle)
	}

	if req.Year != 0 && (req.Year < constants.InputLimits.MinYear || req.Year > constants.InputLimits.MaxYear) {
		return domain.GenerateInput{}, errors.NewValidationError("year is out of range", "year", req.Year)
	}

	subjectType := domain.SubjectType(req.SubjectType)
	if req.SubjectType != "" && !subjectType.IsValid() {
		return domain.GenerateInput{}, errors.NewValidationError("subjectType must be user, organization or auto", "subjectType", req.SubjectType)
	}

	return domain.GenerateInput{
		Handle:       handle,
		Year:         req.Year,
		SubjectType:  subjectType,
		AllowRefresh: req.AllowRefresh,
	}, nil
}

// clientIP prefers proxy-supplied headers over the socket peer.
func clientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if real := c.GetHeader("X-Real-IP"); real != "" {
		return real
	}
	return c.ClientIP()
}
