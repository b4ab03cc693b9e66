package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"beamx-scorecard/backend/internal/ai"
	"beamx-scorecard/backend/internal/report"
	"beamx-scorecard/backend/internal/scoring"
)

func (s *Server) handleReport(c *gin.Context) {
	var req ScorecardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}

	submission, err := req.ToSurvey()
	if err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}

	sub := scoring.Evaluate(submission)
	result, err := scoring.Aggregate(sub)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"sub_scores": sub,
		}).Error("aggregate scorecard")
		s.renderError(c, http.StatusInternalServerError, errors.New("internal error: invalid score calculation"))
		return
	}

	narrative := s.adviseOrFallback(c.Request.Context(), submission.Industry, sub)

	rendered, err := report.Render(report.Input{
		Total:     result.Total,
		Label:     result.Label,
		Narrative: narrative,
		Industry:  submission.Industry,
		Scores:    sub,
		CTAURL:    s.ctaURL,
	})
	if err != nil {
		logrus.WithError(err).Error("render report")
		s.renderError(c, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	c.JSON(http.StatusOK, ScorecardResponse{
		Score:          result.Total,
		Label:          result.Label,
		SubScores:      sub,
		Narrative:      narrative,
		RenderedReport: rendered,
	})
}

// adviseOrFallback runs the external advisory call with degrade-on-failure
// semantics: a single attempt, and any error leaves the pipeline intact.
func (s *Server) adviseOrFallback(ctx context.Context, industry string, sub scoring.SubScores) string {
	if s.advisor == nil || !s.advisor.Enabled() {
		return ai.FallbackNarrative
	}

	narrative, err := s.advisor.Advise(ctx, ai.AdvisoryInput{Industry: industry, Scores: sub})
	if err != nil {
		logrus.WithError(err).Warn("generate advisory")
		return ai.FallbackNarrative
	}
	if strings.TrimSpace(narrative) == "" {
		return ai.FallbackNarrative
	}
	return narrative
}
