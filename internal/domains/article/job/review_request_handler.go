package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"journal-backend/internal/infrastructure/email"
	"journal-backend/internal/shared"
)

// ============================================
// Review Request Email Handler
// ============================================

// ReviewRequestHandler delivers the review invitation queued when a
// reviewer is assigned to an article.
type ReviewRequestHandler struct {
	mailer email.Mailer
}

func NewReviewRequestHandler(mailer email.Mailer) *ReviewRequestHandler {
	return &ReviewRequestHandler{
		mailer: mailer,
	}
}

func (h *ReviewRequestHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.ReviewRequestPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal ReviewRequest payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Str("email", payload.Email).
		Str("articleId", payload.ArticleID).
		Msg("Processing review request email")

	msg := email.Message{
		FromLabel: "Journal Editorial Office",
		To:        payload.Email,
		Subject:   fmt.Sprintf("Review request: %s", payload.ArticleTitle),
		HTMLBody: fmt.Sprintf(
			"<p>Dear %s,</p><p>You have been assigned to review the article <b>%s</b>.</p><p>Please log in to submit your review.</p>",
			payload.ReviewerName, payload.ArticleTitle,
		),
	}

	if _, err := h.mailer.Send(ctx, msg); err != nil {
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to send review request email")
		return fmt.Errorf("send review request email: %w", err)
	}

	log.Info().
		Str("email", payload.Email).
		Msg("Review request email sent successfully")

	return nil
}
