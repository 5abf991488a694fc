package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	infra "journal-backend/internal/infrastructure/archive"
	"journal-backend/internal/shared"
)

// ============================================
// Delete Archive Handler
// ============================================

// DeleteArchiveHandler removes one staged archive when its delayed
// expiry task fires.
type DeleteArchiveHandler struct {
	builder *infra.Builder
}

func NewDeleteArchiveHandler(builder *infra.Builder) *DeleteArchiveHandler {
	return &DeleteArchiveHandler{
		builder: builder,
	}
}

func (h *DeleteArchiveHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.DeleteArchivePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal DeleteArchive payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	if err := h.builder.Remove(payload.FileName); err != nil {
		log.Error().Err(err).Str("fileName", payload.FileName).Msg("Failed to delete staged archive")
		return fmt.Errorf("delete archive: %w", err)
	}

	log.Info().
		Str("fileName", payload.FileName).
		Msg("Staged archive deleted")

	return nil
}

// ============================================
// Sweep Staging Handler
// ============================================

// SweepStagingHandler reclaims staged archives whose expiry task was
// lost, e.g. across a Redis flush or process restart.
type SweepStagingHandler struct {
	builder *infra.Builder
}

func NewSweepStagingHandler(builder *infra.Builder) *SweepStagingHandler {
	return &SweepStagingHandler{
		builder: builder,
	}
}

func (h *SweepStagingHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	removed, err := h.builder.SweepStaging()
	if err != nil {
		log.Error().Err(err).Msg("Staging sweep failed")
		return fmt.Errorf("sweep staging: %w", err)
	}

	if removed > 0 {
		log.Info().
			Int("removed", removed).
			Msg("Staging sweep reclaimed expired archives")
	}

	return nil
}
