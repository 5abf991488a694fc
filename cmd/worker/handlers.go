package main

import (
	"github.com/hibiken/asynq"

	archiveJob "journal-backend/internal/domains/archive/job"
	articleJob "journal-backend/internal/domains/article/job"
	"journal-backend/internal/shared"
	"journal-backend/pkg/container"
)

// HandlerRegistry groups every task handler the worker serves.
type HandlerRegistry struct {
	DeleteArchive *archiveJob.DeleteArchiveHandler
	SweepStaging  *archiveJob.SweepStagingHandler
	ReviewRequest *articleJob.ReviewRequestHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		DeleteArchive: archiveJob.NewDeleteArchiveHandler(c.Builder),
		SweepStaging:  archiveJob.NewSweepStagingHandler(c.Builder),
		ReviewRequest: articleJob.NewReviewRequestHandler(c.Mailer),
	}
}

// RegisterHandlers binds task types to their handlers on the mux.
func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(shared.TypeDeleteArchive, r.DeleteArchive)
	mux.Handle(shared.TypeSweepStaging, r.SweepStaging)
	mux.Handle(shared.TypeSendReviewRequest, r.ReviewRequest)
}
