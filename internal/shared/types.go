package shared

// Asynq task types. Namespaced by owning domain.
const (
	TypeDeleteArchive     = "archive:delete_file"
	TypeSweepStaging      = "archive:sweep_staging"
	TypeSendReviewRequest = "email:review_request"
)

// Queue names, highest priority first.
const (
	QueueHigh    = "high"
	QueueDefault = "default"
	QueueLow     = "low"
)

// DeleteArchivePayload identifies one staged archive to remove.
type DeleteArchivePayload struct {
	FileName string `json:"fileName"`
}

// SweepStagingPayload is empty; the handler derives everything from config.
type SweepStagingPayload struct{}

// ReviewRequestPayload carries what the mail template needs, so the
// worker does not have to load the article again.
type ReviewRequestPayload struct {
	ArticleID    string `json:"articleId"`
	ArticleTitle string `json:"articleTitle"`
	ReviewerName string `json:"reviewerName"`
	Email        string `json:"email"`
}
