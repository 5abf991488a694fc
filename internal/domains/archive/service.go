package archive

import "context"

// Service is the business logic contract for the archive domain.
type Service interface {
	// Build zips the named uploads into a staged archive and returns
	// its name plus the expiry window.
	Build(ctx context.Context, req BuildRequest) (*BuildResponse, error)

	// Resolve maps an archive name to its staged on-disk path.
	Resolve(ctx context.Context, fileName string) (string, error)
}
