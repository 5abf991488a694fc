package service

import (
	"context"

	"journal-backend/internal/domains/archive"
	infra "journal-backend/internal/infrastructure/archive"
)

type archiveService struct {
	builder *infra.Builder
}

func NewArchiveService(builder *infra.Builder) archive.Service {
	return &archiveService{
		builder: builder,
	}
}

func (s *archiveService) Build(ctx context.Context, req archive.BuildRequest) (*archive.BuildResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, archive.NewInvalidBuildRequest(err.Error())
	}

	fileName, err := s.builder.Build(req.FileNames)
	if err != nil {
		return nil, archive.NewArchiveIOError(err)
	}

	return &archive.BuildResponse{
		FileName:         fileName,
		ExpiresInSeconds: int(s.builder.TTL().Seconds()),
	}, nil
}

func (s *archiveService) Resolve(ctx context.Context, fileName string) (string, error) {
	path, err := s.builder.StagedPath(fileName)
	if err != nil {
		return "", archive.NewArchiveNotFound(fileName)
	}
	return path, nil
}
