package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"journal-backend/internal/config"
)

// Expiry schedules the removal of a staged archive after a delay.
// Satisfied by the asynq queue client.
type Expiry interface {
	ScheduleArchiveDeletion(fileName string, delay time.Duration) error
}

// Builder packages previously uploaded files into zip archives inside
// the staging directory and registers their expiry.
type Builder struct {
	uploadDir  string
	stagingDir string
	ttl        time.Duration
	expiry     Expiry
}

func NewBuilder(cfg *config.StorageConfig, expiry Expiry) *Builder {
	return &Builder{
		uploadDir:  cfg.UploadDir,
		stagingDir: cfg.StagingDir,
		ttl:        cfg.ArchiveTTL,
		expiry:     expiry,
	}
}

// TTL returns the configured expiry window.
func (b *Builder) TTL() time.Duration {
	return b.ttl
}

// Build zips the named upload files into a timestamped archive in the
// staging directory, schedules its deletion and returns the archive
// filename. Every named file must already exist in the upload store.
func (b *Builder) Build(fileNames []string) (string, error) {
	if len(fileNames) == 0 {
		return "", fmt.Errorf("no files requested")
	}

	if err := os.MkdirAll(b.stagingDir, 0o755); err != nil {
		return "", fmt.Errorf("create staging dir: %w", err)
	}

	archiveName := fmt.Sprintf("%d.zip", time.Now().UnixMilli())
	archivePath := filepath.Join(b.stagingDir, archiveName)

	out, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("create archive %s: %w", archiveName, err)
	}

	zw := zip.NewWriter(out)

	for _, name := range fileNames {
		// Names come from the client; never let them escape the upload dir.
		base := filepath.Base(strings.TrimSpace(name))
		if base == "." || base == string(filepath.Separator) {
			b.abort(zw, out, archivePath)
			return "", fmt.Errorf("invalid file name %q", name)
		}

		if err := b.addFile(zw, base); err != nil {
			b.abort(zw, out, archivePath)
			return "", err
		}
	}

	if err := zw.Close(); err != nil {
		out.Close()
		os.Remove(archivePath)
		return "", fmt.Errorf("finalize archive: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(archivePath)
		return "", fmt.Errorf("close archive: %w", err)
	}

	if err := b.expiry.ScheduleArchiveDeletion(archiveName, b.ttl); err != nil {
		// The archive stays available; the sweep job will reclaim it.
		return archiveName, nil
	}

	return archiveName, nil
}

func (b *Builder) addFile(zw *zip.Writer, name string) error {
	src, err := os.Open(filepath.Join(b.uploadDir, name))
	if err != nil {
		return fmt.Errorf("read upload %s: %w", name, err)
	}
	defer src.Close()

	dst, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("add %s to archive: %w", name, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write %s to archive: %w", name, err)
	}
	return nil
}

func (b *Builder) abort(zw *zip.Writer, out *os.File, path string) {
	zw.Close()
	out.Close()
	os.Remove(path)
}

// StagedPath resolves an archive name to its on-disk path, rejecting
// anything outside the staging directory.
func (b *Builder) StagedPath(name string) (string, error) {
	base := filepath.Base(strings.TrimSpace(name))
	if base != name || base == "." {
		return "", fmt.Errorf("invalid archive name %q", name)
	}

	path := filepath.Join(b.stagingDir, base)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("archive %s not found: %w", base, err)
	}
	return path, nil
}

// Remove deletes one staged archive. Missing files are not an error:
// the delayed task and the sweep job may race.
func (b *Builder) Remove(fileName string) error {
	path := filepath.Join(b.stagingDir, filepath.Base(fileName))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove archive %s: %w", fileName, err)
	}
	return nil
}

// SweepStaging removes staged archives older than the TTL and returns
// how many were reclaimed.
func (b *Builder) SweepStaging() (int, error) {
	entries, err := os.ReadDir(b.stagingDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read staging dir: %w", err)
	}

	removed := 0
	cutoff := time.Now().Add(-b.ttl)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".zip") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := b.Remove(entry.Name()); err == nil {
				removed++
			}
		}
	}

	return removed, nil
}
