package uploads

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

var _ Service = (*DiskStore)(nil)

// DiskStore stores uploads on the local filesystem under a base directory
// and serves them by URL under a base path. A quota of zero is unlimited.
type DiskStore struct {
	baseDir    string
	baseURL    string
	quotaBytes int64
}

func NewDiskStore(baseDir, baseURL string, quotaBytes int64) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, classifyFSError(err)
	}
	return &DiskStore{
		baseDir:    baseDir,
		baseURL:    baseURL,
		quotaBytes: quotaBytes,
	}, nil
}

// Upload stores one file under a timestamped name so repeated uploads of the
// same filename never collide.
func (d *DiskStore) Upload(ctx context.Context, file StagedFile) (*UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewError(KindCanceled, err)
	}

	if d.quotaBytes > 0 {
		used, err := d.usedBytes()
		if err != nil {
			return nil, classifyFSError(err)
		}
		if used+int64(len(file.Data)) > d.quotaBytes {
			return nil, NewError(KindQuota, fmt.Errorf("quota %d bytes exceeded", d.quotaBytes))
		}
	}

	storedName := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	if err := os.WriteFile(filepath.Join(d.baseDir, storedName), file.Data, 0o644); err != nil {
		return nil, classifyFSError(err)
	}

	return &UploadResult{
		URL:      d.baseURL + "/" + storedName,
		Filename: file.Filename,
		Size:     int64(len(file.Data)),
		MimeType: file.MimeType,
	}, nil
}

// UploadMultiple stores files one by one, reporting per-file progress. It
// stops at the first failure; files already stored stay stored.
func (d *DiskStore) UploadMultiple(ctx context.Context, files []StagedFile, progress ProgressFunc) ([]*UploadResult, error) {
	results := make([]*UploadResult, 0, len(files))
	for i, file := range files {
		if progress != nil {
			progress(i, Progress{Percentage: 0})
		}
		result, err := d.Upload(ctx, file)
		if err != nil {
			return nil, err
		}
		if progress != nil {
			progress(i, Progress{Percentage: 100})
		}
		results = append(results, result)
	}
	return results, nil
}

func (d *DiskStore) usedBytes() (int64, error) {
	var total int64
	err := filepath.WalkDir(d.baseDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	return total, err
}

func classifyFSError(err error) *Error {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return NewError(KindUnauthorized, err)
	case errors.Is(err, fs.ErrNotExist):
		return NewError(KindStorage, err)
	default:
		return NewError(KindStorage, err)
	}
}
