package uploads

import (
	"context"

	"github.com/hartley-interiors/studio-server/internal/storage/media"
)

// StagedFile is a file selected for upload but not yet stored.
type StagedFile struct {
	Filename string
	MimeType string
	Data     []byte
}

// UploadResult describes one stored file.
type UploadResult struct {
	URL      string
	Filename string
	Size     int64
	MimeType string
}

// Progress is reported per file during multi-file uploads.
type Progress struct {
	Percentage int
}

// ProgressFunc receives the index of the file being uploaded and its progress.
type ProgressFunc func(fileIndex int, progress Progress)

// Service stores images and returns their durable locations.
type Service interface {
	Upload(ctx context.Context, file StagedFile) (*UploadResult, error)
	UploadMultiple(ctx context.Context, files []StagedFile, progress ProgressFunc) ([]*UploadResult, error)
}

// ResultsToImages converts upload results into the image representation
// stored on transactions and items. The image whose filename matches
// primaryFilename is flagged primary; an empty primaryFilename flags none.
func ResultsToImages(results []*UploadResult, primaryFilename string) []media.Image {
	images := make([]media.Image, 0, len(results))
	for _, result := range results {
		if result == nil {
			continue
		}
		images = append(images, media.Image{
			URL:       result.URL,
			Filename:  result.Filename,
			Size:      result.Size,
			MimeType:  result.MimeType,
			IsPrimary: primaryFilename != "" && result.Filename == primaryFilename,
		})
	}
	return images
}
