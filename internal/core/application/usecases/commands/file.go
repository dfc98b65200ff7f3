package commands

import (
	"context"
	"io"

	"reco/internal/core/ports"
	"reco/internal/pkg/errs"
)

// File is an upload attached to a command.
type File struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

func (f *File) validate(param string) error {
	if f == nil {
		return nil
	}
	if f.Filename == "" || f.Body == nil {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

// upload stores f under folder and returns its reference, "" when f is nil.
func upload(ctx context.Context, storage ports.FileStorage, folder string, f *File) (string, error) {
	if f == nil {
		return "", nil
	}
	return storage.Upload(ctx, folder, f.Filename, f.ContentType, f.Body)
}
