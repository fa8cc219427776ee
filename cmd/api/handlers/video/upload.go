package handlers

import (
	"os"
	"path/filepath"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"

	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

var tempDir = filepath.Join(os.TempDir(), "vidtube")

// InitUpload sets the directory multipart files are staged in before upload.
func InitUpload(dir string) error {
	if dir != "" {
		tempDir = dir
	}
	return os.MkdirAll(tempDir, 0o755)
}

// saveFormFile stages one multipart file and returns its local path. A missing
// field (or a body that is not multipart) yields "" so the service can report
// which file is required.
func saveFormFile(c *app.RequestContext, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		hlog.Debugf("form file %s not present: %v", field, err)
		return "", nil
	}
	if err = os.MkdirAll(tempDir, 0o755); err != nil {
		return "", errno.Wrap(errno.ServiceErr.WithMessage("Failed to stage upload"), errors.Wrap(err, "create temp dir"))
	}
	dst := filepath.Join(tempDir, utils.NewID()+filepath.Ext(fh.Filename))
	if err = c.SaveUploadedFile(fh, dst); err != nil {
		return "", errno.Wrap(errno.ServiceErr.WithMessage("Failed to stage upload"), errors.Wrapf(err, "stage %s", field))
	}
	return dst, nil
}

// cleanup removes staged files the uploader did not consume.
func cleanup(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			hlog.Warnf("remove staged file %s: %v", p, err)
		}
	}
}
