package service

import (
	"context"

	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/oss"
)

// MediaUploader stores a local file remotely and removes the local copy.
type MediaUploader interface {
	Upload(ctx context.Context, localPath string) (*oss.Result, error)
}

var uploader MediaUploader

// InitUploader installs the media uploader used by publish and update.
func InitUploader(u MediaUploader) {
	uploader = u
}

func upload(ctx context.Context, path string) (*oss.Result, error) {
	if uploader == nil {
		return nil, errno.OssErr.WithMessage("Media storage is not configured")
	}
	return uploader.Upload(ctx, path)
}
