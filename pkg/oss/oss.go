package oss

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

// objectStore is the slice of *minio.Client the uploader needs.
type objectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// Result describes one stored media object. Duration is 0 for images.
type Result struct {
	URL      string  `json:"url"`
	Duration float64 `json:"duration"`
}

type Uploader struct {
	store   objectStore
	region  string
	baseURL string
	probe   func(path string) (float64, error)
}

func NewUploader(client *minio.Client, cfg Config) *Uploader {
	return newUploader(client, cfg, utils.ProbeDuration)
}

func newUploader(store objectStore, cfg Config, probe func(string) (float64, error)) *Uploader {
	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + cfg.Endpoint
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1" // MinIO默认区域
	}
	return &Uploader{store: store, region: region, baseURL: base, probe: probe}
}

// Upload stores the local file and returns its public URL. The local file is
// removed whatever the outcome.
func (u *Uploader) Upload(ctx context.Context, localPath string) (*Result, error) {
	if localPath == "" {
		return nil, errno.ParamErr.WithMessage("Local file path is required")
	}
	defer removeLocal(localPath)

	if _, err := os.Stat(localPath); err != nil {
		return nil, errno.Wrap(errno.ParamErr.WithMessage("Local file not found"), err)
	}

	contentType := detectContentType(localPath)
	isVideo := strings.HasPrefix(contentType, "video/")
	bucketName, prefix := constants.ImageBucket, "image"
	if isVideo {
		bucketName, prefix = constants.VideoBucket, "video"
	}

	// 检查存储桶是否存在，不存在则创建
	if err := u.ensureBucket(ctx, bucketName); err != nil {
		return nil, errno.Wrap(errno.OssErr, errors.Wrapf(err, "ensure bucket %s", bucketName))
	}

	objectName := fmt.Sprintf("%s/%s%s", prefix, utils.NewID(), strings.ToLower(filepath.Ext(localPath)))
	if _, err := u.store.FPutObject(ctx, bucketName, objectName, localPath, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return nil, errno.Wrap(errno.OssErr, errors.Wrapf(err, "put %s/%s", bucketName, objectName))
	}

	res := &Result{URL: fmt.Sprintf("%s/%s/%s", u.baseURL, bucketName, objectName)}
	if isVideo && u.probe != nil {
		d, err := u.probe(localPath)
		if err != nil {
			hlog.CtxWarnf(ctx, "probe duration of %s failed: %v", localPath, err)
		} else {
			res.Duration = d
		}
	}
	return res, nil
}

func (u *Uploader) ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := u.store.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if exists {
		return nil
	}
	if err = u.store.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: u.region}); err != nil {
		return fmt.Errorf("create bucket error: %w", err)
	}
	return nil
}

var knownTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

func detectContentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ct, ok := knownTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	f, err := os.Open(path)
	if err != nil {
		return "application/octet-stream"
	}
	defer f.Close()
	head := make([]byte, 512)
	n, _ := f.Read(head)
	return http.DetectContentType(head[:n])
}

func removeLocal(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		hlog.Warnf("remove temp file %s: %v", path, err)
	}
}
