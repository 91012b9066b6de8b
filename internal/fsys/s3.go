package fsys

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osmike/batchkit/internal/domain"
	errs "github.com/osmike/batchkit/internal/error"
	"github.com/osmike/batchkit/internal/log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
)

// S3Config holds the settings for connecting to an S3-compatible object store
// (AWS S3, minio, Ceph RGW).
type S3Config struct {
	// Endpoint is the object store URL, e.g. "http://127.0.0.1:9000" for a
	// local minio. Leave empty for AWS S3 proper.
	Endpoint string `yaml:"endpoint"`
	// Region, e.g. "us-east-1".
	Region string `yaml:"region"`
	// Bucket all paths are resolved against.
	Bucket string `yaml:"bucket"`
	// AccessKey and SecretKey are static credentials for the store.
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// S3 implements FS on an S3-compatible object store. Paths are object keys,
// directories are implicit prefixes and Rename is server-side copy plus
// delete.
type S3 struct {
	client *s3.Client
	bucket string
	logger zerolog.Logger
}

// NewS3 connects to the configured object store and returns an FS bound to a
// single bucket.
//
// Parameters:
//   - cfg: Connection settings. Endpoint and static credentials are optional;
//     when omitted the SDK's ambient credential chain applies.
//
// Returns:
//   - An FS whose paths are object keys inside cfg.Bucket.
func NewS3(cfg S3Config) *S3 {
	client := s3.NewFromConfig(aws.Config{Region: cfg.Region}, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
		if cfg.AccessKey != "" {
			o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		}
	})
	return &S3{
		client: client,
		bucket: cfg.Bucket,
		logger: log.WithComponent("fsys.s3"),
	}
}

// Exists reports whether an object exists at path.
func (s *S3) Exists(ctx context.Context, path string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key(path)),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, errs.New(errs.ErrRead, err.Error())
	}
	return true, nil
}

// ReadFile downloads the full content of the object at path.
func (s *S3) ReadFile(ctx context.Context, path string) ([]byte, error) {
	downloader := manager.NewDownloader(s.client)
	buffer := manager.NewWriteAtBuffer([]byte{})

	_, err := downloader.Download(ctx, buffer, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key(path)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, errs.New(errs.ErrNotExist, path)
		}
		return nil, errs.New(errs.ErrRead, err.Error())
	}
	return buffer.Bytes(), nil
}

// WriteFile uploads data to the object at path, replacing any existing object.
// Object-store puts are atomic by construction.
func (s *S3) WriteFile(ctx context.Context, path string, data []byte) error {
	uploader := manager.NewUploader(s.client)

	_, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key(path)),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return errs.New(errs.ErrWrite, err.Error())
	}
	return nil
}

// AppendFile downloads the existing object (if any), concatenates data and
// re-uploads the result. Object stores have no native append.
func (s *S3) AppendFile(ctx context.Context, path string, data []byte) error {
	existing, err := s.ReadFile(ctx, path)
	if err != nil && !errors.Is(err, errs.ErrNotExist) {
		return err
	}
	return s.WriteFile(ctx, path, append(existing, data...))
}

// Delete removes the object at path. Deleting an absent object is not an error:
// S3 DeleteObject is idempotent.
func (s *S3) Delete(ctx context.Context, path string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key(path)),
	})
	if err != nil {
		return errs.New(errs.ErrDelete, err.Error())
	}
	return nil
}

// Rename moves the object at oldPath to newPath via server-side copy plus
// delete. Not atomic: a crash between the two calls leaves both objects.
func (s *S3) Rename(ctx context.Context, oldPath, newPath string) error {
	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.bucket),
		CopySource: aws.String(s.bucket + "/" + key(oldPath)),
		Key:        aws.String(key(newPath)),
	})
	if err != nil {
		return errs.New(errs.ErrRename, err.Error())
	}
	return s.Delete(ctx, oldPath)
}

// List returns the objects sharing the dir prefix.
func (s *S3) List(ctx context.Context, dir string) ([]domain.FileInfo, error) {
	prefix := key(dir)
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	var infos []domain.FileInfo
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errs.New(errs.ErrList, err.Error())
		}
		for _, obj := range page.Contents {
			info := domain.FileInfo{Path: aws.ToString(obj.Key)}
			if obj.Size != nil {
				info.Size = *obj.Size
			}
			if obj.LastModified != nil {
				info.ModTime = *obj.LastModified
			}
			infos = append(infos, info)
		}
	}
	return infos, nil
}

// MkdirAll is a no-op: object stores have no directories.
func (s *S3) MkdirAll(_ context.Context, _ string) error {
	return nil
}

// PurgeOlderThan deletes the objects under the dir prefix whose modification
// time is older than ttl.
func (s *S3) PurgeOlderThan(ctx context.Context, dir string, ttl time.Duration) (int, error) {
	infos, err := s.List(ctx, dir)
	if err != nil {
		return 0, errs.New(errs.ErrPurge, err.Error())
	}

	cutoff := time.Now().Add(-ttl)
	removed := 0
	for _, fi := range infos {
		if !fi.ModTime.Before(cutoff) {
			continue
		}
		if err := s.Delete(ctx, fi.Path); err != nil {
			return removed, errs.New(errs.ErrPurge, fmt.Sprintf("removing %s: %v", fi.Path, err))
		}
		removed++
	}

	if removed > 0 {
		s.logger.Debug().Str("prefix", dir).Int("removed", removed).Msg("purged stale objects")
	}
	return removed, nil
}

// key normalizes a path into an object key.
func key(path string) string {
	return strings.TrimPrefix(path, "/")
}
