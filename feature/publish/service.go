package publish

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"htmx-greeter/core/assets"
	"htmx-greeter/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrBucketMissing is returned when the target bucket does not exist and
// Options.CreateBucket is not set.
var ErrBucketMissing = errors.New("bucket does not exist")

// ErrPruneWithoutPrefix is returned when Options.Prune is set with an empty
// prefix, which would remove every unrelated object in the bucket.
var ErrPruneWithoutPrefix = errors.New("prune requires a non-empty prefix")

// DigestMetadataKey is the user metadata key carrying the SHA-256 of an object.
const DigestMetadataKey = "Sha256"

// Options controls a publish run.
type Options struct {
	// Bucket is the target bucket.
	Bucket string
	// Prefix is prepended to every asset path to form the object key.
	Prefix string
	// CreateBucket creates the bucket when it is missing.
	CreateBucket bool
	// DryRun reports what would change without writing anything.
	DryRun bool
	// Prune removes objects under Prefix that are not part of the bundle.
	Prune bool
}

// Report summarises a publish run. In a dry run Uploaded and Pruned list what
// would have been written or removed, and CreatedBucket whether the bucket
// would have been created.
type Report struct {
	Bucket        string   `json:"bucket" yaml:"bucket"`
	DryRun        bool     `json:"dry_run" yaml:"dry_run"`
	CreatedBucket bool     `json:"created_bucket" yaml:"created_bucket"`
	Uploaded      []string `json:"uploaded" yaml:"uploaded"`
	Skipped       []string `json:"skipped" yaml:"skipped"`
	Failed        []string `json:"failed" yaml:"failed"`
	Pruned        []string `json:"pruned" yaml:"pruned"`
}

// Service publishes an asset store to object storage.
type Service struct {
	client   storage.Client
	store    *assets.Store
	manifest *Manifest
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a new publish service. manifest may be nil.
func NewService(client storage.Client, store *assets.Store, manifest *Manifest, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		store:    store,
		manifest: manifest,
		logger:   logger,
		now:      time.Now,
	}
}

// Publish mirrors the store into opts.Bucket. The returned error combines
// every per-object failure; the report is always returned once the bucket
// check has passed.
func (s *Service) Publish(ctx context.Context, opts Options) (*Report, error) {
	if opts.Prune && ObjectKey(opts.Prefix, "") == "" {
		return nil, ErrPruneWithoutPrefix
	}

	created, err := s.ensureBucket(ctx, opts)
	if err != nil {
		return nil, err
	}

	report := &Report{Bucket: opts.Bucket, DryRun: opts.DryRun, CreatedBucket: created}
	wanted := make(map[string]struct{}, s.store.Len())
	var errs error

	for _, p := range s.store.Paths() {
		a, _ := s.store.Lookup(p)
		key := ObjectKey(opts.Prefix, p)
		wanted[key] = struct{}{}

		uploaded, err := s.publishOne(ctx, opts, key, a)
		switch {
		case err != nil:
			report.Failed = append(report.Failed, key)
			errs = multierr.Append(errs, err)
		case uploaded:
			report.Uploaded = append(report.Uploaded, key)
		default:
			report.Skipped = append(report.Skipped, key)
		}
	}

	// A bucket that does not exist yet has nothing to prune.
	if opts.Prune && !created {
		pruned, err := s.prune(ctx, opts, wanted)
		report.Pruned = pruned
		errs = multierr.Append(errs, err)
	}

	s.logger.Info("Publish finished",
		zap.String("bucket", opts.Bucket),
		zap.Bool("dry_run", opts.DryRun),
		zap.Int("uploaded", len(report.Uploaded)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("failed", len(report.Failed)),
		zap.Int("pruned", len(report.Pruned)),
	)

	return report, errs
}

// ensureBucket reports whether the bucket was (or, in a dry run, would be)
// created.
func (s *Service) ensureBucket(ctx context.Context, opts Options) (bool, error) {
	exists, err := s.client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket %s: %w", opts.Bucket, err)
	}
	if exists {
		return false, nil
	}
	if !opts.CreateBucket {
		return false, fmt.Errorf("%w: %s", ErrBucketMissing, opts.Bucket)
	}
	if opts.DryRun {
		s.logger.Info("Bucket would be created", zap.String("bucket", opts.Bucket))
		return true, nil
	}

	if err := s.client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
		return false, fmt.Errorf("failed to create bucket %s: %w", opts.Bucket, err)
	}
	s.logger.Info("Created bucket", zap.String("bucket", opts.Bucket))
	return true, nil
}

// publishOne uploads a single asset unless the manifest shows it unchanged.
func (s *Service) publishOne(ctx context.Context, opts Options, key string, a assets.Asset) (bool, error) {
	digest := Digest(a.Data)

	if s.manifest != nil {
		rec, found, err := s.manifest.Get(ctx, key)
		if err != nil {
			return false, err
		}
		if found && rec.Digest == digest {
			s.logger.Debug("Asset unchanged", zap.String("key", key))
			return false, nil
		}
	}

	if opts.DryRun {
		return true, nil
	}

	_, err := s.client.PutObject(ctx, opts.Bucket, key, bytes.NewReader(a.Data), int64(len(a.Data)), minio.PutObjectOptions{
		ContentType:  a.MIME,
		UserMetadata: map[string]string{DigestMetadataKey: digest},
	})
	if err != nil {
		s.logger.Warn("Upload failed", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("failed to upload %s: %w", key, err)
	}
	s.logger.Debug("Uploaded asset", zap.String("key", key), zap.Int("size", len(a.Data)))

	if s.manifest != nil {
		err := s.manifest.Record(ctx, PublishedAsset{
			ObjectKey:   key,
			Digest:      digest,
			Size:        int64(len(a.Data)),
			MIME:        a.MIME,
			PublishedAt: s.now().UTC(),
		})
		if err != nil {
			// The object is in the bucket; only the skip optimisation is lost.
			return true, err
		}
	}
	return true, nil
}

func (s *Service) prune(ctx context.Context, opts Options, wanted map[string]struct{}) ([]string, error) {
	var pruned []string
	var errs error

	objects := s.client.ListObjects(ctx, opts.Bucket, minio.ListObjectsOptions{
		Prefix:    ObjectKey(opts.Prefix, ""),
		Recursive: true,
	})
	for obj := range objects {
		if obj.Err != nil {
			errs = multierr.Append(errs, fmt.Errorf("failed to list bucket %s: %w", opts.Bucket, obj.Err))
			continue
		}
		if _, ok := wanted[obj.Key]; ok {
			continue
		}

		if !opts.DryRun {
			if err := s.client.RemoveObject(ctx, opts.Bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("failed to remove %s: %w", obj.Key, err))
				continue
			}
			if s.manifest != nil {
				errs = multierr.Append(errs, s.manifest.Forget(ctx, obj.Key))
			}
		}
		pruned = append(pruned, obj.Key)
	}

	return pruned, errs
}

// ObjectKey joins prefix and an asset path with exactly one slash.
func ObjectKey(prefix, p string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return p
	}
	return prefix + "/" + p
}

// Digest returns the hex SHA-256 of data.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
