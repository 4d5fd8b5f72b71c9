package fileaccess

import (
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/standardbeagle/elearning-parser/internal/elerrors"
	"github.com/standardbeagle/elearning-parser/internal/logging"
)

// RemoteConfig describes the S3-like bucket/prefix a Remote FileAccess
// is rooted at. Loaded from internal/config/remote.go's TOML profile
// in the default wiring, but constructible directly by callers that
// already hold a session.
type RemoteConfig struct {
	Bucket   string
	Prefix   string
	Region   string
	Endpoint string // optional, for S3-compatible stores
}

// Remote is the FileAccess variant over an S3-like bucket/prefix. The
// object keys under the prefix are enumerated once at construction
// (ListObjectsV2); each Open call streams a fresh whole-object
// GetObject read, matching the contract that every call yields an independent
// reader with no shared cursor.
type Remote struct {
	cfg    RemoteConfig
	client *s3.S3
	idx    *index
	keyFor map[string]string // normalized relative path -> full object key
	log    *logging.Logger
}

// NewRemote constructs a Remote FileAccess for the given bucket/prefix,
// enumerating every object under the prefix up front.
func NewRemote(cfg RemoteConfig) (*Remote, error) {
	sessOpts := session.Options{Config: aws.Config{Region: aws.String(cfg.Region)}}
	if cfg.Endpoint != "" {
		sessOpts.Config.Endpoint = aws.String(cfg.Endpoint)
		sessOpts.Config.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSessionWithOptions(sessOpts)
	if err != nil {
		return nil, elerrors.NewFileAccessError(elerrors.KindFileAccessIO, "connect", cfg.Bucket, err)
	}
	client := s3.New(sess)

	prefix := strings.TrimSuffix(cfg.Prefix, "/")
	var paths []string
	keyFor := make(map[string]string)
	err = client.ListObjectsV2Pages(&s3.ListObjectsV2Input{
		Bucket: aws.String(cfg.Bucket),
		Prefix: aws.String(prefix),
	}, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			key := aws.StringValue(obj.Key)
			rel := strings.TrimPrefix(key, prefix)
			rel = normalize(rel)
			if rel == "" {
				continue
			}
			paths = append(paths, rel)
			keyFor[caseFold(rel)] = key
		}
		return true
	})
	if err != nil {
		return nil, elerrors.NewFileAccessError(elerrors.KindFileAccessIO, "list", cfg.Bucket+"/"+cfg.Prefix, err)
	}

	return &Remote{
		cfg:    cfg,
		client: client,
		idx:    newIndex(paths),
		keyFor: keyFor,
		log:    logging.Default(),
	}, nil
}

func (r *Remote) Exists(path string) bool {
	_, ok := r.keyFor[caseFold(normalize(path))]
	return ok
}

func (r *Remote) List(dir string) ([]string, error) {
	return r.idx.List(dir), nil
}

func (r *Remote) Open(path string) (io.ReadCloser, error) {
	key, ok := r.keyFor[caseFold(normalize(path))]
	if !ok {
		return nil, notFound("open", path)
	}
	out, err := r.client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(r.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, elerrors.NewFileAccessError(elerrors.KindFileAccessIO, "open", path, err)
	}
	r.log.Debugf("fileaccess.remote", "opened s3://%s/%s", r.cfg.Bucket, key)
	return out.Body, nil
}

func (r *Remote) Root() RootPath {
	return RootPath("s3://" + r.cfg.Bucket + "/" + r.cfg.Prefix)
}

func (r *Remote) Close() error { return nil }

// Prefetch downloads path in full using a ranged, parallel downloader
// and returns the bytes. Used by callers that want to pay the transfer
// cost once up front (e.g. the manifest file) rather than streaming.
func (r *Remote) Prefetch(path string) ([]byte, error) {
	key, ok := r.keyFor[caseFold(normalize(path))]
	if !ok {
		return nil, notFound("prefetch", path)
	}
	buf := aws.NewWriteAtBuffer([]byte{})
	downloader := s3manager.NewDownloaderWithClient(r.client)
	_, err := downloader.Download(buf, &s3.GetObjectInput{
		Bucket: aws.String(r.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, elerrors.NewFileAccessError(elerrors.KindFileAccessIO, "prefetch", path, err)
	}
	return buf.Bytes(), nil
}
