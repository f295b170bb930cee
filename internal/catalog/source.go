package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Environment variables consulted for s3:// sources. Credentials come from
// the standard AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY variables.
const (
	EnvS3Endpoint = "STARSEEK_S3_ENDPOINT"
	EnvS3Insecure = "STARSEEK_S3_INSECURE"

	defaultS3Endpoint = "s3.amazonaws.com"
)

// Opener opens a catalog source for reading
type Opener interface {
	Open(ctx context.Context, source string) (io.ReadCloser, error)
}

// DefaultOpener dispatches on the source scheme: plain paths, http(s) URLs and s3://bucket/key
type DefaultOpener struct {
	HTTPClient *http.Client
	// S3Client is created lazily from the environment when nil
	S3Client *minio.Client

	mu sync.Mutex
}

// NewDefaultOpener creates an opener with a bounded HTTP client
func NewDefaultOpener() *DefaultOpener {
	return &DefaultOpener{
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Open opens the source
func (o *DefaultOpener) Open(ctx context.Context, source string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return o.openHTTP(ctx, source)
	case strings.HasPrefix(source, "s3://"):
		return o.openS3(ctx, source)
	case strings.Contains(source, "://"):
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, source)
	default:
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog file: %w", err)
		}
		return f, nil
	}
}

func (o *DefaultOpener) openHTTP(ctx context.Context, source string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	client := o.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch catalog: %s returned %s", source, resp.Status)
	}
	return resp.Body, nil
}

func (o *DefaultOpener) openS3(ctx context.Context, source string) (io.ReadCloser, error) {
	bucket, key, err := ParseS3URL(source)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	if o.S3Client == nil {
		o.S3Client, err = newS3ClientFromEnv()
	}
	client := o.S3Client
	o.mu.Unlock()
	if err != nil {
		return nil, err
	}

	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3 object %s/%s: %w", bucket, key, err)
	}
	return obj, nil
}

// ParseS3URL splits s3://bucket/key into its parts
func ParseS3URL(source string) (bucket, key string, err error) {
	u, err := url.Parse(source)
	if err != nil {
		return "", "", fmt.Errorf("invalid s3 url %q: %w", source, err)
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if u.Scheme != "s3" || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid s3 url %q: want s3://bucket/key", source)
	}
	return bucket, key, nil
}

func newS3ClientFromEnv() (*minio.Client, error) {
	endpoint := os.Getenv(EnvS3Endpoint)
	if endpoint == "" {
		endpoint = defaultS3Endpoint
	}
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewEnvAWS(),
		Secure: os.Getenv(EnvS3Insecure) == "",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}
	return client, nil
}
