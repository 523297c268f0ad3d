package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	pkgsource "github.com/goliatone/go-formbuilder/pkg/source"
)

// Loader implements pkgsource.Loader by delegating to file, fs.FS, reader or
// HTTP strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	maxBytes  int64
}

var _ pkgsource.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgsource.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	maxBytes := options.MaxBytes
	if maxBytes <= 0 {
		maxBytes = pkgsource.DefaultMaxBytes
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		maxBytes:  maxBytes,
	}
}

// Load fetches the raw bytes behind src.
func (l *Loader) Load(ctx context.Context, src pkgsource.Source) ([]byte, error) {
	if src == nil {
		return nil, errors.New("source loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgsource.KindFile:
		data, err = loadFile(src.Location(), l.maxBytes)
	case pkgsource.KindFS:
		data, err = loadFromFS(l.fs, src.Location(), l.maxBytes)
	case pkgsource.KindReader:
		rs, ok := src.(pkgsource.ReaderSource)
		if !ok || rs.Reader == nil {
			return nil, errors.New("source loader: reader source has no reader")
		}
		data, err = readLimited(rs.Reader, l.maxBytes)
	case pkgsource.KindURL:
		if !l.allowHTTP {
			return nil, errors.New("source loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout, l.maxBytes)
	default:
		err = fmt.Errorf("source loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return nil, fmt.Errorf("source loader: %s: %w", src.Location(), err)
	}
	return data, nil
}
