package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-oasmodel/pkg/oas"
)

// Loader implements oas.Loader by delegating to file, fs.FS, or HTTP
// strategies. Construction helpers live in the top-level oasmodel package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ oas.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options oas.LoaderOptions) oas.Loader {
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

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src oas.Source) (oas.Document, error) {
	if src == nil {
		return oas.Document{}, errors.New("oas loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case oas.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case oas.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case oas.SourceKindURL:
		if !l.allowHTTP {
			return oas.Document{}, errors.New("oas loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("oas loader: unsupported source kind")
	}
	if err != nil {
		return oas.Document{}, err
	}

	return oas.NewDocument(src, data)
}
