package picsum

import (
	"context"
	"image"
	"os"
	"strconv"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/inspiration/pkg/errors"
	"github.com/matzehuels/inspiration/pkg/integrations"
)

// DefaultBaseURL is the public Lorem Picsum endpoint.
const DefaultBaseURL = "https://picsum.photos"

// Client provides access to the Lorem Picsum API.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Lorem Picsum client on top of the shared HTTP client.
// An empty baseURL selects [DefaultBaseURL].
func NewClient(hc *integrations.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{Client: hc, baseURL: baseURL}
}

// URL returns the request URL for a random photo of the given size.
func (c *Client) URL(width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "invalid image size %dx%d", width, height)
	}
	return integrations.JoinPath(c.baseURL, strconv.Itoa(width), strconv.Itoa(height))
}

// Download fetches a random photo and writes the raw response bytes to path,
// overwriting any existing file.
//
// On a non-200 response nothing is written and the returned error carries
// the status (see [integrations.StatusCode]). If writing fails part-way the
// partial file is removed. A nil error always comes with a non-nil Download.
func (c *Client) Download(ctx context.Context, width, height int, path string) (*Download, error) {
	if err := errors.ValidateFilePath(path); err != nil {
		return nil, err
	}
	u, err := c.URL(width, height)
	if err != nil {
		return nil, err
	}

	data, err := c.GetBytes(ctx, u)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		_ = os.Remove(path)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return &Download{Path: path, Size: int64(len(data))}, nil
}

// Download is a photo written to local disk. It owns the file: callers
// remove it with [Download.Remove] once the pixels are in memory.
type Download struct {
	Path string // Local file path
	Size int64  // Bytes written
}

// Open decodes the downloaded photo fully into memory.
func (d *Download) Open() (image.Image, error) {
	return OpenImage(d.Path)
}

// Remove deletes the downloaded file. It is idempotent: a file that is
// already gone, or a nil Download, is not an error.
func (d *Download) Remove() error {
	if d == nil {
		return nil
	}
	if err := os.Remove(d.Path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeInternal, err, "remove %s", d.Path)
	}
	return nil
}

// OpenImage decodes the image at path. A missing file yields FILE_NOT_FOUND
// with fs.ErrNotExist in its chain; undecodable content yields INVALID_IMAGE.
func OpenImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err == nil {
		return img, nil
	}
	if _, statErr := os.Stat(path); statErr != nil {
		if os.IsNotExist(statErr) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, statErr, "open image")
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, statErr, "open image")
	}
	return nil, errors.Wrap(errors.ErrCodeInvalidImage, err, "decode %s", path)
}
