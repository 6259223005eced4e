package pixelart

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// builtinImages maps friendly names to their sprite sources so operators
// can say pixelart("creeper", ...) instead of pasting a url.
var builtinImages = map[string]string{
	"creeper":   "https://raw.githubusercontent.com/ColeGendreau/build-assets/main/sprites/creeper.png",
	"heart":     "https://raw.githubusercontent.com/ColeGendreau/build-assets/main/sprites/heart.png",
	"star":      "https://raw.githubusercontent.com/ColeGendreau/build-assets/main/sprites/star.png",
	"sword":     "https://raw.githubusercontent.com/ColeGendreau/build-assets/main/sprites/sword.png",
	"pickaxe":   "https://raw.githubusercontent.com/ColeGendreau/build-assets/main/sprites/pickaxe.png",
	"rainbow":   "https://raw.githubusercontent.com/ColeGendreau/build-assets/main/sprites/rainbow.png",
	"smiley":    "https://raw.githubusercontent.com/ColeGendreau/build-assets/main/sprites/smiley.png",
	"mushroom":  "https://raw.githubusercontent.com/ColeGendreau/build-assets/main/sprites/mushroom.png",
	"skull":     "https://raw.githubusercontent.com/ColeGendreau/build-assets/main/sprites/skull.png",
	"diamond":   "https://raw.githubusercontent.com/ColeGendreau/build-assets/main/sprites/diamond.png",
}

// IsBuiltinImage reports whether name is in the built-in sprite table.
func IsBuiltinImage(name string) bool {
	_, ok := builtinImages[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Fetcher resolves an image source (url or built-in name) to a decoded
// image. The zero value uses http.DefaultClient.
type Fetcher struct {
	Client *http.Client
}

// Fetch downloads and decodes the source. It is all-or-nothing: on any
// failure the typed error carries the source and nothing else is returned.
// Cancellation and timeouts come in through ctx.
func (f *Fetcher) Fetch(ctx context.Context, source string) (image.Image, error) {
	url := source
	if u, ok := builtinImages[strings.ToLower(strings.TrimSpace(source))]; ok {
		url = u
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Source: source, Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: source, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Source: source, Err: fmt.Errorf("status %v", resp.Status)}
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: source, Err: err}
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, &DecodeError{Source: source, Err: err}
	}
	return img, nil
}

// FetchWithTimeout is Fetch with a hard deadline; used by callers that
// have no context of their own.
func (f *Fetcher) FetchWithTimeout(source string, timeout time.Duration) (image.Image, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return f.Fetch(ctx, source)
}
