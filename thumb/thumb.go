// Package thumb renders gallery images as resized WebP thumbnails.
package thumb

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp" // also registers the webp decoder with image.Decode
	"github.com/valyala/fasthttp"
	"golang.org/x/image/draw"

	"github.com/d-one-motors/site/cache"
)

// Size is one of the rendered thumbnail widths.
type Size struct {
	Width   int
	Suffix  string
	Quality float32
}

var Sizes = []Size{
	{160, "160w", 60},
	{480, "480w", 70},
	{1200, "1200w", 80},
}

// maxSourceBytes bounds a fetched or read source image.
const maxSourceBytes = 20 << 20

var ErrUnsupportedWidth = errors.New("unsupported thumbnail width")

// SizeFor returns the Size with exactly the given width.
func SizeFor(width int) (Size, bool) {
	for _, s := range Sizes {
		if s.Width == width {
			return s, true
		}
	}
	return Size{}, false
}

// Renderer turns gallery references into WebP thumbnails. A reference is
// either an http(s) URL or a path under the static directory.
type Renderer struct {
	staticDir string
	cache     *cache.Cache[[]byte]
	client    *fasthttp.Client
}

func NewRenderer(staticDir string, c *cache.Cache[[]byte], timeout time.Duration) *Renderer {
	return &Renderer{
		staticDir: staticDir,
		cache:     c,
		client: &fasthttp.Client{
			Name:                "d-one-motors-thumb",
			MaxResponseBodySize: maxSourceBytes,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
		},
	}
}

// Key is the cache key of src rendered at width.
func Key(src string, width int) string {
	return fmt.Sprintf("%s|%d", src, width)
}

// Render returns the WebP bytes for src at width and whether they came
// from the cache.
func (r *Renderer) Render(src string, width int) ([]byte, bool, error) {
	size, ok := SizeFor(width)
	if !ok {
		return nil, false, fmt.Errorf("%w: %d", ErrUnsupportedWidth, width)
	}

	key := Key(src, width)
	if data, found := r.cache.Get(key); found {
		return data, true, nil
	}

	raw, err := r.load(src)
	if err != nil {
		return nil, false, err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode %s: %w", src, err)
	}

	data, err := Encode(img, size)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode %s: %w", src, err)
	}

	r.cache.Set(key, data)
	log.Printf("[thumb] Rendered %s at %s (%d bytes)", src, size.Suffix, len(data))
	return data, false, nil
}

func (r *Renderer) load(src string) ([]byte, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return r.fetch(src)
	}

	// Cleaning against "/" keeps the path inside the static directory.
	path := filepath.Join(r.staticDir, filepath.Clean("/"+src))
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", src, err)
	}
	if info.Size() > maxSourceBytes {
		return nil, fmt.Errorf("%s is too large (%d bytes)", src, info.Size())
	}
	return os.ReadFile(path)
}

func (r *Renderer) fetch(url string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	if err := r.client.DoRedirects(req, resp, 3); err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: status %d", url, code)
	}

	// The response body is reused after release.
	return append([]byte(nil), resp.Body()...), nil
}

// Encode scales img to size's width, keeping its aspect ratio, and encodes
// it as lossy WebP. Images narrower than the target are not upscaled.
func Encode(img image.Image, size Size) ([]byte, error) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("empty image")
	}

	w := min(size.Width, bounds.Dx())
	h := max(bounds.Dy()*w/bounds.Dx(), 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Lossless: false, Quality: size.Quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Stats reports the thumbnail cache.
func (r *Renderer) Stats() cache.Stats {
	return r.cache.Stats()
}
