package gridreveal

import (
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"path"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/ftrvxmtrx/tga"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// decoders picks a decoder by file extension. TGA has no magic number, so
// content sniffing through image.Decode cannot be relied on.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".gif":  gif.Decode,
	".webp": webp.Decode,
	".tga":  tga.Decode,
}

// Assets holds decoded images keyed by their path in the source filesystem.
type Assets struct {
	mu     sync.Mutex
	paths  []string
	images map[string]image.Image
	ebiten map[string]*ebiten.Image
}

// Paths returns every loaded path in lexical order.
func (a *Assets) Paths() []string {
	return a.paths
}

// Len returns the number of loaded images.
func (a *Assets) Len() int {
	return len(a.paths)
}

// Image returns the decoded image for name.
func (a *Assets) Image(name string) (image.Image, bool) {
	img, ok := a.images[name]
	return img, ok
}

// Ebiten returns name as an ebiten image, converting it on first use.
func (a *Assets) Ebiten(name string) *ebiten.Image {
	a.mu.Lock()
	defer a.mu.Unlock()
	if img, ok := a.ebiten[name]; ok {
		return img
	}
	src, ok := a.images[name]
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	a.ebiten[name] = img
	return img
}

// Preload decodes every file in fsys matching any of patterns (fs.Glob
// syntax) before the page starts, so no cell pops in late. Files are decoded
// concurrently; the first failure cancels the rest and is returned with its
// path. PNG, JPEG, GIF, WebP and TGA are supported.
func Preload(ctx context.Context, fsys fs.FS, patterns ...string) (*Assets, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pat := range patterns {
		matches, err := fs.Glob(fsys, pat)
		if err != nil {
			return nil, fmt.Errorf("preload: pattern %q: %w", pat, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)

	decoded := make([]image.Image, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			img, err := decodeFile(fsys, name)
			if err != nil {
				return err
			}
			decoded[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("preload: %w", err)
	}

	a := &Assets{
		paths:  paths,
		images: make(map[string]image.Image, len(paths)),
		ebiten: make(map[string]*ebiten.Image, len(paths)),
	}
	for i, p := range paths {
		a.images[p] = decoded[i]
	}
	return a, nil
}

func decodeFile(fsys fs.FS, name string) (image.Image, error) {
	decode, ok := decoders[strings.ToLower(path.Ext(name))]
	if !ok {
		return nil, fmt.Errorf("decode %s: unsupported format", name)
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}
