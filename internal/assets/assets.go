package assets

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PlaceholderURL is shown for products that never got an image.
const PlaceholderURL = "https://dummyimage.com/450x300/dee2e6/6c757d.jpg"

// URLPrefix is the public route uploaded files are served under.
const URLPrefix = "/uploads/"

// MaxUploadSize caps uploaded images at 5 MiB.
const MaxUploadSize = 5 << 20

var (
	ErrNotAnImage   = errors.New("only image files are allowed")
	ErrFileTooLarge = errors.New("image must be 5 MB or smaller")
)

type Kind int

const (
	KindPlaceholder Kind = iota
	KindLocal
	KindRemote
)

// Image is a tagged reference to a product picture: a managed file
// under the uploads directory, an external URL, or the placeholder.
type Image struct {
	Kind Kind
	// filename for KindLocal, URL for KindRemote, empty otherwise
	Value string
}

func Local(name string) Image { return Image{Kind: KindLocal, Value: name} }
func Remote(url string) Image { return Image{Kind: KindRemote, Value: url} }
func Placeholder() Image { return Image{Kind: KindPlaceholder} }

// ParseImage classifies a stored image string. This is the only place
// the /uploads/ prefix convention is inspected.
func ParseImage(s string) Image {
	switch {
	case strings.HasPrefix(s, URLPrefix):
		return Local(strings.TrimPrefix(s, URLPrefix))
	case s == "" || s == PlaceholderURL:
		return Placeholder()
	default:
		return Remote(s)
	}
}

// String renders the image the way it is stored and served.
func (img Image) String() string {
	switch img.Kind {
	case KindLocal:
		return URLPrefix + img.Value
	case KindRemote:
		return img.Value
	default:
		return PlaceholderURL
	}
}

// Manager owns the uploads directory and decides which image reference
// a product ends up with across create, update and delete.
type Manager struct {
	dir string
}

func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// Dir returns the directory uploaded files are written to.
func (m *Manager) Dir() string { return m.dir }

// Store validates and writes an uploaded file, returning its local
// image reference. Filenames combine a nanosecond timestamp with a
// random suffix so rapid or concurrent uploads never collide.
func (m *Manager) Store(file *multipart.FileHeader) (Image, error) {
	if file.Size > MaxUploadSize {
		return Image{}, ErrFileTooLarge
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return Image{}, ErrNotAnImage
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return Image{}, err
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return Image{}, err
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), hex.EncodeToString(suffix), ext)

	src, err := file.Open()
	if err != nil {
		return Image{}, err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(m.dir, name))
	if err != nil {
		return Image{}, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return Image{}, err
	}
	return Local(name), nil
}

// ResolveCreate picks the image for a brand new product: uploaded file
// first, then a supplied URL, then the placeholder.
func (m *Manager) ResolveCreate(file *multipart.FileHeader, url string) (Image, error) {
	if file != nil {
		return m.Store(file)
	}
	if u := strings.TrimSpace(url); u != "" {
		return Remote(u), nil
	}
	return Placeholder(), nil
}

// ResolveUpdate picks the image for an edited product. The current
// image is kept unless an uploaded file or a different URL replaces
// it, in which case a superseded local file is removed best-effort.
func (m *Manager) ResolveUpdate(current Image, file *multipart.FileHeader, url string) (Image, error) {
	if file != nil {
		img, err := m.Store(file)
		if err != nil {
			return Image{}, err
		}
		m.Cleanup(current)
		return img, nil
	}
	if u := strings.TrimSpace(url); u != "" && u != current.String() {
		m.Cleanup(current)
		return Remote(u), nil
	}
	return current, nil
}

// Cleanup removes the file behind a local image reference. A missing
// file is fine; any other failure is logged and swallowed, so cleanup
// never undoes the operation that triggered it.
func (m *Manager) Cleanup(img Image) {
	if img.Kind != KindLocal {
		return
	}
	path := filepath.Join(m.dir, img.Value)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN: could not remove stale upload %s: %v", path, err)
	}
}
