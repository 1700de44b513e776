package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/san-kum/grapher/internal/plot"
	xdraw "golang.org/x/image/draw"
)

var (
	ErrViewNotFound = errors.New("storage: view not found")
	ErrInvalidName  = errors.New("storage: invalid view name")
)

// Store keeps view bookmarks under baseDir and writes rendered frames.
type Store struct {
	baseDir string
	scale   int
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, scale: 1}
}

// WithScale makes WritePNG enlarge every pixel to an n x n block.
// n < 1 is treated as 1.
func (s *Store) WithScale(n int) *Store {
	s.scale = max(n, 1)
	return s
}

func (s *Store) Init() error {
	return os.MkdirAll(s.viewDir(), 0755)
}

func (s *Store) viewDir() string {
	return filepath.Join(s.baseDir, "views")
}

// imageMode is the permission of written images, matching os.Create.
const imageMode = 0644

// WritePNG encodes fb as PNG at path. The image is written to a temporary
// file next to path and renamed into place, so path either holds the
// complete new image or is left as it was.
func (s *Store) WritePNG(path string, fb *plot.Framebuffer) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp image: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, s.scaled(fb)); err != nil {
		tmp.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := tmp.Chmod(imageMode); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp image: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

func (s *Store) scaled(fb *plot.Framebuffer) image.Image {
	src := fb.RGBA()
	if s.scale <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, fb.Width*s.scale, fb.Height*s.scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// WriteImage lets a Store act as the controller's image sink.
func (s *Store) WriteImage(path string, fb *plot.Framebuffer) error {
	return s.WritePNG(path, fb)
}

// ViewRecord is a saved viewport.
type ViewRecord struct {
	Name      string    `json:"name"`
	Function  string    `json:"function"`
	Timestamp time.Time `json:"timestamp"`
	CenterX   float64   `json:"center_x"`
	CenterY   float64   `json:"center_y"`
	Zoom      float64   `json:"zoom"`
	Axis      bool      `json:"axis"`
}

// NewViewRecord captures v for function under name.
func NewViewRecord(name, function string, v plot.Viewport) ViewRecord {
	return ViewRecord{
		Name:      name,
		Function:  function,
		Timestamp: time.Now(),
		CenterX:   v.Center.X,
		CenterY:   v.Center.Y,
		Zoom:      v.Zoom,
		Axis:      v.AxisEnabled,
	}
}

// Apply copies the record onto v, keeping v's grid size.
func (r ViewRecord) Apply(v *plot.Viewport) {
	v.Center = plot.Pt(r.CenterX, r.CenterY)
	v.Zoom = r.Zoom
	v.AxisEnabled = r.Axis
	v.Normalize()
}

func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/\`) && name != "." && name != ".."
}

func (s *Store) SaveView(rec ViewRecord) error {
	if !validName(rec.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, rec.Name)
	}
	if err := s.Init(); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(s.viewDir(), rec.Name+".json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func (s *Store) LoadView(name string) (*ViewRecord, error) {
	if !validName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	data, err := os.ReadFile(filepath.Join(s.viewDir(), name+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrViewNotFound, name)
		}
		return nil, err
	}

	var rec ViewRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListViews returns all readable bookmarks sorted by name. Unreadable
// files are skipped.
func (s *Store) ListViews() ([]ViewRecord, error) {
	entries, err := os.ReadDir(s.viewDir())
	if err != nil {
		if os.IsNotExist(err) {
			return []ViewRecord{}, nil
		}
		return nil, err
	}

	views := make([]ViewRecord, 0, len(entries))
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), ".json")
		if entry.IsDir() || !ok {
			continue
		}
		rec, err := s.LoadView(name)
		if err != nil {
			continue
		}
		views = append(views, *rec)
	}

	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views, nil
}
