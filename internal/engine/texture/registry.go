package texture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// DefaultFiles maps the scene's texture names to their image files.
var DefaultFiles = map[string]string{
	"grassroad":     "grassroad.jpg",
	"asphalt":       "asphalt.jpg",
	"white_asphalt": "white_asphalt.jpg",
	"grass":         "grass.png",
	"wall":          "wall.jpg",
	"glass":         "glass.jpg",
	"door":          "door.jpg",
	"color":         "color.jpg",
}

// Uploader turns decoded images into GPU texture handles.
type Uploader interface {
	Upload(img *image.RGBA) (uint32, error)
	Delete(handle uint32)
}

// State is the load state of one texture.
type State int

const (
	StatePending State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Config configures a Registry.
type Config struct {
	Dir   string
	Files map[string]string // nil uses DefaultFiles
	// Procedural substitutes a generated image for any file that fails
	// to load.
	Procedural bool
}

type entry struct {
	file   string
	state  State
	handle uint32
	err    error
}

type decoded struct {
	name      string
	img       *image.RGBA
	generated bool
	err       error
}

// Registry loads the scene's textures in the background and uploads them
// on the GL thread. A texture is drawable only once Ready reports true;
// one that fails stays not ready for the rest of the run.
type Registry struct {
	cfg      Config
	uploader Uploader
	log      *zap.Logger

	mu      sync.Mutex
	entries map[string]*entry
	results chan decoded
	started bool
	wg      sync.WaitGroup
}

// NewRegistry creates a registry. Nothing is read until LoadAsync.
func NewRegistry(cfg Config, up Uploader, log *zap.Logger) *Registry {
	if cfg.Files == nil {
		cfg.Files = DefaultFiles
	}
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{
		cfg:      cfg,
		uploader: up,
		log:      log,
		entries:  make(map[string]*entry, len(cfg.Files)),
		results:  make(chan decoded, len(cfg.Files)),
	}
	for name, file := range cfg.Files {
		r.entries[name] = &entry{file: file}
	}
	return r
}

// Names returns the registered texture names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadAsync starts decoding every texture, one goroutine per file.
// Results are applied by Poll. Calling it more than once has no effect.
func (r *Registry) LoadAsync(ctx context.Context) {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return
	}
	r.started = true
	r.mu.Unlock()

	for name, e := range r.entries {
		r.wg.Add(1)
		go func(name, file string) {
			defer r.wg.Done()
			res := r.load(ctx, name, file)
			select {
			case r.results <- res:
			case <-ctx.Done():
			}
		}(name, e.file)
	}
}

func (r *Registry) load(ctx context.Context, name, file string) decoded {
	path := filepath.Join(r.cfg.Dir, file)

	img, err := readImage(path)
	if err == nil {
		return decoded{name: name, img: img}
	}
	if ctx.Err() != nil {
		return decoded{name: name, err: ctx.Err()}
	}
	if r.cfg.Procedural {
		return decoded{name: name, img: Generate(name), generated: true, err: err}
	}
	return decoded{name: name, err: err}
}

func readImage(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, path)
}

// Poll uploads every image decoded since the last call and returns how
// many textures became ready. It never blocks and must run on the thread
// that owns the GL context.
func (r *Registry) Poll() int {
	ready := 0
	for {
		select {
		case res := <-r.results:
			if r.apply(res) {
				ready++
			}
		default:
			return ready
		}
	}
}

func (r *Registry) apply(res decoded) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entries[res.name]
	if e.state != StatePending {
		return false
	}

	if res.img == nil {
		e.state, e.err = StateFailed, res.err
		r.log.Error("texture failed to load",
			zap.String("texture", res.name),
			zap.String("file", e.file),
			zap.Error(res.err))
		return false
	}
	if res.generated {
		r.log.Warn("using generated texture",
			zap.String("texture", res.name),
			zap.Error(res.err))
	}

	handle, err := r.uploader.Upload(res.img)
	if err != nil {
		e.state, e.err = StateFailed, err
		r.log.Error("texture upload failed", zap.String("texture", res.name), zap.Error(err))
		return false
	}

	e.state, e.handle = StateReady, handle
	r.log.Debug("texture ready",
		zap.String("texture", res.name),
		zap.Int("width", res.img.Rect.Dx()),
		zap.Int("height", res.img.Rect.Dy()),
		zap.Bool("generated", res.generated))
	return true
}

// Ready reports whether name can be drawn.
func (r *Registry) Ready(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[name]
	return ok && e.state == StateReady
}

// Handle returns the GL texture of name, if it is ready.
func (r *Registry) Handle(name string) (uint32, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[name]
	if !ok || e.state != StateReady {
		return 0, false
	}
	return e.handle, true
}

// State returns the load state of name and the error that failed it.
func (r *Registry) State(name string) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[name]
	if !ok {
		return StateFailed, fmt.Errorf("unknown texture %q", name)
	}
	return e.state, e.err
}

// Pending returns how many textures are still loading.
func (r *Registry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.state == StatePending {
			n++
		}
	}
	return n
}

// ErrNotStarted is returned by Wait before LoadAsync.
var ErrNotStarted = errors.New("texture loading not started")

// Wait blocks until every loader goroutine has delivered its result or
// ctx ends. Results still need Poll to take effect.
func (r *Registry) Wait(ctx context.Context) error {
	r.mu.Lock()
	started := r.started
	r.mu.Unlock()
	if !started {
		return ErrNotStarted
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close deletes every uploaded texture. Call it on the GL thread.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.state == StateReady {
			r.uploader.Delete(e.handle)
			e.handle = 0
			e.state = StateFailed
			e.err = errors.New("registry closed")
		}
	}
}
