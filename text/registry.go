package text

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/uidriver"
)

var (
	goRegularOnce sync.Once
	goRegular     *FontSource
	goRegularErr  error
)

// GoRegular returns the built-in Go Regular font, parsed once.
func GoRegular() (*FontSource, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = NewFontSource(goregular.TTF)
	})
	return goRegular, goRegularErr
}

// Registry maps font ids to font sources. The empty id resolves to the
// default font, which is Go Regular unless SetDefault is called.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	fonts map[uidriver.FontID]*FontSource
	def   *FontSource
}

// NewRegistry creates a registry with no named fonts.
func NewRegistry() *Registry {
	return &Registry{fonts: make(map[uidriver.FontID]*FontSource)}
}

// Register adds or replaces the font for id. Registering under the empty
// id sets the default font.
func (r *Registry) Register(id uidriver.FontID, src *FontSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id == uidriver.DefaultFont {
		r.def = src
		return
	}
	r.fonts[id] = src
}

// RegisterFile loads a font file and registers it under id.
func (r *Registry) RegisterFile(id uidriver.FontID, path string) error {
	src, err := NewFontSourceFromFile(path)
	if err != nil {
		return err
	}
	r.Register(id, src)
	uidriver.Logger().Info("font registered", "id", string(id), "name", src.Name(), "path", path)
	return nil
}

// SetDefault sets the font used for the empty id.
func (r *Registry) SetDefault(src *FontSource) {
	r.Register(uidriver.DefaultFont, src)
}

// Lookup resolves id. Unknown ids fail with uidriver.ErrResourceNotFound.
func (r *Registry) Lookup(id uidriver.FontID) (*FontSource, error) {
	r.mu.RLock()
	var src *FontSource
	var ok bool
	if id == uidriver.DefaultFont {
		src, ok = r.def, r.def != nil
	} else {
		src, ok = r.fonts[id]
	}
	r.mu.RUnlock()

	if ok {
		return src, nil
	}
	if id == uidriver.DefaultFont {
		return GoRegular()
	}
	return nil, fmt.Errorf("text: font %q: %w", string(id), uidriver.ErrResourceNotFound)
}

// IDs returns the named font ids in sorted order.
func (r *Registry) IDs() []uidriver.FontID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]uidriver.FontID, 0, len(r.fonts))
	for id := range r.fonts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
