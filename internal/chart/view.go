package chart

import "fmt"

// Renderer draws a configuration on some surface and returns a handle to the drawn chart
type Renderer interface {
	Render(cfg Config) (Handle, error)
}

// Handle is a drawn chart. Release frees whatever the renderer allocated for it.
type Handle interface {
	Release() error
}

// RendererFunc adapts a function to the Renderer interface
type RendererFunc func(cfg Config) (Handle, error)

func (f RendererFunc) Render(cfg Config) (Handle, error) { return f(cfg) }

// View owns the chart shown in one place of the interface. The first Update creates
// the chart; each later Update replaces it and releases the previous one. A View is
// owned by a single caller and is not safe for concurrent use.
type View struct {
	renderer Renderer
	current  Handle
}

// NewView creates an empty view drawing with r
func NewView(r Renderer) *View {
	return &View{renderer: r}
}

// Update draws cfg and releases the chart it replaces. On a render error the
// previous chart stays in place.
func (v *View) Update(cfg Config) error {
	h, err := v.renderer.Render(cfg)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	old := v.current
	v.current = h
	if old != nil {
		if err := old.Release(); err != nil {
			return fmt.Errorf("release previous chart: %w", err)
		}
	}
	return nil
}

// Current returns the chart on display, nil before the first Update
func (v *View) Current() Handle { return v.current }

// Close releases the chart on display
func (v *View) Close() error {
	if v.current == nil {
		return nil
	}
	h := v.current
	v.current = nil
	return h.Release()
}
