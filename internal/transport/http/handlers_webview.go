package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"cmbridge/internal/transport/httputil"
	"cmbridge/internal/webview/geometry"
	dErrors "cmbridge/pkg/domain-errors"
)

// LayoutResolver computes the consent-layer frame for given screen metrics.
type LayoutResolver interface {
	ResolveLayout(ctx context.Context, screen geometry.Screen) (geometry.Rect, error)
}

// WebViewHandler exposes the layer geometry for inspection, so a tester can
// see which frame a device would render without attaching a device.
type WebViewHandler struct {
	logger   *slog.Logger
	resolver LayoutResolver
}

// NewWebViewHandler creates a new WebViewHandler.
func NewWebViewHandler(resolver LayoutResolver, logger *slog.Logger) *WebViewHandler {
	return &WebViewHandler{logger: logger, resolver: resolver}
}

// Register mounts the webview routes on the given router.
func (h *WebViewHandler) Register(r chi.Router) {
	r.Get("/webview/layout", h.handleLayout)
}

// LayoutResponse is the resolved layer frame in logical screen coordinates.
type LayoutResponse struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (h *WebViewHandler) handleLayout(w http.ResponseWriter, r *http.Request) {
	screen, err := screenFromQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	rect, err := h.resolver.ResolveLayout(r.Context(), screen)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, LayoutResponse{
		X:      rect.X,
		Y:      rect.Y,
		Width:  rect.Width,
		Height: rect.Height,
	})
}

// screenFromQuery reads screen bounds and optional safe-area insets from the
// query string. width and height are required.
func screenFromQuery(r *http.Request) (geometry.Screen, error) {
	q := r.URL.Query()

	width, err := requiredFloat(q.Get("width"), "width")
	if err != nil {
		return geometry.Screen{}, err
	}
	height, err := requiredFloat(q.Get("height"), "height")
	if err != nil {
		return geometry.Screen{}, err
	}

	screen := geometry.Screen{Width: width, Height: height}
	for name, dst := range map[string]*float64{
		"inset_top":    &screen.Insets.Top,
		"inset_left":   &screen.Insets.Left,
		"inset_bottom": &screen.Insets.Bottom,
		"inset_right":  &screen.Insets.Right,
	} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return geometry.Screen{}, dErrors.New(dErrors.CodeValidation, name+" must be a number")
		}
		*dst = v
	}
	return screen, nil
}

func requiredFloat(raw, name string) (float64, error) {
	if raw == "" {
		return 0, dErrors.New(dErrors.CodeValidation, name+" query parameter is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeValidation, name+" must be a number")
	}
	return v, nil
}
