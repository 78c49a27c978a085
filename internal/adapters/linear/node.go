package linear

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/muesli/termenv"
	"go.trai.ch/kiln/internal/adapters/detector"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the renderer Graft node.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Renderer, error) {
			return NewRenderer(os.Stdout, os.Stderr, WithProfile(stderrProfile)), nil
		},
	})
}

func stderrProfile() termenv.Profile {
	if detector.ColorEnabled(os.Stderr) {
		return termenv.ANSI
	}
	return termenv.Ascii
}
