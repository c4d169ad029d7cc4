package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bracket/pkg/observability"
)

// logHooks reports core events through the CLI logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnBuild(entrants, rounds int, d time.Duration) {
	h.logger.Debug("Built bracket", "entrants", entrants, "rounds", rounds, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnBattle(node int, tie bool) {
	h.logger.Debug("Battle", "node", node, "tie", tie)
}

func (h *logHooks) OnTiebreak(node int) {
	h.logger.Debug("Tiebreak", "node", node)
}

func (h *logHooks) OnRoundComplete(node int, side string, d time.Duration) {
	h.logger.Debug("Round complete", "node", node, "winner", side, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnRenderStart(_ context.Context, format string, inputBytes int) {
	h.logger.Debug("Rendering", "format", format, "input", inputBytes)
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("Rendered", "format", format, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("Cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("Cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("Cache set", "type", keyType, "bytes", size)
}

var (
	_ observability.BracketHooks = (*logHooks)(nil)
	_ observability.RenderHooks  = (*logHooks)(nil)
	_ observability.CacheHooks   = (*logHooks)(nil)
)
