package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports traversals to the CLI logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnTraversalStart(_ context.Context, kind, start string) {
	h.logger.Debug("traversal started", "kind", kind, "start", start)
}

func (h logHooks) OnTraversalComplete(_ context.Context, kind string, visited int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("traversal found nothing", "kind", kind, "err", err, "took", d.Round(time.Microsecond))
		return
	}
	h.logger.Debug("traversal finished", "kind", kind, "visited", visited, "took", d.Round(time.Microsecond))
}
