package services

import (
	"context"
	"sync"

	"github.com/pensionunlock/policypilot/internal/models"
)

type warningContextKey struct{}

// WarningCollector accumulates the structured events of one pipeline run
// (rejection reasons, gap warnings, tie-break resolutions). An external
// observability layer consumes them; the pipeline itself never reads them
// back.
type WarningCollector struct {
	mu       sync.Mutex
	warnings []models.Warning
}

// NewWarningContext returns a context carrying a fresh WarningCollector,
// plus a reference to the collector so the caller can retrieve the events
// after the run.
func NewWarningContext(ctx context.Context) (context.Context, *WarningCollector) {
	wc := &WarningCollector{}
	return context.WithValue(ctx, warningContextKey{}, wc), wc
}

// AddWarning appends a warning to the collector in ctx.
// If ctx has no collector, the call is a no-op.
func AddWarning(ctx context.Context, w models.Warning) {
	wc, ok := ctx.Value(warningContextKey{}).(*WarningCollector)
	if !ok || wc == nil {
		return
	}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	wc.warnings = append(wc.warnings, w)
}

// GetWarnings returns all collected warnings.
func (wc *WarningCollector) GetWarnings() []models.Warning {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	return wc.warnings
}

// CountByCode returns how many collected warnings carry the given code.
func (wc *WarningCollector) CountByCode(code models.WarningCode) int {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	n := 0
	for _, w := range wc.warnings {
		if w.Code == code {
			n++
		}
	}
	return n
}
