package http

import (
	"context"

	"github.com/id01t/bookforge/internal/entities"
	"github.com/id01t/bookforge/internal/history"
	"github.com/id01t/bookforge/internal/services"
	"github.com/id01t/bookforge/internal/tasks"
	"github.com/id01t/bookforge/internal/templates"
)

// Generator runs a manuscript assembly. *services.Generator satisfies it;
// tests substitute fakes.
type Generator interface {
	Generate(ctx context.Context, req services.GenerateRequest) (*services.GenerateOutcome, error)
}

// HistoryReader provides read access to recorded generations.
type HistoryReader interface {
	List(limit, offset int) ([]history.Summary, int64, error)
	Get(id uint) (*entities.HistoryEntry, error)
}

// RouterConfig contains all dependencies and configuration needed to create
// the HTTP router.
type RouterConfig struct {
	Generator Generator
	History   HistoryReader
	Templates *templates.Catalog
	Store     *history.Store

	// Task queue client (optional; async generation is disabled without it)
	TaskClient *tasks.Client

	// Application info
	Version string
}
