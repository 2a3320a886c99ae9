// Package engine implements the table-driven sync core: push reconciliation
// (upsert by id plus diff-based delete detection), scoped pull snapshots, the
// firm access gate and the change log. Everything runs against the store
// handed in at construction; the package keeps no state of its own.
package engine

import (
	"errors"
	"time"

	"syncloud/internal/registry"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Request-level failures. Handlers map these onto HTTP status codes; none of
// them leaves any side effect behind.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnknownTable   = errors.New("unknown table")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
)

// Config carries everything the engine needs; there is no ambient state.
type Config struct {
	DB       *gorm.DB
	Registry *registry.Registry
	Logger   *zap.Logger
	Clock    func() time.Time
}

type Engine struct {
	db  *gorm.DB
	reg *registry.Registry
	log *zap.Logger
	now func() time.Time
}

func New(cfg Config) *Engine {
	e := &Engine{
		db:  cfg.DB,
		reg: cfg.Registry,
		log: cfg.Logger,
		now: cfg.Clock,
	}
	if e.reg == nil {
		e.reg = registry.New()
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}
