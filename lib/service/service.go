package service

import (
	"errors"

	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

// ErrNotFound is returned by update/delete operations when the identifier
// does not match a stored record. Callers map it to a 404 instead of
// treating the operation as a silent no-op.
var ErrNotFound = errors.New("record not found")

// FinanceService bundles the dependencies shared by every operation: the
// configuration, the bun connection pool and the document number generator.
// It is constructed once at process start and injected into the controllers.
type FinanceService struct {
	Config  *Config
	DB      *bun.DB
	Logger  *lecho.Logger
	Numbers NumberGenerator
}

func New(config *Config, db *bun.DB, logger *lecho.Logger) *FinanceService {
	return &FinanceService{
		Config:  config,
		DB:      db,
		Logger:  logger,
		Numbers: NewNumberGenerator(),
	}
}
