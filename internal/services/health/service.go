package health

import (
	"context"
	"database/sql"
	"time"

	"annadata-backend/internal/shared/storage/db"
)

// Service reports liveness and, when a database is configured, its reachability.
type Service struct {
	DB      *sql.DB
	Timeout time.Duration
}

// NewService constructs a health service. database may be nil in memory mode.
func NewService(database *sql.DB) *Service {
	return &Service{DB: database, Timeout: 2 * time.Second}
}

// Status is the /health payload.
type Status struct {
	OK       bool   `json:"ok"`
	Database string `json:"database"`
}

// Check pings the database. Memory mode reports "memory" and is always ok.
func (s *Service) Check(ctx context.Context) Status {
	if s.DB == nil {
		return Status{OK: true, Database: "memory"}
	}
	if err := db.Ping(ctx, s.DB, s.Timeout); err != nil {
		return Status{OK: false, Database: "unreachable"}
	}
	return Status{OK: true, Database: "ok"}
}
