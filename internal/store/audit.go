package store

import (
	"context"
	"time"

	"charterops/internal/utils"
)

// AuditLogger appends action records to the logs collection. Audit writes
// must never block or fail the operation they describe: every error is
// logged locally and swallowed.
type AuditLogger struct {
	Store     Gateway
	RequestID string
}

type auditRecord struct {
	Action    string         `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// LogAction records one action. Always returns; never propagates errors.
func (a AuditLogger) LogAction(ctx context.Context, action string, details map[string]any) {
	if a.Store == nil {
		return
	}
	rec := auditRecord{Action: action, Details: details, Timestamp: utils.NowUTC()}
	if _, err := a.Store.Create(ctx, CollLogs, rec); err != nil {
		utils.LogEvent(a.RequestID, "audit", action, "log write failed: "+err.Error())
	}
}
