package ports

import "github.com/quickaccess/linkdir/internal/core/domain"

// AuditRecorder is the non-propagating sink for audit entries. Record never
// blocks the caller on persistence and never surfaces an error: the business
// operation that produced the entry must succeed or fail on its own.
type AuditRecorder interface {
	Record(entry domain.LogEntry)
}
