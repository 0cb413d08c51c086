package bootstrap

import "context"

const (
	AuditServerStarted  = "SERVER_STARTED"
	AuditServerShutdown = "SERVER_SHUTDOWN"
	AuditServerStopped  = "SERVER_STOPPED"
)

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
