package rbac

const (
	RoleAdmin  = "ADMIN"
	RoleHR     = "HR"
	RoleViewer = "VIEWER"
)

const (
	ResourceEmployee = "employee"
	ResourceRecord   = "record"
	ResourceExport   = "export"

	ActionRead  = "read"
	ActionWrite = "write"
)

type EnforceRequest struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleHR, RoleViewer:
		return true
	default:
		return false
	}
}
