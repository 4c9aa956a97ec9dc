package domain

// Role is the capability level resolved by the identity provider.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// CallerContext is the identity resolved once per request from the bearer token.
// The core trusts it as given and never re-derives it.
type CallerContext struct {
	UserID   string `json:"userID"`
	Role     Role   `json:"role"`
	BranchID int64  `json:"branchID"`
}

// IsAdmin reports whether the caller holds the administrator capability.
func (c CallerContext) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// CanAccessBranch reports whether the caller may read or write data of branchID.
// Administrators are not branch scoped.
func (c CallerContext) CanAccessBranch(branchID int64) bool {
	return c.IsAdmin() || c.BranchID == branchID
}
