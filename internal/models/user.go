package models

// Role is the access level granted at login.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

// ViewMode names the screen a client should show.
type ViewMode string

const (
	ViewLanding       ViewMode = "landing"
	ViewLogin         ViewMode = "login"
	ViewMainApp       ViewMode = "main_app"
	ViewSummaryReport ViewMode = "summary_report"
	ViewFullDetails   ViewMode = "full_details"
	ViewViewer        ViewMode = "viewer"
)

// LandingView returns the screen a freshly logged-in user lands on.
func (r Role) LandingView() ViewMode {
	switch r {
	case RoleAdmin:
		return ViewMainApp
	case RoleViewer:
		return ViewViewer
	}
	return ViewLogin
}

// User is an authenticated principal. Credentials live in configuration,
// so there is no persisted user table.
type User struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
