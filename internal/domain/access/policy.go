// Package access holds the pure route-admission and dashboard-dispatch rules.
// Everything here is side-effect-free; the HTTP middleware only applies the
// decisions computed in this package.
package access

import (
	"learnhub-api/internal/domain/user"
)

const (
	LoginPath      = "/login"
	AdminHome      = "/admin"
	InstructorHome = "/instructor"
	StudentHome    = "/dashboard"
)

// Decision is the outcome of a guard check. Exactly one of Admit or a
// non-empty RedirectTo holds.
type Decision struct {
	Admit      bool
	RedirectTo string
}

func admit() Decision {
	return Decision{Admit: true}
}

func redirect(target string) Decision {
	return Decision{RedirectTo: target}
}

// Requirement describes what a protected route demands of the principal.
type Requirement struct {
	// Roles is the set of admitted roles; empty means any authenticated
	// principal.
	Roles []user.Role
}

func AnyAuthenticated() Requirement {
	return Requirement{}
}

func RequireRole(roles ...user.Role) Requirement {
	return Requirement{Roles: roles}
}

// Evaluate decides whether a principal may pass a requirement.
// The authentication check always precedes the role check: an unauthenticated
// caller learns nothing about which role a route demands.
func Evaluate(p user.Principal, req Requirement) Decision {
	if !p.Authenticated {
		return redirect(LoginPath)
	}

	if !p.Role.IsValid() {
		// Role values can originate from stale tokens; fail closed.
		return redirect(LoginPath)
	}

	if len(req.Roles) == 0 {
		return admit()
	}
	for _, role := range req.Roles {
		if p.Role == role {
			return admit()
		}
	}
	return redirect(HomePath(p.Role))
}

// HomePath maps a role to the landing page it is redirected to after a
// rejected navigation. Unrecognized roles land on the login page.
func HomePath(role user.Role) string {
	switch role {
	case user.RoleAdmin:
		return AdminHome
	case user.RoleInstructor:
		return InstructorHome
	case user.RoleStudent:
		return StudentHome
	default:
		return LoginPath
	}
}

// View identifies a dashboard variant.
type View string

const (
	ViewAdminOverview       View = "admin_overview"
	ViewInstructorDashboard View = "instructor_dashboard"
	ViewStudentDashboard    View = "student_dashboard"

	// ViewRedirectLogin covers every role outside the closed set.
	ViewRedirectLogin View = "redirect_login"
)

// ViewFor is total over every possible role value.
func ViewFor(role user.Role) View {
	switch role {
	case user.RoleAdmin:
		return ViewAdminOverview
	case user.RoleInstructor:
		return ViewInstructorDashboard
	case user.RoleStudent:
		return ViewStudentDashboard
	default:
		return ViewRedirectLogin
	}
}
