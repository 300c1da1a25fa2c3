// Package pages decides where navigation lands depending on authentication
// state. The policy table mirrors the site layout: auth pages are for
// anonymous visitors, the dashboard and account pages require a login, and
// anything else is open to everyone.
package pages

// Access classifies a page.
type Access int

const (
	// AccessOpen pages are reachable regardless of authentication state.
	AccessOpen Access = iota
	// AccessPublicOnly pages (login, register) bounce authenticated users
	// to the landing page.
	AccessPublicOnly
	// AccessProtected pages require a login.
	AccessProtected
)

const (
	LoginPage      = "login.html"
	RegisterPage   = "register.html"
	DefaultLanding = "dashboard.html"
)

// policy is the declarative access table. Pages not listed are open.
var policy = map[string]Access{
	LoginPage:       AccessPublicOnly,
	RegisterPage:    AccessPublicOnly,
	DefaultLanding:  AccessProtected,
	"profile.html":  AccessProtected,
	"settings.html": AccessProtected,
}

// Classify returns the access class of a page.
func Classify(page string) Access {
	return policy[page]
}

// Decision is the outcome of a navigation attempt.
type Decision struct {
	// Allow reports whether the requested page may be shown as-is.
	Allow bool
	// RedirectTo names the page to show instead when Allow is false.
	RedirectTo string
	// ReturnTarget carries the originally requested page when the visitor
	// is sent to the login page, so a later login can come back to it.
	ReturnTarget string
}

// Decide applies the policy table to a navigation attempt.
func Decide(page string, loggedIn bool) Decision {
	switch Classify(page) {
	case AccessPublicOnly:
		if loggedIn {
			return Decision{RedirectTo: DefaultLanding}
		}
	case AccessProtected:
		if !loggedIn {
			return Decision{RedirectTo: LoginPage, ReturnTarget: page}
		}
	}
	return Decision{Allow: true}
}
