package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		loggedIn bool
		want     Decision
	}{
		{
			name: "anonymous opens login page",
			page: "login.html", loggedIn: false,
			want: Decision{Allow: true},
		},
		{
			name: "anonymous opens register page",
			page: "register.html", loggedIn: false,
			want: Decision{Allow: true},
		},
		{
			name: "logged-in bounced from login page",
			page: "login.html", loggedIn: true,
			want: Decision{RedirectTo: "dashboard.html"},
		},
		{
			name: "logged-in bounced from register page",
			page: "register.html", loggedIn: true,
			want: Decision{RedirectTo: "dashboard.html"},
		},
		{
			name: "anonymous sent to login from dashboard",
			page: "dashboard.html", loggedIn: false,
			want: Decision{RedirectTo: "login.html", ReturnTarget: "dashboard.html"},
		},
		{
			name: "anonymous sent to login from settings",
			page: "settings.html", loggedIn: false,
			want: Decision{RedirectTo: "login.html", ReturnTarget: "settings.html"},
		},
		{
			name: "logged-in opens protected page",
			page: "profile.html", loggedIn: true,
			want: Decision{Allow: true},
		},
		{
			name: "unknown page open to anonymous",
			page: "about.html", loggedIn: false,
			want: Decision{Allow: true},
		},
		{
			name: "unknown page open to logged-in",
			page: "about.html", loggedIn: true,
			want: Decision{Allow: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.page, tt.loggedIn))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, AccessPublicOnly, Classify("login.html"))
	assert.Equal(t, AccessProtected, Classify("dashboard.html"))
	assert.Equal(t, AccessOpen, Classify("index.html"))
}
