// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package panel

import (
	"fmt"

	"github.com/danielhkuo/hackconsole/models"
)

// Region names
const (
	RegionAuth    = "auth"
	RegionAdmin   = "admin"
	RegionGeneral = "general"
)

const StatusLoggedOut = "Not logged in"

// View is the visibility of each region plus the status line.
type View struct {
	Visible map[string]bool `json:"visible"`
	Status  string          `json:"status"`
}

// Display is whatever shows the regions: a terminal, a board served over
// HTTP, a test double.
type Display interface {
	SetVisible(region string, visible bool)
	SetStatus(text string)
}

// Render computes the view for a session. The auth region shows only when
// logged out; admin and general split logged-in users by role.
func Render(sess models.Session) View {
	loggedIn := sess.User != nil
	admin := loggedIn && sess.User.Role == models.RoleAdmin

	status := StatusLoggedOut
	if loggedIn {
		status = fmt.Sprintf("Logged in as %s (%s)", sess.User.Name, sess.User.Role)
	}

	return View{
		Visible: map[string]bool{
			RegionAuth:    !loggedIn,
			RegionAdmin:   admin,
			RegionGeneral: loggedIn && !admin,
		},
		Status: status,
	}
}

// Apply pushes v to d in a fixed region order.
func Apply(v View, d Display) {
	for _, region := range []string{RegionAuth, RegionAdmin, RegionGeneral} {
		d.SetVisible(region, v.Visible[region])
	}
	d.SetStatus(v.Status)
}

// Refresh renders sess and applies it to d.
func Refresh(sess models.Session, d Display) View {
	v := Render(sess)
	Apply(v, d)
	return v
}
