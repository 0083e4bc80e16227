// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package panel

import (
	"testing"

	"github.com/danielhkuo/hackconsole/models"
)

type recordingDisplay struct {
	visible map[string]bool
	status  string
	order   []string
}

func (d *recordingDisplay) SetVisible(region string, visible bool) {
	if d.visible == nil {
		d.visible = map[string]bool{}
	}
	d.visible[region] = visible
	d.order = append(d.order, region)
}

func (d *recordingDisplay) SetStatus(text string) {
	d.status = text
}

func TestRender(t *testing.T) {
	tests := []struct {
		name        string
		session     models.Session
		wantAuth    bool
		wantAdmin   bool
		wantGeneral bool
		wantStatus  string
	}{
		{
			name:       "logged out",
			session:    models.Session{},
			wantAuth:   true,
			wantStatus: "Not logged in",
		},
		{
			name:       "admin",
			session:    models.Session{Token: "t1", User: &models.User{ID: 1, Name: "A", Role: models.RoleAdmin}},
			wantAdmin:  true,
			wantStatus: "Logged in as A (ADMIN)",
		},
		{
			name:        "student",
			session:     models.Session{Token: "t2", User: &models.User{ID: 2, Name: "Alice", Role: models.RoleStudent}},
			wantGeneral: true,
			wantStatus:  "Logged in as Alice (STUDENT)",
		},
		{
			name:        "judge",
			session:     models.Session{Token: "t3", User: &models.User{ID: 3, Name: "J", Role: models.RoleJudge}},
			wantGeneral: true,
			wantStatus:  "Logged in as J (JUDGE)",
		},
		{
			name:        "lowercase admin is not admin",
			session:     models.Session{Token: "t4", User: &models.User{ID: 4, Name: "B", Role: "admin"}},
			wantGeneral: true,
			wantStatus:  "Logged in as B (admin)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Render(tt.session)

			if v.Visible[RegionAuth] != tt.wantAuth {
				t.Errorf("auth visible = %v, want %v", v.Visible[RegionAuth], tt.wantAuth)
			}
			if v.Visible[RegionAdmin] != tt.wantAdmin {
				t.Errorf("admin visible = %v, want %v", v.Visible[RegionAdmin], tt.wantAdmin)
			}
			if v.Visible[RegionGeneral] != tt.wantGeneral {
				t.Errorf("general visible = %v, want %v", v.Visible[RegionGeneral], tt.wantGeneral)
			}
			if v.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", v.Status, tt.wantStatus)
			}
		})
	}
}

func TestRefresh_AppliesToDisplay(t *testing.T) {
	d := &recordingDisplay{}
	sess := models.Session{Token: "t1", User: &models.User{ID: 1, Name: "A", Role: models.RoleAdmin}}

	Refresh(sess, d)

	if !d.visible[RegionAdmin] || d.visible[RegionGeneral] || d.visible[RegionAuth] {
		t.Errorf("unexpected visibility %v", d.visible)
	}
	if d.status != "Logged in as A (ADMIN)" {
		t.Errorf("unexpected status %q", d.status)
	}
	if len(d.order) != 3 || d.order[0] != RegionAuth || d.order[2] != RegionGeneral {
		t.Errorf("regions applied in unexpected order %v", d.order)
	}
}
