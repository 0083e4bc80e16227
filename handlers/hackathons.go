// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/danielhkuo/hackconsole/models"
)

// Deadline offsets in days from the time a hackathon is created
const (
	registrationDays = 2
	round1Days       = 3
	finalDays        = 4
)

// CreateHackathon handles POST /admin/hackathons
func (h *Handler) CreateHackathon(ctx context.Context, f Form) {
	req := models.CreateHackathonRequest{
		Title:                f.Value("hTitle"),
		Description:          f.Value("hDesc"),
		RegistrationDeadline: h.deadline(registrationDays),
		Round1Deadline:       h.deadline(round1Days),
		FinalDeadline:        h.deadline(finalDays),
	}
	h.send(ctx, OutHackathon, http.MethodPost, "/admin/hackathons", req)
}

// CreateProblemStatement handles POST /admin/hackathons/{id}/problem-statements
func (h *Handler) CreateProblemStatement(ctx context.Context, f Form) {
	hackathonID := models.Coerce(f.Value("psHackId"))
	req := models.CreateProblemStatementRequest{
		Title:       f.Value("psTitle"),
		Description: f.Value("psDesc"),
	}
	path := "/admin/hackathons/" + hackathonID.String() + "/problem-statements"
	h.send(ctx, OutPS, http.MethodPost, path, req)
}

// CreateTeam handles POST /teams
// tMembers is an optional comma separated list of user ids.
func (h *Handler) CreateTeam(ctx context.Context, f Form) {
	req := models.CreateTeamRequest{
		HackathonID:        models.Coerce(f.Value("tHackId")),
		Name:               f.Value("tName"),
		CaptainID:          models.Coerce(f.Value("tCaptain")),
		MemberIDs:          models.CoerceList(f.Value("tMembers")),
		ProblemStatementID: models.Coerce(f.Value("tPS")),
	}
	h.send(ctx, OutTeam, http.MethodPost, "/teams", req)
}

// SubmitRound handles POST /submissions
func (h *Handler) SubmitRound(ctx context.Context, f Form) {
	req := models.SubmissionRequest{
		TeamID:        models.Coerce(f.Value("sTeam")),
		Round:         valueOr(f, "sRound", models.RoundOne),
		PPTLink:       f.Value("sPpt"),
		GithubLink:    f.Value("sGithub"),
		DemoVideoLink: f.Value("sDemo"),
	}
	h.send(ctx, OutSubmit, http.MethodPost, "/submissions", req)
}

// LockSubmissions handles POST /admin/submissions/lock?round_name=
func (h *Handler) LockSubmissions(ctx context.Context, f Form) {
	q := url.Values{}
	q.Set("round_name", valueOr(f, "lockRound", models.RoundOne))
	h.send(ctx, OutLock, http.MethodPost, "/admin/submissions/lock?"+q.Encode(), nil)
}
