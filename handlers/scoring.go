// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"net/url"

	"github.com/danielhkuo/hackconsole/models"
)

func criterionRequest(f Form) models.CriterionRequest {
	return models.CriterionRequest{
		HackathonID: models.Coerce(f.Value("cHack")),
		Round:       valueOr(f, "cRound", models.RoundOne),
		Name:        f.Value("cName"),
		Weight:      models.Coerce(f.Value("cWeight")),
	}
}

func scoreRequest(f Form, criterionID models.Number) models.ScoreRequest {
	return models.ScoreRequest{
		TeamID:      models.Coerce(f.Value("scTeam")),
		Round:       valueOr(f, "scRound", models.RoundOne),
		JudgeID:     models.Coerce(f.Value("scJudge")),
		CriterionID: criterionID,
		Score:       models.Coerce(f.Value("scVal")),
	}
}

// AddCriterion handles POST /admin/evaluation-criteria
func (h *Handler) AddCriterion(ctx context.Context, f Form) {
	h.send(ctx, OutCriterion, http.MethodPost, "/admin/evaluation-criteria", criterionRequest(f))
}

// Score handles POST /judge/scores
func (h *Handler) Score(ctx context.Context, f Form) {
	req := scoreRequest(f, models.Coerce(f.Value("scCriterion")))
	h.send(ctx, OutScore, http.MethodPost, "/judge/scores", req)
}

// AddCriterionAndScore creates a criterion, then scores a team against it
// using the id the backend assigned. Stops at the first failure.
func (h *Handler) AddCriterionAndScore(ctx context.Context, f Form) {
	c, ok := h.call(ctx, OutScore, http.MethodPost, "/admin/evaluation-criteria", criterionRequest(f))
	if !ok {
		return
	}

	// A response without an id forwards NaN, which encodes as null.
	criterion := models.CriterionResponse{ID: models.Number(math.NaN())}
	if err := c.Decode(&criterion); err != nil {
		slog.Debug("criterion response has no usable id", "error", err)
		criterion.ID = models.Number(math.NaN())
	}

	s, ok := h.call(ctx, OutScore, http.MethodPost, "/judge/scores", scoreRequest(f, criterion.ID))
	if !ok {
		return
	}

	h.out.Report(OutScore, map[string]json.RawMessage{
		"criterion": c.Payload,
		"score":     s.Payload,
	})
}

// LoadLeaderboard handles GET /admin/leaderboard?hackathon_id=&round_name=
func (h *Handler) LoadLeaderboard(ctx context.Context, f Form) {
	q := url.Values{}
	q.Set("hackathon_id", models.Coerce(f.Value("lHack")).String())
	q.Set("round_name", valueOr(f, "lRound", models.RoundOne))
	h.send(ctx, OutLeader, http.MethodGet, "/admin/leaderboard?"+q.Encode(), nil)
}
