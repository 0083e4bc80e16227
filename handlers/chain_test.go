// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"testing"
)

func TestGenerateAndScan(t *testing.T) {
	fx := setup(t)
	fx.backend.Handle("POST /qr/generate", http.StatusOK, `{"token":"qr-123","purpose":"LUNCH"}`)
	fx.backend.Handle("POST /scan", http.StatusOK, `{"valid":true}`)

	fx.handler.GenerateAndScan(context.Background(), Fields{"qUser": "5", "qHack": "1", "qScanner": "6"})

	reqs := fx.backend.Requests()
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(reqs))
	}
	if reqs[0].URI != "/qr/generate" || reqs[1].URI != "/scan" {
		t.Errorf("unexpected call order %s, %s", reqs[0].URI, reqs[1].URI)
	}
	assertJSONEqual(t, `{"token":"qr-123","scanner_id":6}`, string(reqs[1].Body))
	assertJSONEqual(t, `{"qr":{"token":"qr-123","purpose":"LUNCH"},"scan":{"valid":true}}`, fx.output(t, OutQR))
}

func TestGenerateAndScan_GenerateFails(t *testing.T) {
	fx := setup(t)
	fx.backend.Handle("POST /qr/generate", http.StatusForbidden, `{"detail":"Not allowed"}`)

	fx.handler.GenerateAndScan(context.Background(), Fields{"qUser": "5", "qHack": "1", "qScanner": "6"})

	if n := len(fx.backend.Requests()); n != 1 {
		t.Errorf("scan should not be attempted, got %d requests", n)
	}
	assertJSONEqual(t, `{"detail":"Not allowed"}`, fx.output(t, OutQR))
}

func TestGenerateAndScan_MissingToken(t *testing.T) {
	fx := setup(t)
	fx.backend.Handle("POST /qr/generate", http.StatusOK, `{}`)
	fx.backend.Handle("POST /scan", http.StatusBadRequest, `{"detail":"Invalid token"}`)

	fx.handler.GenerateAndScan(context.Background(), Fields{"qScanner": "6"})

	assertJSONEqual(t, `{"token":"","scanner_id":6}`, string(fx.backend.Last(t).Body))
	assertJSONEqual(t, `{"detail":"Invalid token"}`, fx.output(t, OutQR))
}

func TestAddCriterionAndScore(t *testing.T) {
	fx := setup(t)
	fx.backend.Handle("POST /admin/evaluation-criteria", http.StatusOK, `{"id":11,"name":"Innovation"}`)
	fx.backend.Handle("POST /judge/scores", http.StatusOK, `{"id":3,"score":8}`)

	fx.handler.AddCriterionAndScore(context.Background(), Fields{
		"cHack": "1", "cName": "Innovation", "cWeight": "1",
		"scTeam": "4", "scJudge": "9", "scVal": "8",
	})

	assertJSONEqual(t,
		`{"team_id":4,"round":"ROUND1","judge_id":9,"criterion_id":11,"score":8}`,
		string(fx.backend.Last(t).Body))
	assertJSONEqual(t,
		`{"criterion":{"id":11,"name":"Innovation"},"score":{"id":3,"score":8}}`,
		fx.output(t, OutScore))
	if _, ok := fx.board.Output(OutCriterion); ok {
		t.Error("chained action should only report to scoreOut")
	}
}

func TestAddCriterionAndScore_NoID(t *testing.T) {
	fx := setup(t)
	fx.backend.Handle("POST /admin/evaluation-criteria", http.StatusOK, `{"name":"Innovation"}`)
	fx.backend.Handle("POST /judge/scores", http.StatusUnprocessableEntity, `{"detail":"criterion_id required"}`)

	fx.handler.AddCriterionAndScore(context.Background(), Fields{"scTeam": "4"})

	body := fx.backend.Last(t).JSON(t)
	if v, ok := body["criterion_id"]; !ok || v != nil {
		t.Errorf("expected criterion_id null, got %v", v)
	}
	assertJSONEqual(t, `{"detail":"criterion_id required"}`, fx.output(t, OutScore))
}

func TestAddCriterionAndScore_CriterionFails(t *testing.T) {
	fx := setup(t)

	fx.handler.AddCriterionAndScore(context.Background(), Fields{})

	if n := len(fx.backend.Requests()); n != 1 {
		t.Errorf("score should not be attempted, got %d requests", n)
	}
	assertJSONEqual(t, `{"detail":"Not Found"}`, fx.output(t, OutScore))
}

func TestChainedFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		firstRes string
		second   string
		run      func(h *Handler, ctx context.Context, f Form)
		field    string
	}{
		{"criterion list payload", "POST /admin/evaluation-criteria", `[1,2]`, "POST /judge/scores", (*Handler).AddCriterionAndScore, "criterion_id"},
		{"criterion text id", "POST /admin/evaluation-criteria", `{"id":"eleven"}`, "POST /judge/scores", (*Handler).AddCriterionAndScore, "criterion_id"},
		{"qr numeric token", "POST /qr/generate", `{"token":5}`, "POST /scan", (*Handler).GenerateAndScan, "token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := setup(t)
			fx.backend.Handle(tt.first, http.StatusOK, tt.firstRes)
			fx.backend.Handle(tt.second, http.StatusOK, `{}`)

			tt.run(fx.handler, context.Background(), Fields{})

			body := fx.backend.Last(t).JSON(t)
			want := map[string]interface{}{"criterion_id": nil, "token": ""}[tt.field]
			if got, ok := body[tt.field]; !ok || got != want {
				t.Errorf("expected %s = %v, got %v", tt.field, want, got)
			}
		})
	}
}
