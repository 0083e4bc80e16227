// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"

	"github.com/danielhkuo/hackconsole/models"
)

// CheckHealth handles GET /health
func (h *Handler) CheckHealth(ctx context.Context, f Form) {
	h.send(ctx, OutHealth, http.MethodGet, "/health", nil)
}

// RegisterUser handles POST /auth/register, the OTP-based signup flow
func (h *Handler) RegisterUser(ctx context.Context, f Form) {
	req := models.RegisterRequest{
		Name:  f.Value("uName"),
		Email: f.Value("uEmail"),
		Phone: f.Value("uPhone"),
		Role:  valueOr(f, "uRole", models.RoleStudent),
	}
	h.send(ctx, OutRegister, http.MethodPost, "/auth/register", req)
}

// VerifyOTP handles POST /auth/verify-otp
func (h *Handler) VerifyOTP(ctx context.Context, f Form) {
	req := models.VerifyOTPRequest{
		UserID: models.Coerce(f.Value("otpUserId")),
		OTP:    valueOr(f, "otpCode", models.DefaultOTP),
	}
	h.send(ctx, OutVerify, http.MethodPost, "/auth/verify-otp", req)
}

// Signup handles POST /auth/signup, the password-based flow
func (h *Handler) Signup(ctx context.Context, f Form) {
	req := models.SignupRequest{
		Name:     f.Value("uName"),
		Email:    f.Value("uEmail"),
		Phone:    f.Value("uPhone"),
		Password: f.Value("uPassword"),
		Role:     valueOr(f, "uRole", models.RoleStudent),
	}
	h.send(ctx, OutSignup, http.MethodPost, "/auth/signup", req)
}

// Login handles POST /auth/login
// On success the returned token and user become the session.
func (h *Handler) Login(ctx context.Context, f Form) {
	req := models.LoginRequest{
		Email:    f.Value("loginEmail"),
		Password: f.Value("loginPassword"),
	}

	res, ok := h.call(ctx, OutLogin, http.MethodPost, "/auth/login", req)
	if !ok {
		return
	}

	var login models.LoginResponse
	if err := res.Decode(&login); err != nil {
		h.fail(OutLogin, err)
		return
	}
	if err := h.store.SetSession(ctx, login.AccessToken, login.User); err != nil {
		h.fail(OutLogin, err)
		return
	}

	h.out.Report(OutLogin, res.Payload)
	h.RefreshPanel()
}

// Logout clears the session locally. The backend is not told.
func (h *Handler) Logout(ctx context.Context, f Form) {
	if err := h.store.Clear(ctx); err != nil {
		h.fail(OutLogin, err)
		return
	}

	h.out.Report(OutLogin, map[string]bool{"logged_out": true})
	h.RefreshPanel()
}

// LoadMe handles GET /auth/me
func (h *Handler) LoadMe(ctx context.Context, f Form) {
	h.send(ctx, OutMe, http.MethodGet, "/auth/me", nil)
}

// ShowPanels reports the current panel view without calling the backend.
func (h *Handler) ShowPanels(ctx context.Context, f Form) {
	h.out.Report(OutPanel, h.RefreshPanel())
}
