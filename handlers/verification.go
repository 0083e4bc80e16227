// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/danielhkuo/hackconsole/models"
)

// ApproveStudent handles PATCH /admin/verification/{userId}
func (h *Handler) ApproveStudent(ctx context.Context, f Form) {
	userID := models.Coerce(f.Value("otpUserId"))
	req := models.VerificationActionRequest{
		Status: valueOr(f, "vStatus", models.VerificationApproved),
	}
	h.send(ctx, OutVerify, http.MethodPatch, "/admin/verification/"+userID.String(), req)
}

// UploadDocuments handles POST /verification/upload-documents?user_id=
func (h *Handler) UploadDocuments(ctx context.Context, f Form) {
	path := "/verification/upload-documents?" + userQuery(f)
	req := models.DocumentUploadRequest{
		CollegeIDPath: f.Value("docCollegeId"),
		AadhaarMasked: f.Value("docAadhaar"),
		SelfiePath:    f.Value("docSelfie"),
	}
	h.send(ctx, OutDocs, http.MethodPost, path, req)
}

// FaceMatch handles POST /verification/face-match?user_id=
func (h *Handler) FaceMatch(ctx context.Context, f Form) {
	h.send(ctx, OutDocs, http.MethodPost, "/verification/face-match?"+userQuery(f), nil)
}

func userQuery(f Form) string {
	q := url.Values{}
	q.Set("user_id", models.Coerce(f.Value("docUserId")).String())
	return q.Encode()
}
