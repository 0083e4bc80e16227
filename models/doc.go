// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines session, request, and response types shared by the
console packages.

# Session Types

  - User: id, name, role plus the optional profile fields the backend returns
  - Session: bearer token and current user

# Request Types

One struct per backend endpoint, named after the operation:

  - RegisterRequest, SignupRequest, LoginRequest, VerifyOTPRequest
  - VerificationActionRequest, DocumentUploadRequest
  - CreateHackathonRequest, CreateProblemStatementRequest
  - CreateTeamRequest, SubmissionRequest
  - CriterionRequest, ScoreRequest
  - QRGenerateRequest, ScanRequest

Only the response fields needed to chain calls are typed:
LoginResponse, CriterionResponse, QRGenerateResponse. Everything else is
kept as raw JSON.

# Numbers

Numeric form fields are coerced with Coerce, which follows browser
unary-plus rules. Text that is not a number becomes NaN and is sent
anyway:

	models.Coerce("12")   // 12
	models.Coerce("")     // 0
	models.Coerce("abc")  // NaN, encodes as null

# Constants

Roles:

	RoleStudent, RoleAdmin, RoleJudge, RoleScanner

Verification status:

	VerificationPending, VerificationApproved, VerificationRejected

Rounds and QR purposes:

	RoundOne, RoundFinal
	PurposeEntry, PurposeBreakfast, PurposeLunch, PurposeDinner
*/
package models
