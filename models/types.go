package models

import (
	"encoding/json"
	"time"
)

// User roles
const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
	RoleJudge   = "JUDGE"
	RoleScanner = "SCANNER"
)

// Verification status values
const (
	VerificationPending  = "PENDING"
	VerificationApproved = "APPROVED"
	VerificationRejected = "REJECTED"
)

// Submission rounds
const (
	RoundOne   = "ROUND1"
	RoundFinal = "FINAL"
)

// QR purposes
const (
	PurposeEntry     = "ENTRY"
	PurposeBreakfast = "BREAKFAST"
	PurposeLunch     = "LUNCH"
	PurposeDinner    = "DINNER"
)

// DefaultOTP is the code the backend accepts in its demo OTP flow.
const DefaultOTP = "123456"

// Session types

// User is the part of the backend's user record the console reads. The
// full record is persisted as received, so unmodelled fields survive.
type User struct {
	ID                 Number `json:"id"`
	Name               string `json:"name"`
	Role               string `json:"role"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	VerificationStatus string `json:"verification_status"`
	OTPVerified        bool   `json:"otp_verified"`
}

// Session is the client's view of who is logged in.
// User is expected to be non-nil exactly when Token is non-empty.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

func (s Session) LoggedIn() bool {
	return s.User != nil
}

// Auth request types

type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is kept raw so it can be stored byte for byte.
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	User        json.RawMessage `json:"user"`
}

type VerifyOTPRequest struct {
	UserID Number `json:"user_id"`
	OTP    string `json:"otp"`
}

type VerificationActionRequest struct {
	Status string `json:"status"`
}

type DocumentUploadRequest struct {
	CollegeIDPath string `json:"college_id_path"`
	AadhaarMasked string `json:"aadhaar_masked"`
	SelfiePath    string `json:"selfie_path"`
}

// Hackathon request types

type CreateHackathonRequest struct {
	Title                string `json:"title"`
	Description          string `json:"description"`
	RegistrationDeadline string `json:"registration_deadline"`
	Round1Deadline       string `json:"round1_deadline"`
	FinalDeadline        string `json:"final_deadline"`
}

type CreateProblemStatementRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CreateTeamRequest struct {
	HackathonID        Number   `json:"hackathon_id"`
	Name               string   `json:"name"`
	CaptainID          Number   `json:"captain_id"`
	MemberIDs          []Number `json:"member_ids"`
	ProblemStatementID Number   `json:"problem_statement_id"`
}

type SubmissionRequest struct {
	TeamID        Number `json:"team_id"`
	Round         string `json:"round"`
	PPTLink       string `json:"ppt_link"`
	GithubLink    string `json:"github_link,omitempty"`
	DemoVideoLink string `json:"demo_video_link,omitempty"`
}

// Scoring request types

type CriterionRequest struct {
	HackathonID Number `json:"hackathon_id"`
	Round       string `json:"round"`
	Name        string `json:"name"`
	Weight      Number `json:"weight"`
}

type ScoreRequest struct {
	TeamID      Number `json:"team_id"`
	Round       string `json:"round"`
	JudgeID     Number `json:"judge_id"`
	CriterionID Number `json:"criterion_id"`
	Score       Number `json:"score"`
}

// Only the id of a created criterion is needed to chain a score.
type CriterionResponse struct {
	ID Number `json:"id"`
}

// QR request types

type QRGenerateRequest struct {
	UserID      Number `json:"user_id"`
	HackathonID Number `json:"hackathon_id"`
	Purpose     string `json:"purpose"`
	ValidFrom   string `json:"valid_from"`
	ValidTo     string `json:"valid_to"`
}

type QRGenerateResponse struct {
	Token string `json:"token"`
}

type ScanRequest struct {
	Token     string `json:"token"`
	ScannerID Number `json:"scanner_id"`
}

// ISOTime formats t the way browsers serialise dates: UTC with
// millisecond precision and a literal Z.
func ISOTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
