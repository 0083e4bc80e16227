// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

// Output ids
const (
	OutHealth    = "healthOut"
	OutRegister  = "registerOut"
	OutVerify    = "verifyOut"
	OutSignup    = "signupOut"
	OutLogin     = "loginOut"
	OutMe        = "meOut"
	OutPanel     = "panelOut"
	OutHackathon = "hackOut"
	OutPS        = "psOut"
	OutTeam      = "teamOut"
	OutSubmit    = "subOut"
	OutLock      = "lockOut"
	OutCriterion = "criterionOut"
	OutScore     = "scoreOut"
	OutLeader    = "leaderOut"
	OutQR        = "qrOut"
	OutScan      = "scanOut"
	OutAnalytics = "analyticsOut"
	OutDocs      = "docsOut"
)
