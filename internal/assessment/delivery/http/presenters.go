package http

import (
	"mental-health-support/internal/assessment"
)

// --- Request DTOs ---

type answerDTO struct {
	Question string `json:"question"`
	Answer   string `json:"answer" binding:"required"`
}

type assessReq struct {
	UserResponses []answerDTO `json:"user_responses" binding:"required,min=1,dive"`
	UserID        string      `json:"user_id"        binding:"required"`
}

func (r assessReq) validate() error { return nil }

func (r assessReq) toInput() assessment.AssessInput {
	answers := make([]assessment.Answer, len(r.UserResponses))
	for i, a := range r.UserResponses {
		answers[i] = assessment.Answer{
			Question: a.Question,
			Answer:   a.Answer,
		}
	}
	return assessment.AssessInput{
		Answers: answers,
		UserID:  r.UserID,
	}
}

// --- Response DTOs ---

type assessmentDTO struct {
	StressLevel      string `json:"stress_level"`
	AnxietyLevel     string `json:"anxiety_level"`
	DepressionRisk   string `json:"depression_risk"`
	OverallWellbeing string `json:"overall_wellbeing"`
}

type assessResp struct {
	Assessment      assessmentDTO `json:"assessment"`
	Recommendations []string      `json:"recommendations"`
}

func newAssessResp(out assessment.AssessOutput) assessResp {
	return assessResp{
		Assessment: assessmentDTO{
			StressLevel:      string(out.Assessment.StressLevel),
			AnxietyLevel:     string(out.Assessment.AnxietyLevel),
			DepressionRisk:   string(out.Assessment.DepressionRisk),
			OverallWellbeing: string(out.Assessment.OverallWellbeing),
		},
		Recommendations: out.Recommendations,
	}
}
