package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/skillgate/internal/dto"
	"github.com/lshigami/skillgate/internal/model"
	"github.com/rs/zerolog/log"
)

// copier handles the plain fields; JSON columns and enum types are set by hand.

func toQuestionResponse(q model.Question) dto.QuestionResponse {
	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, &q); err != nil {
		log.Error().Err(err).Uint("questionID", q.ID).Msg("Error copying question to DTO")
	}
	return resp
}

func toQuestionResponses(questions []model.Question) []dto.QuestionResponse {
	out := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, toQuestionResponse(q))
	}
	return out
}

func toAnswerResponse(a model.Answer) dto.AnswerResponse {
	var resp dto.AnswerResponse
	if err := copier.Copy(&resp, &a); err != nil {
		log.Error().Err(err).Uint("answerID", a.ID).Msg("Error copying answer to DTO")
	}
	resp.Question = nil
	if a.Question.ID != 0 {
		q := toQuestionResponse(a.Question)
		resp.Question = &q
	}
	return resp
}

func toPublicResponse(a *model.Assessment) dto.PublicAssessmentResponse {
	return dto.PublicAssessmentResponse{
		ID:                  a.ID,
		Title:               a.Title,
		Description:         a.Description,
		RequiredSkills:      append([]string{}, a.RequiredSkills...),
		ThresholdPercentage: a.ThresholdPercentage,
		Status:              string(a.Status),
		ExpiresAt:           a.ExpiresAt,
	}
}

func toAssessmentResponse(a *model.Assessment) dto.AssessmentResponse {
	var resp dto.AssessmentResponse
	if err := copier.Copy(&resp, a); err != nil {
		log.Error().Err(err).Uint("assessmentID", a.ID).Msg("Error copying assessment to DTO")
	}
	resp.RequiredSkills = append([]string{}, a.RequiredSkills...)
	resp.Status = string(a.Status)
	resp.Matches = a.SkillMatches.Data()
	// Only assessments that went through a start attempt carry a report.
	if report := a.Eligibility.Data(); report.TotalSkills > 0 {
		resp.EligibilityReport = &report
	}
	return resp
}

func toResultResponse(r *model.AssessmentResult) *dto.ResultResponse {
	if r == nil {
		return nil
	}
	return &dto.ResultResponse{
		ID:               r.ID,
		AssessmentID:     r.AssessmentID,
		OverallScore:     r.OverallScore,
		Scores:           r.SkillScores.Data(),
		TotalQuestions:   r.TotalQuestions,
		TotalTimeSeconds: r.TotalTimeSeconds,
		Strengths:        append([]string{}, r.Strengths...),
		Weaknesses:       append([]string{}, r.Weaknesses...),
		Recommendations:  r.Recommendations,
		IsPassed:         r.IsPassed,
		DegradedAnswers:  r.DegradedAnswers,
		CreatedAt:        r.CreatedAt,
	}
}
