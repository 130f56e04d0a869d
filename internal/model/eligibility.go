package model

// EligibilityReport is the derived outcome of matching required skills
// against a resume. It is only ever replaced as a whole.
type EligibilityReport struct {
	Eligible      bool     `json:"eligible"`
	MatchPercent  float64  `json:"match_percent"`
	FoundSkills   int      `json:"found_skills"`
	TotalSkills   int      `json:"total_skills"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}
