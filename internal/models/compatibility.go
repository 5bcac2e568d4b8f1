package models

type CompatibilityRequest struct {
	Profile1 *ProfileSnapshot `json:"profile1"`
	Profile2 *ProfileSnapshot `json:"profile2"`
}

type ScoreBreakdown struct {
	RoleComplementarity     int `json:"roleComplementarity"`
	SkillOverlap            int `json:"skillOverlap"`
	SoftwareOverlap         int `json:"softwareOverlap"`
	CollaborationStyleMatch int `json:"collaborationStyleMatch"`
	LocationMatch           int `json:"locationMatch"`
}

type CompatibilityResponse struct {
	TotalScore int            `json:"totalScore"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
}

type MatchResult struct {
	ProfileID  string         `json:"profileId"`
	Username   string         `json:"username"`
	TotalScore int            `json:"totalScore"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
}

type MatchesResponse struct {
	ProfileID string        `json:"profileId"`
	Matches   []MatchResult `json:"matches"`
}
