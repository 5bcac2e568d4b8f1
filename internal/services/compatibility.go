package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"soundvibe/compatibility-api/internal/models"
)

var ErrInvalidInput = errors.New("invalid input")

// Point values and caps for each sub-score. The caps sum to MaxTotalScore.
const (
	rolePairPoints = 15
	maxRoleScore   = 30

	skillPoints   = 5
	maxSkillScore = 30

	softwarePoints   = 5
	maxSoftwareScore = 20

	stylePoints   = 10
	maxStyleScore = 10

	locationPoints = 10

	MaxTotalScore = 100
)

// DecodeCompatibilityRequest parses a scoring request body. A body that is
// not JSON, or that lacks either profile, yields an error wrapping
// ErrInvalidInput.
func DecodeCompatibilityRequest(body []byte) (models.CompatibilityRequest, error) {
	var req models.CompatibilityRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return req, fmt.Errorf("%w: body must be a JSON object with profile1 and profile2", ErrInvalidInput)
	}

	switch {
	case req.Profile1 == nil && req.Profile2 == nil:
		return req, fmt.Errorf("%w: profile1 and profile2 are required", ErrInvalidInput)
	case req.Profile1 == nil:
		return req, fmt.Errorf("%w: profile1 is required", ErrInvalidInput)
	case req.Profile2 == nil:
		return req, fmt.Errorf("%w: profile2 is required", ErrInvalidInput)
	}

	return req, nil
}

type CompatibilityService interface {
	Score(p1, p2 models.ProfileSnapshot) models.CompatibilityResponse
}

type compatibilityService struct {
	roles *RoleTable
}

func NewCompatibilityService(roles *RoleTable) CompatibilityService {
	if roles == nil {
		roles = DefaultRoleTable()
	}
	return &compatibilityService{roles: roles}
}

// Score computes how well p2 fits as a collaborator for p1. Role scoring
// follows the direction of the role table, so Score(a, b) and Score(b, a)
// may differ; every other sub-score is symmetric.
func (s *compatibilityService) Score(p1, p2 models.ProfileSnapshot) models.CompatibilityResponse {
	breakdown := models.ScoreBreakdown{
		RoleComplementarity:     s.roleComplementarity(p1.ProfessionalRoles, p2.ProfessionalRoles),
		SkillOverlap:            sharedItemsScore(p1.Skills, p2.Skills, skillPoints, maxSkillScore),
		SoftwareOverlap:         sharedItemsScore(p1.SoftwareProficiencies, p2.SoftwareProficiencies, softwarePoints, maxSoftwareScore),
		CollaborationStyleMatch: sharedItemsScore(p1.CollaborationStyles, p2.CollaborationStyles, stylePoints, maxStyleScore),
		LocationMatch:           locationScore(p1.Location, p2.Location),
	}

	total := breakdown.RoleComplementarity +
		breakdown.SkillOverlap +
		breakdown.SoftwareOverlap +
		breakdown.CollaborationStyleMatch +
		breakdown.LocationMatch

	return models.CompatibilityResponse{
		TotalScore: min(total, MaxTotalScore),
		Breakdown:  breakdown,
	}
}

func (s *compatibilityService) roleComplementarity(roles1, roles2 []string) int {
	set1 := normalizeSet(roles1)
	set2 := normalizeSet(roles2)
	if len(set1) == 0 || len(set2) == 0 {
		return 0
	}

	score := 0
	for r1 := range set1 {
		for r2 := range set2 {
			if s.roles.Complements(r1, r2) {
				score += rolePairPoints
			}
		}
	}
	return min(score, maxRoleScore)
}

// sharedItemsScore awards points for every tag present in both lists.
func sharedItemsScore(items1, items2 []string, pointsPerItem, maxScore int) int {
	set1 := normalizeSet(items1)
	set2 := normalizeSet(items2)
	if len(set1) == 0 || len(set2) == 0 {
		return 0
	}

	shared := 0
	for item := range set1 {
		if _, ok := set2[item]; ok {
			shared++
		}
	}
	return min(shared*pointsPerItem, maxScore)
}

func locationScore(loc1, loc2 string) int {
	l1 := normalizeTag(loc1)
	l2 := normalizeTag(loc2)
	if l1 == "" || l2 == "" {
		return 0
	}
	if l1 == l2 {
		return locationPoints
	}
	return 0
}

func normalizeTag(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeSet lower-cases, trims and de-duplicates tags. Blank tags are dropped.
func normalizeSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if n := normalizeTag(item); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}
