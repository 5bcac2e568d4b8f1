package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"soundvibe/compatibility-api/internal/models"
)

func TestScore_Scenarios(t *testing.T) {
	scorer := NewCompatibilityService(DefaultRoleTable())

	tests := []struct {
		name      string
		p1, p2    models.ProfileSnapshot
		wantTotal int
		want      models.ScoreBreakdown
	}{
		{
			name:      "singer and music director",
			p1:        models.ProfileSnapshot{ProfessionalRoles: []string{"singer"}},
			p2:        models.ProfileSnapshot{ProfessionalRoles: []string{"music-director"}},
			wantTotal: 15,
			want:      models.ScoreBreakdown{RoleComplementarity: 15},
		},
		{
			name:      "skill overlap ignores case",
			p1:        models.ProfileSnapshot{Skills: []string{"Guitar", "Vocals"}},
			p2:        models.ProfileSnapshot{Skills: []string{"vocals", "Piano"}},
			wantTotal: 5,
			want:      models.ScoreBreakdown{SkillOverlap: 5},
		},
		{
			name: "role score caps at 30",
			p1:   models.ProfileSnapshot{ProfessionalRoles: []string{"singer", "composer"}},
			p2: models.ProfileSnapshot{ProfessionalRoles: []string{
				"music-director", "lyricist", "arranger", "producer",
			}},
			wantTotal: 30,
			want:      models.ScoreBreakdown{RoleComplementarity: 30},
		},
		{
			name:      "location ignores case and padding",
			p1:        models.ProfileSnapshot{Location: "Chandigarh"},
			p2:        models.ProfileSnapshot{Location: "chandigarh "},
			wantTotal: 10,
			want:      models.ScoreBreakdown{LocationMatch: 10},
		},
		{
			name:      "empty profiles",
			wantTotal: 0,
		},
		{
			name: "every sub-score at its cap",
			p1: models.ProfileSnapshot{
				ProfessionalRoles:     []string{"singer"},
				Skills:                []string{"a", "b", "c", "d", "e", "f", "g"},
				SoftwareProficiencies: []string{"logic", "cubase", "ableton", "pro tools", "fl studio"},
				CollaborationStyles:   []string{"remote", "in-studio"},
				Location:              "Mumbai",
			},
			p2: models.ProfileSnapshot{
				ProfessionalRoles:     []string{"music-director", "composer", "lyricist"},
				Skills:                []string{"A", "B", "C", "D", "E", "F", "G"},
				SoftwareProficiencies: []string{"Logic", "Cubase", "Ableton", "Pro Tools", "FL Studio"},
				CollaborationStyles:   []string{"Remote", "In-Studio"},
				Location:              "MUMBAI",
			},
			wantTotal: 100,
			want: models.ScoreBreakdown{
				RoleComplementarity:     30,
				SkillOverlap:            30,
				SoftwareOverlap:         20,
				CollaborationStyleMatch: 10,
				LocationMatch:           10,
			},
		},
		{
			name: "unknown roles score nothing",
			p1:   models.ProfileSnapshot{ProfessionalRoles: []string{"kazoo-virtuoso"}},
			p2:   models.ProfileSnapshot{ProfessionalRoles: []string{"singer"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.p1, tt.p2)
			assert.Equal(t, tt.wantTotal, got.TotalScore)
			assert.Equal(t, tt.want, got.Breakdown)
		})
	}
}

func TestScore_RoleAsymmetry(t *testing.T) {
	scorer := NewCompatibilityService(DefaultRoleTable())

	director := models.ProfileSnapshot{ProfessionalRoles: []string{"video-director"}}
	singer := models.ProfileSnapshot{ProfessionalRoles: []string{"singer"}}

	// video-director lists singer; singer does not list video-director.
	assert.Equal(t, 15, scorer.Score(director, singer).Breakdown.RoleComplementarity)
	assert.Equal(t, 0, scorer.Score(singer, director).Breakdown.RoleComplementarity)
}

func TestScore_CustomRoleTable(t *testing.T) {
	table := NewRoleTable(map[string][]string{"a": {"b"}})
	scorer := &compatibilityService{roles: table}

	p := models.ProfileSnapshot{
		ProfessionalRoles:     []string{"a", "b"},
		Skills:                []string{"1", "2", "3", "4", "5", "6"},
		SoftwareProficiencies: []string{"x", "y", "z", "w"},
		CollaborationStyles:   []string{"remote"},
		Location:              "Pune",
	}

	got := scorer.Score(p, p)
	assert.Equal(t, 15, got.Breakdown.RoleComplementarity)
	assert.Equal(t, 85, got.TotalScore)
}

func TestSharedItemsScore(t *testing.T) {
	tests := []struct {
		name   string
		a, b   []string
		points int
		max    int
		want   int
	}{
		{"nil lists", nil, nil, 5, 30, 0},
		{"one side empty", []string{"vocals"}, []string{}, 5, 30, 0},
		{"no overlap", []string{"guitar"}, []string{"drums"}, 5, 30, 0},
		{"duplicates count once", []string{"Vocals", "vocals ", " VOCALS"}, []string{"vocals"}, 5, 30, 5},
		{"blank tags ignored", []string{"", "  "}, []string{"", " "}, 5, 30, 0},
		{"capped", []string{"a", "b", "c"}, []string{"a", "b", "c"}, 10, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sharedItemsScore(tt.a, tt.b, tt.points, tt.max))
			assert.Equal(t, tt.want, sharedItemsScore(tt.b, tt.a, tt.points, tt.max), "must be symmetric")
		})
	}
}

func TestLocationScore(t *testing.T) {
	assert.Equal(t, 10, locationScore(" Chandigarh ", "chandigarh"))
	assert.Equal(t, 0, locationScore("Chandigarh", "Mohali"))
	assert.Equal(t, 0, locationScore("", ""))
	assert.Equal(t, 0, locationScore("Delhi", "  "))
	assert.Equal(t, 0, locationScore("New Delhi", "Delhi"))
}

func TestScore_SubScoresWithinCaps(t *testing.T) {
	scorer := NewCompatibilityService(nil)
	roles := []string{"singer", "producer", "rapper", "composer", "lyricist", "music-director", "dj", "beatmaker"}
	tags := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}

	p1 := models.ProfileSnapshot{
		ProfessionalRoles: roles, Skills: tags, SoftwareProficiencies: tags,
		CollaborationStyles: tags, Location: "x",
	}
	p2 := p1

	got := scorer.Score(p1, p2)
	b := got.Breakdown
	assert.LessOrEqual(t, b.RoleComplementarity, 30)
	assert.LessOrEqual(t, b.SkillOverlap, 30)
	assert.LessOrEqual(t, b.SoftwareOverlap, 20)
	assert.LessOrEqual(t, b.CollaborationStyleMatch, 10)
	assert.LessOrEqual(t, b.LocationMatch, 10)
	assert.Equal(t, 100, got.TotalScore)
}

func TestDecodeCompatibilityRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"profile1": {}, "profile2": {"location": "Pune"}}`, ""},
		{"malformed", `{"profile1": `, "body must be a JSON object"},
		{"empty body", ``, "body must be a JSON object"},
		{"missing profile1", `{"profile2": {}}`, "profile1 is required"},
		{"missing profile2", `{"profile1": {}}`, "profile2 is required"},
		{"null profile", `{"profile1": null, "profile2": {}}`, "profile1 is required"},
		{"both missing", `{}`, "profile1 and profile2 are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := DecodeCompatibilityRequest([]byte(tt.body))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				assert.NotNil(t, req.Profile1)
				assert.Equal(t, "Pune", req.Profile2.Location)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
