package services

// complementaryRoles lists, for each professional role, the roles it works
// well alongside. Lookups are one-directional: a pair (a, b) counts when b
// appears under a, whether or not a appears under b.
var complementaryRoles = map[string][]string{
	"singer":             {"music-director", "composer", "lyricist", "producer", "guitarist", "keyboardist"},
	"rapper":             {"producer", "beatmaker", "dj", "lyricist", "mixing-engineer"},
	"music-director":     {"singer", "arranger", "session-musician", "composer"},
	"composer":           {"lyricist", "singer", "arranger", "music-director"},
	"lyricist":           {"composer", "singer", "rapper"},
	"songwriter":         {"producer", "singer", "composer"},
	"producer":           {"singer", "rapper", "mixing-engineer", "mastering-engineer", "songwriter"},
	"beatmaker":          {"rapper", "singer"},
	"arranger":           {"composer", "music-director", "session-musician"},
	"mixing-engineer":    {"producer", "mastering-engineer"},
	"mastering-engineer": {"mixing-engineer", "producer"},
	"sound-engineer":     {"producer", "singer", "music-director"},
	"guitarist":          {"drummer", "bassist", "singer", "keyboardist"},
	"bassist":            {"drummer", "guitarist", "keyboardist"},
	"drummer":            {"bassist", "guitarist", "percussionist"},
	"keyboardist":        {"guitarist", "bassist", "singer"},
	"percussionist":      {"drummer"},
	"session-musician":   {"producer", "music-director", "arranger"},
	"dj":                 {"producer", "rapper"},
	"video-director":     {"singer", "rapper", "producer"},
}

// RoleTable answers whether one role complements another.
type RoleTable struct {
	complements map[string]map[string]struct{}
}

// NewRoleTable builds an immutable lookup from the given adjacency lists.
// Keys and values are normalised the same way profile tags are.
func NewRoleTable(adjacency map[string][]string) *RoleTable {
	complements := make(map[string]map[string]struct{}, len(adjacency))
	for role, partners := range adjacency {
		key := normalizeTag(role)
		if key == "" {
			continue
		}
		set, ok := complements[key]
		if !ok {
			set = make(map[string]struct{}, len(partners))
			complements[key] = set
		}
		for _, p := range partners {
			if n := normalizeTag(p); n != "" {
				set[n] = struct{}{}
			}
		}
	}
	return &RoleTable{complements: complements}
}

// DefaultRoleTable returns the table built from the built-in role pairs.
func DefaultRoleTable() *RoleTable {
	return NewRoleTable(complementaryRoles)
}

// Complements reports whether partner is listed as complementary to role.
// Unknown roles complement nothing.
func (t *RoleTable) Complements(role, partner string) bool {
	set, ok := t.complements[role]
	if !ok {
		return false
	}
	_, ok = set[partner]
	return ok
}
