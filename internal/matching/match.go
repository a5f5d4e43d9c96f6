// Package matching implements the skill scoring engine used by matchmaking.
package matching

import "sort"

// Score weights.
const (
	ExactPrimaryPoints   = 100
	ExactSecondaryPoints = 50
	FuzzyPoints          = 25
	GoalBonusPoints      = 30
)

// fuzzySkillMap relates skills that substitute for each other. A fuzzy match
// only considers the candidate's primary skills.
var fuzzySkillMap = map[string][]string{
	"Full Stack":         {"Frontend", "Backend"},
	"Frontend":           {"Full Stack"},
	"Backend":            {"Full Stack"},
	"ML/AI":              {"Data Science"},
	"Data Science":       {"ML/AI"},
	"UI/UX Design":       {"Frontend", "3D Design"},
	"Mobile Dev":         {"Frontend"},
	"DevOps":             {"Cloud", "Backend"},
	"Cloud":              {"DevOps"},
	"Game Dev":           {"3D Design", "AR/VR"},
	"AR/VR":              {"Game Dev", "3D Design"},
	"3D Design":          {"Game Dev", "AR/VR", "UI/UX Design"},
	"Product Management": {"Business/Strategy"},
	"Business/Strategy":  {"Product Management"},
	"Marketing":          {"Content Writing"},
	"Content Writing":    {"Marketing"},
}

// MatchScore is the result of scoring one team against one user.
type MatchScore struct {
	TeamID                string   `json:"teamId"`
	Score                 int      `json:"score"`
	ExactPrimaryMatches   []string `json:"exactPrimaryMatches"`
	ExactSecondaryMatches []string `json:"exactSecondaryMatches"`
	FuzzyMatches          []string `json:"fuzzyMatches"`
}

// TeamSkills is the minimal team view the scorer needs.
type TeamSkills struct {
	TeamID       string
	SkillsNeeded []string
}

// CalculateMatchScore scores a user's skills against a team's needed skills.
// Each needed skill is counted once: an exact primary match scores 100, an
// exact secondary match 50, a fuzzy match through a related primary skill 25.
func CalculateMatchScore(userPrimary, userSecondary, teamNeeded []string) MatchScore {
	result := MatchScore{
		ExactPrimaryMatches:   []string{},
		ExactSecondaryMatches: []string{},
		FuzzyMatches:          []string{},
	}

	for _, needed := range teamNeeded {
		if contains(userPrimary, needed) {
			result.Score += ExactPrimaryPoints
			result.ExactPrimaryMatches = append(result.ExactPrimaryMatches, needed)
			continue
		}

		if contains(userSecondary, needed) {
			result.Score += ExactSecondaryPoints
			result.ExactSecondaryMatches = append(result.ExactSecondaryMatches, needed)
			continue
		}

		if hasAny(userPrimary, fuzzySkillMap[needed]) {
			result.Score += FuzzyPoints
			result.FuzzyMatches = append(result.FuzzyMatches, needed)
		}
	}

	return result
}

// TopMatches scores every team and returns the top n with a positive score,
// best first. Ties keep the input order.
func TopMatches(userPrimary, userSecondary []string, teams []TeamSkills, n int) []MatchScore {
	scores := make([]MatchScore, 0, len(teams))
	for _, team := range teams {
		s := CalculateMatchScore(userPrimary, userSecondary, team.SkillsNeeded)
		if s.Score == 0 {
			continue
		}
		s.TeamID = team.TeamID
		scores = append(scores, s)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	if len(scores) > n {
		scores = scores[:n]
	}
	return scores
}

// SkillCoverage returns the percentage of needed skills covered by at least
// one member, rounded to the nearest integer. An empty needed list is 100.
func SkillCoverage(teamNeeded []string, memberSkills [][]string) int {
	if len(teamNeeded) == 0 {
		return 100
	}

	covered := 0
	for _, needed := range teamNeeded {
		if anyMemberHas(memberSkills, needed) {
			covered++
		}
	}

	return int(float64(covered)/float64(len(teamNeeded))*100 + 0.5)
}

// MissingSkills returns the needed skills no member covers, in needed order.
func MissingSkills(teamNeeded []string, memberSkills [][]string) []string {
	missing := []string{}
	for _, needed := range teamNeeded {
		if !anyMemberHas(memberSkills, needed) {
			missing = append(missing, needed)
		}
	}
	return missing
}

// CandidateScore ranks a free agent for a recruiting team: 100 per needed
// skill among the candidate's primary skills, 50 per needed skill among the
// secondary skills, plus a flat 30 when goals align. No fuzzy matching.
func CandidateScore(candidatePrimary, candidateSecondary []string, teamNeeded []string, goalsAlign bool) int {
	score := 0
	for _, needed := range teamNeeded {
		if contains(candidatePrimary, needed) {
			score += ExactPrimaryPoints
			continue
		}
		if contains(candidateSecondary, needed) {
			score += ExactSecondaryPoints
		}
	}
	if goalsAlign {
		score += GoalBonusPoints
	}
	return score
}

func contains(skills []string, s string) bool {
	for _, skill := range skills {
		if skill == s {
			return true
		}
	}
	return false
}

func hasAny(skills, candidates []string) bool {
	for _, c := range candidates {
		if contains(skills, c) {
			return true
		}
	}
	return false
}

func anyMemberHas(memberSkills [][]string, skill string) bool {
	for _, skills := range memberSkills {
		if contains(skills, skill) {
			return true
		}
	}
	return false
}
