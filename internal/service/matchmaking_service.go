package service

import (
	"context"
	"sort"
	"time"

	"collabase/internal/cache"
	apperrors "collabase/internal/errors"
	"collabase/internal/matching"
	"collabase/internal/models"
	"collabase/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultTopMatches is the number of team matches returned when the caller
// does not ask for a specific count.
const DefaultTopMatches = 3

// MatchmakingService handles the team feed and the scoring endpoints. The
// feed is a redis-cached snapshot; staleness is acceptable because every
// follow-up action re-validates inside a transaction.
type MatchmakingService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
	cache    cache.Cache
	feedTTL  time.Duration
}

// NewMatchmakingService creates a new MatchmakingService.
func NewMatchmakingService(teamRepo repository.TeamRepository, userRepo repository.UserRepository, c cache.Cache, feedTTL time.Duration) *MatchmakingService {
	return &MatchmakingService{
		teamRepo: teamRepo,
		userRepo: userRepo,
		cache:    c,
		feedTTL:  feedTTL,
	}
}

// TeamFeed returns all OPEN teams with their member skill summaries.
func (s *MatchmakingService) TeamFeed(ctx context.Context) (*models.TeamListResponse, error) {
	var cached models.TeamListResponse
	if found, err := s.cache.Get(ctx, cache.TeamFeedCacheKey(), &cached); err == nil && found {
		return &cached, nil
	}

	teams, err := s.teamRepo.FindOpenTeams(ctx)
	if err != nil {
		return nil, err
	}

	// One lookup for every member of every open team.
	var memberIDs []primitive.ObjectID
	for i := range teams {
		memberIDs = append(memberIDs, teams[i].Members...)
	}

	members, err := s.userRepo.FindByIDs(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.UserSummary, len(members))
	for i := range members {
		byID[members[i].ID] = members[i].Summary()
	}

	items := make([]models.TeamFeedItem, 0, len(teams))
	for i := range teams {
		summaries := make([]models.UserSummary, 0, len(teams[i].Members))
		for _, id := range teams[i].Members {
			if summary, ok := byID[id]; ok {
				summaries = append(summaries, summary)
			}
		}
		items = append(items, models.TeamFeedItem{
			Team:         teams[i],
			MemberCount:  len(teams[i].Members),
			MemberSkills: summaries,
		})
	}

	response := &models.TeamListResponse{Items: items}
	_ = s.cache.Set(ctx, cache.TeamFeedCacheKey(), response, s.feedTTL)

	return response, nil
}

// TopMatches scores the feed against the signed-in join-intent user and
// returns the best topN teams. Zero scores are dropped; ties keep feed order.
func (s *MatchmakingService) TopMatches(ctx context.Context, userID primitive.ObjectID, topN int) (*models.MatchListResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.ProfileCompleted {
		return nil, apperrors.ErrProfileIncomplete
	}
	if user.Intent != models.IntentJoin {
		return nil, apperrors.ErrWrongIntent
	}

	feed, err := s.TeamFeed(ctx)
	if err != nil {
		return nil, err
	}

	teamSkills := make([]matching.TeamSkills, 0, len(feed.Items))
	byID := make(map[string]models.Team, len(feed.Items))
	for i := range feed.Items {
		team := feed.Items[i].Team
		teamSkills = append(teamSkills, matching.TeamSkills{
			TeamID:       team.ID.Hex(),
			SkillsNeeded: team.SkillsNeeded,
		})
		byID[team.ID.Hex()] = team
	}

	if topN <= 0 {
		topN = DefaultTopMatches
	}

	scores := matching.TopMatches(user.PrimarySkills, user.SecondarySkills, teamSkills, topN)

	items := make([]models.TeamMatch, 0, len(scores))
	for _, score := range scores {
		items = append(items, models.TeamMatch{
			Team:                  byID[score.TeamID],
			Score:                 score.Score,
			ExactPrimaryMatches:   score.ExactPrimaryMatches,
			ExactSecondaryMatches: score.ExactSecondaryMatches,
			FuzzyMatches:          score.FuzzyMatches,
		})
	}

	return &models.MatchListResponse{Items: items}, nil
}

// Candidates ranks the free agents for the acting creator's team. Free
// agents are join-intent, profile-complete users without a team.
func (s *MatchmakingService) Candidates(ctx context.Context, actorID primitive.ObjectID) (*models.CandidateListResponse, error) {
	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.CurrentTeam == nil {
		return nil, apperrors.ErrNotTeamCreator
	}

	team, err := s.teamRepo.FindByID(ctx, *actor.CurrentTeam)
	if err != nil {
		return nil, err
	}
	if team.CreatorID != actorID {
		return nil, apperrors.ErrNotTeamCreator
	}

	agents, err := s.userRepo.FindFreeAgents(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.CandidateMatch, 0, len(agents))
	for i := range agents {
		score := matching.CandidateScore(
			agents[i].PrimarySkills,
			agents[i].SecondarySkills,
			team.SkillsNeeded,
			agents[i].Goal == team.Goal,
		)
		items = append(items, models.CandidateMatch{
			User:  agents[i].Summary(),
			Score: score,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})

	return &models.CandidateListResponse{Items: items}, nil
}
