package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"leetcode_proxy/internal/common"
	"leetcode_proxy/internal/domain/model"
)

// ProfileFetcher performs the single outbound profile call.
type ProfileFetcher interface {
	FetchUserProfile(ctx context.Context, username string) (*model.UpstreamPayload, error)
}

type ProfileService struct {
	fetcher ProfileFetcher
}

func NewProfileService(fetcher ProfileFetcher) *ProfileService {
	return &ProfileService{fetcher: fetcher}
}

// FetchProfile looks up username upstream and returns its normalized form.
// Failures are *common.UpstreamError values classified as
// common.ErrGatewayUnavailable or common.ErrProfileNotFound; a blank
// username fails with common.ErrValidation.
func (s *ProfileService) FetchProfile(ctx context.Context, username string) (*model.NormalizedProfile, error) {
	if strings.TrimSpace(username) == "" {
		return nil, common.Errorf("username is required: %w", common.ErrValidation)
	}

	payload, err := s.fetcher.FetchUserProfile(ctx, username)
	if err != nil {
		log.Printf("WARN: LeetCode fetch failed for %q: %v", username, err)
		return nil, err
	}

	if len(payload.Errors) > 0 {
		log.Printf("LeetCode returned errors for %q: %v", username, payload.GraphQLErrors())
		return nil, common.NotFoundError("User not found or LeetCode error")
	}
	if payload.Data == nil || payload.Data.MatchedUser == nil {
		return nil, common.NotFoundError("User not found")
	}

	return NormalizeProfile(username, payload.Data.MatchedUser, payload.Data.UserContestRanking), nil
}

// NormalizeProfile flattens an upstream user into the client-facing shape.
// requested is used when the upstream omits the username.
func NormalizeProfile(requested string, user *model.MatchedUser, contest json.RawMessage) *model.NormalizedProfile {
	username := requested
	if user.Username != nil && *user.Username != "" {
		username = *user.Username
	}

	profile := user.Profile
	if profile == nil {
		profile = &model.UpstreamProfile{}
	}

	name := username
	if profile.RealName != nil && *profile.RealName != "" {
		name = *profile.RealName
	}

	var ac, total []model.SubmissionCount
	if user.SubmitStatsGlobal != nil {
		ac = user.SubmitStatsGlobal.AcSubmissionNum
		total = user.SubmitStatsGlobal.TotalSubmissionNum
	}

	return &model.NormalizedProfile{
		Username:   username,
		Name:       name,
		Avatar:     profile.UserAvatar,
		Ranking:    profile.Ranking,
		Reputation: profile.Reputation,
		StarRating: profile.StarRating,
		About:      profile.AboutMe,
		Company:    profile.Company,
		JobTitle:   profile.JobTitle,
		School:     profile.School,
		Country:    profile.CountryName,
		Websites:   nonNil(profile.Websites),
		Skills:     nonNil(profile.SkillTags),
		Badges:     nonNil(user.Badges),
		Stats:      BuildDifficultyStats(ac, total),
		Contest:    passthrough(contest),
	}
}

// BuildDifficultyStats combines the accepted and total submission lists into
// the four fixed buckets. Buckets missing upstream are zero-valued.
func BuildDifficultyStats(ac, total []model.SubmissionCount) model.DifficultyStats {
	acByDifficulty := indexByDifficulty(ac)
	totalByDifficulty := indexByDifficulty(total)

	var stats model.DifficultyStats
	for _, d := range model.Difficulties {
		solved := acByDifficulty[d].count()
		tot := totalByDifficulty[d].count()
		stats.Set(d, model.DifficultyStat{
			Solved:         solved,
			Total:          tot,
			AcceptanceRate: AcceptanceRate(solved, tot),
			Submissions:    totalByDifficulty[d].submissions(),
		})
	}
	return stats
}

// AcceptanceRate is solved/total as a percentage rounded to two decimals,
// and 0 when total is 0. Exact ties round half to even on the binary value,
// so 1/32 gives 3.12.
func AcceptanceRate(solved, total int) float64 {
	if total <= 0 {
		return 0.0
	}
	pct := float64(solved) / float64(total) * 100
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(pct, 'f', 2, 64), 64)
	return rounded
}

type submissionEntry struct {
	c *model.SubmissionCount
}

func (e submissionEntry) count() int {
	if e.c == nil || e.c.Count == nil {
		return 0
	}
	return *e.c.Count
}

func (e submissionEntry) submissions() int {
	if e.c == nil || e.c.Submissions == nil {
		return 0
	}
	return *e.c.Submissions
}

// indexByDifficulty keys entries by difficulty; an entry without one counts
// as All. When a difficulty repeats, the last entry wins.
func indexByDifficulty(list []model.SubmissionCount) map[model.Difficulty]submissionEntry {
	index := make(map[model.Difficulty]submissionEntry, len(list))
	for i := range list {
		d := model.DifficultyAll
		if list[i].Difficulty != nil {
			d = model.Difficulty(*list[i].Difficulty)
		}
		index[d] = submissionEntry{c: &list[i]}
	}
	return index
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

var jsonNull = []byte("null")

func passthrough(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return nil
	}
	return trimmed
}
