package model

import (
	"encoding/json"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

type Difficulty string

const (
	DifficultyAll    Difficulty = "All"
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the buckets reported for every profile, in output order.
var Difficulties = []Difficulty{DifficultyAll, DifficultyEasy, DifficultyMedium, DifficultyHard}

// UpstreamPayload is the GraphQL response envelope returned by LeetCode.
// Every nested object is optional. Errors entries are kept raw so that any
// non-empty list classifies the same way whatever shape its entries take.
type UpstreamPayload struct {
	Data   *UpstreamData     `json:"data"`
	Errors []json.RawMessage `json:"errors,omitempty"`
}

// GraphQLErrors decodes Errors for logging. Entries that do not fit the
// GraphQL error shape are carried through with their raw JSON as the message.
func (p *UpstreamPayload) GraphQLErrors() gqlerror.List {
	list := make(gqlerror.List, 0, len(p.Errors))
	for _, raw := range p.Errors {
		var e gqlerror.Error
		if err := json.Unmarshal(raw, &e); err != nil || e.Message == "" {
			e = gqlerror.Error{Message: string(raw)}
		}
		list = append(list, &e)
	}
	return list
}

type UpstreamData struct {
	MatchedUser        *MatchedUser    `json:"matchedUser"`
	UserContestRanking json.RawMessage `json:"userContestRanking"`
}

type MatchedUser struct {
	Username          *string          `json:"username"`
	Profile           *UpstreamProfile `json:"profile"`
	Badges            []Badge          `json:"badges"`
	SubmitStatsGlobal *SubmitStats     `json:"submitStatsGlobal"`
}

type UpstreamProfile struct {
	Ranking     *int     `json:"ranking"`
	Reputation  *int     `json:"reputation"`
	StarRating  *float64 `json:"starRating"`
	AboutMe     *string  `json:"aboutMe"`
	UserAvatar  *string  `json:"userAvatar"`
	RealName    *string  `json:"realName"`
	School      *string  `json:"school"`
	Company     *string  `json:"company"`
	JobTitle    *string  `json:"jobTitle"`
	CountryName *string  `json:"countryName"`
	Websites    []string `json:"websites"`
	SkillTags   []string `json:"skillTags"`
}

type SubmitStats struct {
	AcSubmissionNum    []SubmissionCount `json:"acSubmissionNum"`
	TotalSubmissionNum []SubmissionCount `json:"totalSubmissionNum"`
}

type SubmissionCount struct {
	Difficulty  *string `json:"difficulty"`
	Count       *int    `json:"count"`
	Submissions *int    `json:"submissions"`
}

type Badge struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type DifficultyStat struct {
	Solved         int     `json:"solved"`
	Total          int     `json:"total"`
	AcceptanceRate float64 `json:"acceptanceRate"`
	Submissions    int     `json:"submissions"`
}

type DifficultyStats struct {
	All    DifficultyStat `json:"all"`
	Easy   DifficultyStat `json:"easy"`
	Medium DifficultyStat `json:"medium"`
	Hard   DifficultyStat `json:"hard"`
}

// Set stores stat under its bucket. Unknown difficulties are ignored.
func (s *DifficultyStats) Set(d Difficulty, stat DifficultyStat) {
	switch d {
	case DifficultyAll:
		s.All = stat
	case DifficultyEasy:
		s.Easy = stat
	case DifficultyMedium:
		s.Medium = stat
	case DifficultyHard:
		s.Hard = stat
	}
}

// NormalizedProfile is the client-facing shape of a LeetCode user.
// Optional scalars are pointers so that missing upstream values serialize as null.
type NormalizedProfile struct {
	Username   string          `json:"username"`
	Name       string          `json:"name"`
	Avatar     *string         `json:"avatar"`
	Ranking    *int            `json:"ranking"`
	Reputation *int            `json:"reputation"`
	StarRating *float64        `json:"starRating"`
	About      *string         `json:"about"`
	Company    *string         `json:"company"`
	JobTitle   *string         `json:"jobTitle"`
	School     *string         `json:"school"`
	Country    *string         `json:"country"`
	Websites   []string        `json:"websites"`
	Skills     []string        `json:"skills"`
	Badges     []Badge         `json:"badges"`
	Stats      DifficultyStats `json:"stats"`
	Contest    json.RawMessage `json:"contest"` // upstream userContestRanking, untouched; nil renders as null
}
