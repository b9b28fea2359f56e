package leetcode

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// ProfileQuery fetches a user's profile, badges, solve counts and contest
// ranking in one round trip. It takes a single $username variable.
const ProfileQuery = `
query getUserProfile($username: String!) {
  matchedUser(username: $username) {
    username
    profile {
      ranking
      reputation
      starRating
      aboutMe
      userAvatar
      realName
      school
      company
      jobTitle
      countryName
      websites
      skillTags
    }
    badges {
      id
      name
      icon
    }
    submitStatsGlobal {
      acSubmissionNum { difficulty count submissions }
      totalSubmissionNum { difficulty count submissions }
    }
  }
  userContestRanking(username: $username) {
    rating
    ranking
    attendedContestsCount
    globalRanking
    totalParticipants
    topPercentage
  }
}
`

// profileOperation is the parsed form of ProfileQuery, checked at startup.
var profileOperation = mustParseOperation(ProfileQuery, "username")

// OperationName reports the operation declared by ProfileQuery.
func OperationName() string {
	return profileOperation.Name
}

func mustParseOperation(query string, variables ...string) *ast.OperationDefinition {
	op, err := parseOperation(query, variables...)
	if err != nil {
		panic(err)
	}
	return op
}

// parseOperation parses a single-operation document and verifies that it
// declares each of the given variables.
func parseOperation(query string, variables ...string) (*ast.OperationDefinition, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: "leetcode", Input: query})
	if err != nil {
		return nil, fmt.Errorf("leetcode: invalid query document: %w", err)
	}
	if len(doc.Operations) != 1 {
		return nil, fmt.Errorf("leetcode: expected exactly one operation, found %d", len(doc.Operations))
	}

	op := doc.Operations[0]
	for _, name := range variables {
		if op.VariableDefinitions.ForName(name) == nil {
			return nil, fmt.Errorf("leetcode: operation %q does not declare $%s", op.Name, name)
		}
	}
	return op, nil
}
