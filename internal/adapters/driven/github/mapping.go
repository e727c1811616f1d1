package github

import (
	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/ghsuggest/internal/core/domain"
)

// repositorySuggestions maps repository search items into suggestions.
func repositorySuggestions(repos []*gh.Repository) []domain.Suggestion {
	out := make([]domain.Suggestion, 0, len(repos))
	for _, r := range repos {
		if r == nil {
			continue
		}
		out = append(out, domain.NewRepositorySuggestion(
			r.GetID(),
			r.GetFullName(),
			r.GetOwner().GetAvatarURL(),
			r.GetDescription(),
			r.GetStargazersCount(),
			r.GetHTMLURL(),
		))
	}
	return out
}

// userSuggestions maps user search items into suggestions.
// The login becomes the display name.
func userSuggestions(users []*gh.User) []domain.Suggestion {
	out := make([]domain.Suggestion, 0, len(users))
	for _, u := range users {
		if u == nil {
			continue
		}
		out = append(out, domain.NewUserSuggestion(
			u.GetID(),
			u.GetLogin(),
			u.GetAvatarURL(),
			u.GetType(),
			u.GetHTMLURL(),
		))
	}
	return out
}
