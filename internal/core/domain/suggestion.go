package domain

// SuggestionKind discriminates the two suggestion variants.
type SuggestionKind string

const (
	// KindRepository is a repository returned by the repository search.
	KindRepository SuggestionKind = "repository"

	// KindUser is a user or organisation returned by the user search.
	KindUser SuggestionKind = "user"
)

// String returns the string representation.
func (k SuggestionKind) String() string {
	return string(k)
}

// Suggestion is one selectable entry in the autocomplete list.
// Exactly one of the variant field groups is meaningful, selected by Kind.
type Suggestion struct {
	// ID is the GitHub identifier of the repository or user.
	ID int64

	// Kind selects the variant.
	Kind SuggestionKind

	// HTMLURL is the external link to the entity on github.com.
	HTMLURL string

	// AvatarURL is the owner avatar for repositories and the user avatar for users.
	AvatarURL string

	// Repository variant.

	// FullName is the "owner/name" of a repository.
	FullName string

	// Description is the optional repository description.
	Description string

	// Stars is the repository stargazer count.
	Stars int

	// User variant.

	// Login is the user or organisation login.
	Login string

	// AccountType is the type marker the API returns for users
	// ("User", "Organization", "Bot").
	AccountType string
}

// NewRepositorySuggestion creates a repository suggestion.
func NewRepositorySuggestion(id int64, fullName, avatarURL, description string, stars int, htmlURL string) Suggestion {
	return Suggestion{
		ID:          id,
		Kind:        KindRepository,
		FullName:    fullName,
		AvatarURL:   avatarURL,
		Description: description,
		Stars:       stars,
		HTMLURL:     htmlURL,
	}
}

// NewUserSuggestion creates a user suggestion.
func NewUserSuggestion(id int64, login, avatarURL, accountType, htmlURL string) Suggestion {
	return Suggestion{
		ID:          id,
		Kind:        KindUser,
		Login:       login,
		AvatarURL:   avatarURL,
		AccountType: accountType,
		HTMLURL:     htmlURL,
	}
}

// Name returns the display and canonical name: the full repository name
// for repositories, the login for users.
func (s Suggestion) Name() string {
	if s.Kind == KindUser {
		return s.Login
	}
	return s.FullName
}

// IsRepository reports whether the suggestion is a repository.
func (s Suggestion) IsRepository() bool {
	return s.Kind == KindRepository
}

// IsUser reports whether the suggestion is a user.
func (s Suggestion) IsUser() bool {
	return s.Kind == KindUser
}
