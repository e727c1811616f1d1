package autocomplete

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ghsuggest/internal/core/domain"
	"github.com/custodia-labs/ghsuggest/internal/debounce"
)

func suggestions(n int) []domain.Suggestion {
	out := make([]domain.Suggestion, n)
	for i := range out {
		out[i] = domain.NewUserSuggestion(int64(i), fmt.Sprintf("user-%d", i), "", "User", "")
	}
	return out
}

// loaded returns a state showing n suggestions for query.
func loaded(query string, n int) State {
	s := Reduce(NewState(3), InputChanged{Query: query})
	s = Reduce(s, FetchStarted{Seq: s.Seq})
	return Reduce(s, FetchSucceeded{Seq: s.Seq, Result: domain.SuggestResult{Suggestions: suggestions(n)}})
}

func TestNewState(t *testing.T) {
	s := NewState(3)

	assert.False(t, s.Visible)
	assert.Equal(t, domain.StatusIdle, s.Status)
	assert.Equal(t, 3, s.MinQueryLength)
	assert.Equal(t, 3, NewState(0).MinQueryLength)
}

func TestReduce_InputChanged_BelowMinimum(t *testing.T) {
	for _, q := range []string{"", "a", "ab", "日本"} {
		t.Run(q, func(t *testing.T) {
			s := Reduce(NewState(3), InputChanged{Query: q})

			assert.Equal(t, q, s.Query)
			assert.True(t, s.Visible)
			assert.False(t, s.Pending)
			assert.Equal(t, domain.StatusIdle, s.Status)
			assert.Equal(t, BodyHint, Classify(s))
		})
	}
}

func TestReduce_InputChanged_AtMinimumSchedulesFetch(t *testing.T) {
	s := Reduce(NewState(3), InputChanged{Query: "abc"})

	assert.True(t, s.Pending)
	assert.Equal(t, uint64(1), s.Seq)
	assert.Equal(t, BodyLoading, Classify(s))
}

func TestReduce_InputChanged_ResetsActive(t *testing.T) {
	s := loaded("abc", 5)
	s = Reduce(s, KeyNavigated{Delta: 3})
	require.Equal(t, 3, s.Active)

	s = Reduce(s, InputChanged{Query: "abcd"})

	assert.Equal(t, 0, s.Active)
}

func TestReduce_InputChanged_DoesNotMutatePrevious(t *testing.T) {
	before := loaded("abc", 2)

	after := Reduce(before, InputChanged{Query: "xyz"})

	assert.Equal(t, "abc", before.Query)
	assert.Equal(t, "xyz", after.Query)
	assert.NotEqual(t, before.Seq, after.Seq)
}

func TestReduce_FetchStarted(t *testing.T) {
	s := Reduce(NewState(3), InputChanged{Query: "abc"})

	s = Reduce(s, FetchStarted{Seq: s.Seq})

	assert.False(t, s.Pending)
	assert.Equal(t, domain.StatusLoading, s.Status)
}

func TestReduce_FetchStarted_StaleIgnored(t *testing.T) {
	s := Reduce(NewState(3), InputChanged{Query: "abc"})

	next := Reduce(s, FetchStarted{Seq: s.Seq - 1})

	assert.Equal(t, s, next)
}

func TestReduce_FetchSucceeded(t *testing.T) {
	s := loaded("abc", 3)

	assert.Equal(t, domain.StatusIdle, s.Status)
	assert.Len(t, s.Suggestions, 3)
	assert.Equal(t, 0, s.Active)
	assert.NoError(t, s.PartialErr)
	assert.Equal(t, BodyList, Classify(s))
}

func TestReduce_FetchSucceeded_Partial(t *testing.T) {
	boom := errors.New("users unavailable")
	s := Reduce(NewState(3), InputChanged{Query: "abc"})
	s = Reduce(s, FetchStarted{Seq: s.Seq})

	s = Reduce(s, FetchSucceeded{Seq: s.Seq, Result: domain.SuggestResult{
		Suggestions: suggestions(2),
		UserErr:     boom,
	}})

	assert.ErrorIs(t, s.PartialErr, boom)
	assert.NoError(t, s.Err)
	assert.Equal(t, BodyList, Classify(s))
}

func TestReduce_FetchSucceeded_RepositoryFailureKeepsList(t *testing.T) {
	down := errors.New("network down")
	s := loaded("abc", 3)
	s = Reduce(s, InputChanged{Query: "abcd"})
	s = Reduce(s, FetchStarted{Seq: s.Seq})

	s = Reduce(s, FetchSucceeded{Seq: s.Seq, Result: domain.SuggestResult{
		Suggestions:   suggestions(1),
		RepositoryErr: down,
	}})

	assert.Equal(t, domain.StatusError, s.Status)
	assert.ErrorIs(t, s.Err, down)
	assert.NoError(t, s.PartialErr)
	assert.Len(t, s.Suggestions, 3)
	assert.Equal(t, BodyList, Classify(s))
}

func TestReduce_FetchSucceeded_RepositoryFailureWithoutList(t *testing.T) {
	down := errors.New("network down")
	s := Reduce(NewState(3), InputChanged{Query: "abc"})
	s = Reduce(s, FetchStarted{Seq: s.Seq})

	s = Reduce(s, FetchSucceeded{Seq: s.Seq, Result: domain.SuggestResult{
		Suggestions:   suggestions(2),
		RepositoryErr: down,
	}})

	assert.Equal(t, domain.StatusIdle, s.Status)
	assert.ErrorIs(t, s.PartialErr, down)
	assert.Len(t, s.Suggestions, 2)
}

func TestReduce_FetchSucceeded_Empty(t *testing.T) {
	s := loaded("zzzzzz", 0)

	assert.Equal(t, BodyEmpty, Classify(s))
}

func TestReduce_StaleResultsDiscarded(t *testing.T) {
	s := Reduce(NewState(3), InputChanged{Query: "abc"})
	s = Reduce(s, FetchStarted{Seq: s.Seq})
	oldSeq := s.Seq
	s = Reduce(s, InputChanged{Query: "abcd"})
	s = Reduce(s, FetchStarted{Seq: s.Seq})

	afterSuccess := Reduce(s, FetchSucceeded{Seq: oldSeq, Result: domain.SuggestResult{Suggestions: suggestions(4)}})
	afterFailure := Reduce(s, FetchFailed{Seq: oldSeq, Err: errors.New("late")})

	assert.Equal(t, s, afterSuccess)
	assert.Equal(t, s, afterFailure)
}

func TestReduce_FetchFailed_KeepsList(t *testing.T) {
	boom := errors.New("network down")
	s := loaded("abc", 2)
	s = Reduce(s, InputChanged{Query: "abcd"})
	s = Reduce(s, FetchStarted{Seq: s.Seq})

	s = Reduce(s, FetchFailed{Seq: s.Seq, Err: boom})

	assert.Equal(t, domain.StatusError, s.Status)
	assert.ErrorIs(t, s.Err, boom)
	assert.Len(t, s.Suggestions, 2)
	assert.Equal(t, BodyList, Classify(s))
}

func TestReduce_FetchFailed_EmptyListShowsError(t *testing.T) {
	s := Reduce(NewState(3), InputChanged{Query: "abc"})
	s = Reduce(s, FetchStarted{Seq: s.Seq})

	s = Reduce(s, FetchFailed{Seq: s.Seq, Err: errors.New("boom")})

	assert.NotEqual(t, domain.StatusLoading, s.Status)
	assert.Equal(t, BodyError, Classify(s))
}

func TestReduce_FetchFailed_IgnoredErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus domain.Status
	}{
		{name: "superseded", err: debounce.ErrSuperseded, wantStatus: domain.StatusLoading},
		{name: "stopped", err: debounce.ErrStopped, wantStatus: domain.StatusLoading},
		{name: "too short", err: domain.ErrQueryTooShort, wantStatus: domain.StatusIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Reduce(NewState(3), InputChanged{Query: "abc"})
			s = Reduce(s, FetchStarted{Seq: s.Seq})

			s = Reduce(s, FetchFailed{Seq: s.Seq, Err: tt.err})

			assert.NoError(t, s.Err)
			assert.Equal(t, tt.wantStatus, s.Status)
		})
	}
}

func TestReduce_KeyNavigated_Clamps(t *testing.T) {
	s := loaded("abc", 3)

	s = Reduce(s, KeyNavigated{Delta: -1})
	assert.Equal(t, 0, s.Active)

	s = Reduce(s, KeyNavigated{Delta: 1})
	s = Reduce(s, KeyNavigated{Delta: 1})
	assert.Equal(t, 2, s.Active)

	s = Reduce(s, KeyNavigated{Delta: 1})
	assert.Equal(t, 2, s.Active)

	s = Reduce(s, KeyNavigated{Delta: -10})
	assert.Equal(t, 0, s.Active)
}

func TestReduce_KeyNavigated_EmptyListNoOp(t *testing.T) {
	s := loaded("abc", 0)

	next := Reduce(s, KeyNavigated{Delta: 1})

	assert.Equal(t, s, next)
}

func TestReduce_OptionSelected(t *testing.T) {
	repo := domain.NewRepositorySuggestion(1, "facebook/react", "", "", 10, "")
	user := domain.NewUserSuggestion(2, "octocat", "", "User", "")
	s := Reduce(NewState(3), InputChanged{Query: "rea"})
	s = Reduce(s, FetchStarted{Seq: s.Seq})
	s = Reduce(s, FetchSucceeded{Seq: s.Seq, Result: domain.SuggestResult{
		Suggestions: []domain.Suggestion{repo, user},
	}})
	s = Reduce(s, KeyNavigated{Delta: 1})
	seq := s.Seq

	selectedUser := Reduce(s, OptionSelected{Index: 1})
	selectedRepo := Reduce(s, OptionSelected{Index: 0})

	assert.Equal(t, "octocat", selectedUser.Query)
	assert.Equal(t, 0, selectedUser.Active)
	assert.True(t, selectedUser.Visible)
	assert.True(t, selectedUser.Pending)
	assert.Greater(t, selectedUser.Seq, seq)
	assert.Equal(t, "facebook/react", selectedRepo.Query)
}

func TestReduce_OptionSelected_Guarded(t *testing.T) {
	tests := []struct {
		name  string
		state State
		index int
	}{
		{name: "empty list", state: loaded("abc", 0), index: 0},
		{name: "negative", state: loaded("abc", 2), index: -1},
		{name: "past end", state: loaded("abc", 2), index: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Reduce(tt.state, OptionSelected{Index: tt.index})

			assert.Equal(t, tt.state, next)
		})
	}
}

func TestReduce_Dismissed(t *testing.T) {
	s := loaded("abc", 2)
	seq := s.Seq

	s = Reduce(s, Dismissed{})

	assert.Equal(t, "", s.Query)
	assert.Empty(t, s.Suggestions)
	assert.False(t, s.Visible)
	assert.False(t, s.Pending)
	assert.Greater(t, s.Seq, seq)
	assert.Equal(t, BodyNone, Classify(s))
}

func TestReduce_MinLengthChanged(t *testing.T) {
	s := Reduce(NewState(3), InputChanged{Query: "ab"})
	require.Equal(t, BodyHint, Classify(s))

	s = Reduce(s, MinLengthChanged{MinQueryLength: 2})

	assert.Equal(t, 2, s.MinQueryLength)
	assert.True(t, s.Pending)
}

func TestReduce_MinLengthChanged_Invalid(t *testing.T) {
	s := NewState(3)

	assert.Equal(t, s, Reduce(s, MinLengthChanged{MinQueryLength: 0}))
	assert.Equal(t, s, Reduce(s, MinLengthChanged{MinQueryLength: 3}))
}

func TestReduce_MinLengthChanged_HiddenDoesNotFetch(t *testing.T) {
	s := Reduce(NewState(3), MinLengthChanged{MinQueryLength: 1})

	assert.Equal(t, 1, s.MinQueryLength)
	assert.False(t, s.Pending)
}

func TestState_ActiveSuggestion(t *testing.T) {
	_, ok := NewState(3).ActiveSuggestion()
	assert.False(t, ok)

	s := Reduce(loaded("abc", 3), KeyNavigated{Delta: 2})
	got, ok := s.ActiveSuggestion()
	assert.True(t, ok)
	assert.Equal(t, "user-2", got.Name())
}

func TestState_LoadingAndErrorNeverTogether(t *testing.T) {
	s := Reduce(NewState(3), InputChanged{Query: "abc"})
	s = Reduce(s, FetchStarted{Seq: s.Seq})
	s = Reduce(s, FetchFailed{Seq: s.Seq, Err: errors.New("boom")})
	require.Equal(t, domain.StatusError, s.Status)

	s = Reduce(s, InputChanged{Query: "abcd"})
	s = Reduce(s, FetchStarted{Seq: s.Seq})

	assert.Equal(t, domain.StatusLoading, s.Status)
	assert.NoError(t, s.Err)
}
