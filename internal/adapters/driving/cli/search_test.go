package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ghsuggest/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_Short(t *testing.T) {
	assert.Equal(t, "Print suggestions for a query", searchCmd.Short)
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_HasLimitFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "10", flag.DefValue)
}

func TestSearchCmd_HasJSONFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("json")
	require.NotNil(t, flag, "json flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}

func TestSearchCmd_ExecutesWithQuery(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "golang"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `Suggestions for "golang":`)
	assert.Contains(t, out, "[1] golang  (Organization)")
	assert.Contains(t, out, "[2] golang/go  ★ 123,456")
	assert.Contains(t, out, "The Go programming language")
	assert.Contains(t, out, "https://github.com/golang/go")
}

func TestSearchCmd_LimitTruncates(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "golang", "-n", "1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[1] golang")
	assert.NotContains(t, buf.String(), "golang/go")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "golang", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)

	var got []jsonSuggestion
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "user", got[0].Kind)
	assert.Equal(t, "golang", got[0].Name)
	assert.Equal(t, "repository", got[1].Kind)
	assert.Equal(t, 123456, got[1].Stars)
}

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func()) []byte {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	original := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = original }()

	done := make(chan []byte)
	go func() {
		data, _ := io.ReadAll(r)
		done <- data
	}()

	fn()
	require.NoError(t, w.Close())
	return <-done
}

func TestSearchCmd_JSONGoesToStdout(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	suggestService = &MockSuggestService{
		SuggestFunc: func(_ context.Context, query string) (domain.SuggestResult, error) {
			return domain.SuggestResult{
				Query: query,
				Suggestions: []domain.Suggestion{
					domain.NewUserSuggestion(1, "golang", "", "Organization", "https://github.com/golang"),
				},
				RepositoryErr: errors.New("timeout"),
			}, nil
		},
	}

	errBuf := new(bytes.Buffer)
	rootCmd.SetOut(nil)
	rootCmd.SetErr(errBuf)
	rootCmd.SetArgs([]string{"search", "golang", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	var runErr error
	stdout := captureStdout(t, func() { runErr = rootCmd.Execute() })

	require.NoError(t, runErr)
	var got []jsonSuggestion
	require.NoError(t, json.Unmarshal(stdout, &got), "stdout: %q", stdout)
	require.Len(t, got, 1)
	assert.Equal(t, "golang", got[0].Name)
	assert.Contains(t, errBuf.String(), "warning: repository search failed: timeout")
	assert.NotContains(t, errBuf.String(), "golang\"")
}

func TestSearchCmd_TableGoesToStdout(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	errBuf := new(bytes.Buffer)
	rootCmd.SetOut(nil)
	rootCmd.SetErr(errBuf)
	rootCmd.SetArgs([]string{"search", "golang"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	var runErr error
	stdout := captureStdout(t, func() { runErr = rootCmd.Execute() })

	require.NoError(t, runErr)
	assert.Contains(t, string(stdout), "[2] golang/go  ★ 123,456")
	assert.Empty(t, errBuf.String())
}

func TestSearchCmd_NoResults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	suggestService = &MockSuggestService{}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "zzzzqx"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Sorry, there is no option matching your search query zzzzqx!")
}

func TestSearchCmd_PartialFailureWarns(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	suggestService = &MockSuggestService{
		SuggestFunc: func(_ context.Context, query string) (domain.SuggestResult, error) {
			return domain.SuggestResult{
				Query:       query,
				Suggestions: testSuggestions()[1:],
				UserErr:     errors.New("rate limited"),
			}, nil
		},
	}

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs([]string{"search", "golang"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "golang/go")
	assert.Contains(t, errOut.String(), "warning: user search failed: rate limited")
}

func TestSearchCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	suggestService = &MockSuggestService{
		SuggestFunc: func(context.Context, string) (domain.SuggestResult, error) {
			return domain.SuggestResult{}, domain.ErrQueryTooShort
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "go"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrQueryTooShort)
	assert.Contains(t, err.Error(), "search failed")
}

func TestSearchCmd_NoService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	SetServices(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "golang"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "suggest service not configured")
}
