package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	ghub "github.com/stahnma/gh-repo-search/internal/github"
	"github.com/stahnma/gh-repo-search/internal/query"
)

// WriteJSON writes indented JSON to w.
func WriteJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(output))
	return nil
}

// JoinFullNames joins the full names of repos with delimiter.
func JoinFullNames(repos []ghub.RepoSummary, delimiter string) string {
	names := make([]string, 0, len(repos))
	for _, r := range repos {
		names = append(names, r.FullName)
	}
	return strings.Join(names, delimiter)
}

// MarshalRepos renders repos as a compact JSON list. A nil or empty
// slice renders as [].
func MarshalRepos(repos []ghub.RepoSummary) (string, error) {
	if repos == nil {
		repos = []ghub.RepoSummary{}
	}
	data, err := json.Marshal(repos)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Repos renders repos in the given output format.
func Repos(repos []ghub.RepoSummary, format, delimiter string) (string, error) {
	switch format {
	case query.FormatFlat:
		return JoinFullNames(repos, delimiter), nil
	case query.FormatJSON:
		return MarshalRepos(repos)
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
