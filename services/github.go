package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const githubAPIBase = "https://api.github.com"

// listReposPageSize is GitHub's maximum per_page value.
const listReposPageSize = 100

// FetchUserRepos lists a user's repositories from the GitHub REST API,
// following pagination until exhausted. A token widens visibility to private
// repositories. Any HTTP or network failure aborts the whole listing.
func FetchUserRepos(username, token string) ([]Repository, error) {
	client := &http.Client{Timeout: 30 * time.Second}

	var all []Repository
	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/users/%s/repos?per_page=%d&page=%d", githubAPIBase, username, listReposPageSize, page)
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create GitHub API request: %w", err)
		}
		req.Header.Set("Accept", "application/vnd.github+json")
		if token != "" {
			req.Header.Set("Authorization", "token "+token)
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch repositories: %w", err)
		}

		bodyBytes, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read GitHub API response: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("GitHub API error (status %d): %s", resp.StatusCode, string(bodyBytes))
		}

		var repos []Repository
		if err := json.Unmarshal(bodyBytes, &repos); err != nil {
			return nil, fmt.Errorf("failed to decode GitHub API response: %w", err)
		}

		all = append(all, repos...)
		if len(repos) < listReposPageSize {
			break
		}
	}
	return all, nil
}
