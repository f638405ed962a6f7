package services

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/bikalpokharel/portfolio-backend/database"
	"github.com/bikalpokharel/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Repository is the subset of a GitHub repository descriptor the sync cares
// about. It decodes both the REST listing shape and the webhook payload shape.
type Repository struct {
	Name            string    `json:"name"`
	HTMLURL         string    `json:"html_url"`
	Description     *string   `json:"description"`
	Language        *string   `json:"language"`
	Fork            bool      `json:"fork"`
	Private         bool      `json:"private"`
	Archived        bool      `json:"archived"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// excludedRepoNames are the portfolio's own repositories; they never become
// project entries.
var excludedRepoNames = map[string]struct{}{
	"bikalpokharel": {},
	"PORTFOLIO":     {},
}

// Eligible reports whether a repository should appear in the portfolio.
// Forks and archived repositories are always excluded; private ones only when
// includePrivate is false (the webhook path), since the batch sync may carry
// an access token that legitimately sees them.
func Eligible(repo Repository, includePrivate bool) bool {
	if repo.Fork || repo.Archived {
		return false
	}
	if repo.Private && !includePrivate {
		return false
	}
	if _, excluded := excludedRepoNames[repo.Name]; excluded {
		return false
	}
	return true
}

// Slugify derives the stable lookup key from a repository name. Two names
// that normalize to the same slug are not disambiguated; last write wins.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, "_", "-")
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}

// FormatTitle turns a repository name into a display title: underscores and
// hyphens become spaces, each word is capitalized independently.
func FormatTitle(name string) string {
	title := strings.ReplaceAll(name, "_", " ")
	title = strings.ReplaceAll(title, "-", " ")
	words := strings.Fields(title)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

type classificationRule struct {
	keywords    []string
	projectType models.ProjectType
}

// classificationRules is evaluated in order, first match wins. The order is
// load-bearing: the ML keyword set is checked before the AI set, so a
// description containing "ai" always classifies as ml_project and the AI
// branch is reachable only through "chatbot" or "nlp".
var classificationRules = []classificationRule{
	{[]string{"web", "website", "app", "django", "flask", "react", "vue", "angular"}, models.ProjectTypeWebApp},
	{[]string{"ml", "machine learning", "ai", "artificial intelligence", "data science", "tensorflow", "pytorch"}, models.ProjectTypeML},
	{[]string{"mobile", "android", "ios", "react native", "flutter"}, models.ProjectTypeMobileApp},
	{[]string{"ai", "artificial intelligence", "chatbot", "nlp"}, models.ProjectTypeAI},
	{[]string{"data", "analysis", "visualization", "pandas", "numpy"}, models.ProjectTypeDataScience},
}

// ClassifyProject determines the project type from a description via
// case-insensitive substring matching against the ordered rule list.
func ClassifyProject(description string) models.ProjectType {
	lower := strings.ToLower(description)
	for _, rule := range classificationRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.projectType
			}
		}
	}
	return models.ProjectTypeOther
}

// Description returns the repository description, or a generic one when the
// payload carries none.
func Description(repo Repository) string {
	if repo.Description != nil && *repo.Description != "" {
		return *repo.Description
	}
	language := "software"
	if repo.Language != nil && *repo.Language != "" {
		language = *repo.Language
	}
	return fmt.Sprintf("A %s project", language)
}

// DetailedDescription composes the long-form project text from the
// repository's language, stats and timestamps.
func DetailedDescription(repo Repository) string {
	language := "Various"
	if repo.Language != nil && *repo.Language != "" {
		language = *repo.Language
	}
	created := repo.CreatedAt.Format("January 2006")
	updated := repo.UpdatedAt.Format("January 2006")

	original := "A software development project showcasing various programming concepts and best practices."
	if repo.Description != nil && *repo.Description != "" {
		original = *repo.Description
	}

	return fmt.Sprintf(`A %s project created in %s and last updated in %s.

Repository Statistics:
• ⭐ %d stars
• 🍴 %d forks
• 📅 Created: %s
• 🔄 Last updated: %s

Technologies: %s

%s

Visit the GitHub repository for more details, documentation, and source code.`,
		language, created, updated,
		repo.StargazersCount, repo.ForksCount, created, updated,
		language, original)
}

// BuildProject derives a full project entry from a repository descriptor.
// The transformation is deterministic and pure given the input.
func BuildProject(repo Repository) *models.Project {
	return &models.Project{
		Title:               FormatTitle(repo.Name),
		Slug:                Slugify(repo.Name),
		Description:         Description(repo),
		DetailedDescription: DetailedDescription(repo),
		Type:                ClassifyProject(Description(repo)),
		Status:              models.StatusCompleted,
		GithubURL:           repo.HTMLURL,
		DemoURL:             "",
		IsFeatured:          true,
		Order:               0,
	}
}

// SyncStats summarizes one batch run.
type SyncStats struct {
	Created int
	Updated int
	Skipped int
}

// RepoSyncer applies the repository-to-project transformation against the
// project store. The webhook handler and the sync-projects command share it.
type RepoSyncer struct {
	projects *database.ProjectRepo
	logger   zerolog.Logger
}

func NewRepoSyncer(projects *database.ProjectRepo) RepoSyncer {
	return RepoSyncer{
		projects: projects,
		logger:   log.With().Str("service", "repoSyncer").Logger(),
	}
}

// SyncBatch upserts every eligible repository. Existing projects are skipped
// unless force is set, in which case every derived field is overwritten.
// Rows already written stay written if a later repository fails.
func (s RepoSyncer) SyncBatch(repos []Repository, includePrivate, force bool) (SyncStats, error) {
	var stats SyncStats
	for _, repo := range repos {
		if !Eligible(repo, includePrivate) {
			continue
		}

		project := BuildProject(repo)
		created, err := s.projects.CreateIfAbsent(project)
		if err != nil {
			return stats, fmt.Errorf("upsert project %q: %w", project.Slug, err)
		}
		if created {
			s.logger.Info().Str("slug", project.Slug).Msg("Created new project")
			stats.Created++
			continue
		}

		if !force {
			s.logger.Info().Str("slug", project.Slug).Msg("Project already exists, skipping")
			stats.Skipped++
			continue
		}

		if err := s.projects.Overwrite(project); err != nil {
			return stats, fmt.Errorf("overwrite project %q: %w", project.Slug, err)
		}
		s.logger.Info().Str("slug", project.Slug).Msg("Updated existing project")
		stats.Updated++
	}
	return stats, nil
}

// HandleCreated adds a newly published repository. Ineligible payloads and
// already-known slugs are skipped silently.
func (s RepoSyncer) HandleCreated(repo Repository) error {
	if !Eligible(repo, false) {
		return nil
	}
	created, err := s.projects.CreateIfAbsent(BuildProject(repo))
	if err != nil {
		return err
	}
	if !created {
		s.logger.Debug().Str("slug", Slugify(repo.Name)).Msg("Project already exists, webhook create skipped")
	}
	return nil
}

// HandlePush refreshes only the description fields of an existing project.
// When the payload carries no description the stored one is kept.
func (s RepoSyncer) HandlePush(repo Repository) error {
	if !Eligible(repo, false) {
		return nil
	}
	slug := Slugify(repo.Name)
	existing, err := s.projects.FindBySlug(slug)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	description := existing.Description
	if repo.Description != nil && *repo.Description != "" {
		description = *repo.Description
	}
	return s.projects.UpdateDescriptions(slug, description, DetailedDescription(repo))
}

// HandleDeleted removes the matching project outright, no-op when absent.
func (s RepoSyncer) HandleDeleted(repo Repository) error {
	return s.projects.DeleteBySlug(Slugify(repo.Name))
}
