package services

import (
	"strings"
	"testing"
	"time"

	"github.com/bikalpokharel/portfolio-backend/models"
)

func strPtr(s string) *string {
	return &s
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"My_Cool-App", "my-cool-app"},
		{"PORTFOLIO", "portfolio"},
		{"repo with spaces", "repo-with-spaces"},
		{"already-fine", "already-fine"},
	}
	for _, c := range cases {
		if got := Slugify(c.name); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	slug := Slugify("My_Cool-App")
	if again := Slugify(slug); again != slug {
		t.Errorf("Slugify not idempotent: %q -> %q", slug, again)
	}
}

func TestFormatTitle(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"My_Cool-App", "My Cool App"},
		{"portfolio", "Portfolio"},
		{"data_science_toolkit", "Data Science Toolkit"},
	}
	for _, c := range cases {
		if got := FormatTitle(c.name); got != c.want {
			t.Errorf("FormatTitle(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestClassifyProjectPriority(t *testing.T) {
	cases := []struct {
		description string
		want        models.ProjectType
	}{
		// web keywords are checked first, so web wins over ML terms
		{"React dashboard using TensorFlow", models.ProjectTypeWebApp},
		{"A Django site", models.ProjectTypeWebApp},
		{"tensorflow experiments", models.ProjectTypeML},
		{"machine learning pipeline", models.ProjectTypeML},
		// "ai" is in the ML set, which precedes the AI set
		{"ai toolkit", models.ProjectTypeML},
		// the AI branch is reachable only via chatbot/nlp
		{"chatbot for customer support", models.ProjectTypeAI},
		{"nlp experiments", models.ProjectTypeAI},
		{"android client", models.ProjectTypeMobileApp},
		{"visualization of results", models.ProjectTypeDataScience},
		{"utility scripts", models.ProjectTypeOther},
		{"CHATBOT in caps", models.ProjectTypeAI},
	}
	for _, c := range cases {
		if got := ClassifyProject(c.description); got != c.want {
			t.Errorf("ClassifyProject(%q) = %q, want %q", c.description, got, c.want)
		}
	}
}

func TestEligible(t *testing.T) {
	base := Repository{Name: "some-repo"}

	if !Eligible(base, false) {
		t.Error("plain public repo should be eligible")
	}

	fork := base
	fork.Fork = true
	if Eligible(fork, false) || Eligible(fork, true) {
		t.Error("forks must never be eligible")
	}

	archived := base
	archived.Archived = true
	if Eligible(archived, false) || Eligible(archived, true) {
		t.Error("archived repos must never be eligible")
	}

	private := base
	private.Private = true
	if Eligible(private, false) {
		t.Error("private repo should be excluded on the webhook path")
	}
	if !Eligible(private, true) {
		t.Error("private repo should be eligible when a token is in play")
	}

	for _, name := range []string{"bikalpokharel", "PORTFOLIO"} {
		excluded := base
		excluded.Name = name
		if Eligible(excluded, true) {
			t.Errorf("portfolio repo %q should be excluded", name)
		}
	}
}

func TestDescriptionFallback(t *testing.T) {
	repo := Repository{Name: "thing", Language: strPtr("Go")}
	if got := Description(repo); got != "A Go project" {
		t.Errorf("Description = %q, want %q", got, "A Go project")
	}

	repo.Language = nil
	if got := Description(repo); got != "A software project" {
		t.Errorf("Description = %q, want %q", got, "A software project")
	}

	repo.Description = strPtr("Real description")
	if got := Description(repo); got != "Real description" {
		t.Errorf("Description = %q, want %q", got, "Real description")
	}
}

func TestDetailedDescription(t *testing.T) {
	repo := Repository{
		Name:            "cool-app",
		Description:     strPtr("A cool app"),
		Language:        strPtr("Python"),
		StargazersCount: 12,
		ForksCount:      3,
		CreatedAt:       time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
	}

	detailed := DetailedDescription(repo)
	for _, want := range []string{
		"A Python project created in March 2023 and last updated in July 2024.",
		"12 stars",
		"3 forks",
		"Technologies: Python",
		"A cool app",
	} {
		if !strings.Contains(detailed, want) {
			t.Errorf("DetailedDescription missing %q:\n%s", want, detailed)
		}
	}
}

func TestDetailedDescriptionFallbackSentence(t *testing.T) {
	repo := Repository{Name: "bare"}
	detailed := DetailedDescription(repo)
	if !strings.Contains(detailed, "A software development project showcasing various programming concepts and best practices.") {
		t.Errorf("DetailedDescription missing fallback sentence:\n%s", detailed)
	}
	if !strings.Contains(detailed, "Technologies: Various") {
		t.Errorf("DetailedDescription should fall back to Various:\n%s", detailed)
	}
}

func TestBuildProject(t *testing.T) {
	repo := Repository{
		Name:        "My_Cool-App",
		HTMLURL:     "https://github.com/someone/My_Cool-App",
		Description: strPtr("React dashboard using TensorFlow"),
		Language:    strPtr("TypeScript"),
		CreatedAt:   time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC),
	}

	project := BuildProject(repo)

	if project.Title != "My Cool App" {
		t.Errorf("Title = %q, want %q", project.Title, "My Cool App")
	}
	if project.Slug != "my-cool-app" {
		t.Errorf("Slug = %q, want %q", project.Slug, "my-cool-app")
	}
	if project.Type != models.ProjectTypeWebApp {
		t.Errorf("Type = %q, want web_app", project.Type)
	}
	if project.Status != models.StatusCompleted {
		t.Errorf("Status = %q, want completed", project.Status)
	}
	if !project.IsFeatured {
		t.Error("synced projects should be featured by default")
	}
	if project.GithubURL != repo.HTMLURL {
		t.Errorf("GithubURL = %q, want %q", project.GithubURL, repo.HTMLURL)
	}
	if project.DemoURL != "" {
		t.Errorf("DemoURL should be empty, got %q", project.DemoURL)
	}
}
