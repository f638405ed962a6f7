package api

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bikalpokharel/portfolio-backend/database"
	"github.com/bikalpokharel/portfolio-backend/models"
	"github.com/bikalpokharel/portfolio-backend/services"
)

const testWebhookSecret = "webhook-test-secret"

func signBody(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func newWebhookTestHandler(t *testing.T, secret string) (http.HandlerFunc, *database.ProjectRepo) {
	t.Helper()
	db := newTestDatabase(t)
	syncer := services.NewRepoSyncer(db.ProjectRepo())
	return newWebhookHandler(syncer, secret).handleGitHubWebhook(), db.ProjectRepo()
}

func postWebhook(handler http.HandlerFunc, event string, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/github", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", event)
	if signature != "" {
		req.Header.Set("X-Hub-Signature-256", signature)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func repositoryEventBody(action, name, description string, fork bool) []byte {
	return []byte(fmt.Sprintf(`{
		"action": %q,
		"repository": {
			"name": %q,
			"html_url": "https://github.com/bikalpokharel/%s",
			"description": %q,
			"language": "Go",
			"fork": %t,
			"private": false,
			"archived": false,
			"stargazers_count": 4,
			"forks_count": 1,
			"created_at": "2023-02-01T00:00:00Z",
			"updated_at": "2024-05-01T00:00:00Z"
		}
	}`, action, name, name, description, fork))
}

func TestWebhookCreatedEventCreatesProject(t *testing.T) {
	handler, projects := newWebhookTestHandler(t, testWebhookSecret)

	body := repositoryEventBody("created", "new_service", "A Django site", false)
	rec := postWebhook(handler, "repository", body, signBody(body, testWebhookSecret))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	project, err := projects.FindBySlug("new-service")
	if err != nil {
		t.Fatalf("FindBySlug failed: %v", err)
	}
	if project == nil {
		t.Fatal("expected a project row for the created repository")
	}
	if project.Title != "New Service" {
		t.Errorf("Title = %q, want %q", project.Title, "New Service")
	}
	if project.Type != models.ProjectTypeWebApp {
		t.Errorf("Type = %q, want web_app", project.Type)
	}
}

func TestWebhookRejectsTamperedSignature(t *testing.T) {
	handler, projects := newWebhookTestHandler(t, testWebhookSecret)

	body := repositoryEventBody("created", "tampered", "A Django site", false)
	signature := signBody(body, testWebhookSecret)

	// Flip one hex digit of the digest
	digest := []byte(signature)
	last := len(digest) - 1
	if digest[last] == '0' {
		digest[last] = '1'
	} else {
		digest[last] = '0'
	}

	rec := postWebhook(handler, "repository", body, string(digest))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	project, err := projects.FindBySlug("tampered")
	if err != nil {
		t.Fatalf("FindBySlug failed: %v", err)
	}
	if project != nil {
		t.Error("rejected webhook must not create a project row")
	}
}

func TestWebhookRejectsMissingSignature(t *testing.T) {
	handler, _ := newWebhookTestHandler(t, testWebhookSecret)

	body := repositoryEventBody("created", "unsigned", "desc", false)
	rec := postWebhook(handler, "repository", body, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestWebhookWithoutConfiguredSecretAcceptsUnsigned(t *testing.T) {
	handler, projects := newWebhookTestHandler(t, "")

	body := repositoryEventBody("created", "open-repo", "web app", false)
	rec := postWebhook(handler, "repository", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	project, err := projects.FindBySlug("open-repo")
	if err != nil {
		t.Fatalf("FindBySlug failed: %v", err)
	}
	if project == nil {
		t.Error("expected a project row when no secret is configured")
	}
}

func TestWebhookIgnoresForks(t *testing.T) {
	handler, projects := newWebhookTestHandler(t, testWebhookSecret)

	body := repositoryEventBody("created", "forked-repo", "web app", true)
	rec := postWebhook(handler, "repository", body, signBody(body, testWebhookSecret))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	project, err := projects.FindBySlug("forked-repo")
	if err != nil {
		t.Fatalf("FindBySlug failed: %v", err)
	}
	if project != nil {
		t.Error("forked repositories must never produce a project row")
	}
}

func TestWebhookPushUpdatesDescriptionsOnly(t *testing.T) {
	handler, projects := newWebhookTestHandler(t, testWebhookSecret)

	existing := &models.Project{
		Title:       "Pushed",
		Slug:        "pushed",
		Description: "old description",
		Type:        models.ProjectTypeML,
		IsFeatured:  true,
	}
	if err := projects.Add(existing); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	body := repositoryEventBody("", "pushed", "fresh description", false)
	rec := postWebhook(handler, "push", body, signBody(body, testWebhookSecret))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	stored, err := projects.FindBySlug("pushed")
	if err != nil {
		t.Fatalf("FindBySlug failed: %v", err)
	}
	if stored.Description != "fresh description" {
		t.Errorf("Description = %q, want %q", stored.Description, "fresh description")
	}
	if stored.DetailedDescription == "" {
		t.Error("push should refresh the detailed description")
	}
	// Everything outside the descriptions stays put
	if stored.Title != "Pushed" || stored.Type != models.ProjectTypeML || !stored.IsFeatured {
		t.Error("push must not touch fields other than the descriptions")
	}
}

func TestWebhookPushForUnknownRepoIsNoOp(t *testing.T) {
	handler, projects := newWebhookTestHandler(t, testWebhookSecret)

	body := repositoryEventBody("", "never-synced", "desc", false)
	rec := postWebhook(handler, "push", body, signBody(body, testWebhookSecret))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	project, err := projects.FindBySlug("never-synced")
	if err != nil {
		t.Fatalf("FindBySlug failed: %v", err)
	}
	if project != nil {
		t.Error("push for an unknown repository must not create a row")
	}
}

func TestWebhookDeletedRemovesProject(t *testing.T) {
	handler, projects := newWebhookTestHandler(t, testWebhookSecret)

	if err := projects.Add(&models.Project{Title: "Doomed", Slug: "doomed", Description: "x"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	body := repositoryEventBody("deleted", "doomed", "x", false)
	rec := postWebhook(handler, "repository", body, signBody(body, testWebhookSecret))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	project, err := projects.FindBySlug("doomed")
	if err != nil {
		t.Fatalf("FindBySlug failed: %v", err)
	}
	if project != nil {
		t.Error("deleted repository event should remove the project row")
	}
}

func TestWebhookMalformedJSON(t *testing.T) {
	handler, _ := newWebhookTestHandler(t, testWebhookSecret)

	body := []byte(`{"action": "created", "repository": `)
	rec := postWebhook(handler, "repository", body, signBody(body, testWebhookSecret))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestWebhookUnknownEventAcknowledged(t *testing.T) {
	handler, projects := newWebhookTestHandler(t, testWebhookSecret)

	body := repositoryEventBody("created", "starred-repo", "web app", false)
	rec := postWebhook(handler, "star", body, signBody(body, testWebhookSecret))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	project, err := projects.FindBySlug("starred-repo")
	if err != nil {
		t.Fatalf("FindBySlug failed: %v", err)
	}
	if project != nil {
		t.Error("unknown events must not trigger any sync action")
	}
}
