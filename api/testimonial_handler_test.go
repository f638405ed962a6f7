package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCreateTestimonialAppliesDefaultRating(t *testing.T) {
	db := newTestDatabase(t)
	handler := newTestimonialHandler(db.TestimonialRepo()).createTestimonial()

	req := httptest.NewRequest(http.MethodPost, "/admin/testimonial",
		strings.NewReader(`{"name": "Ada", "content": "Great collaborator.", "is_active": true}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	testimonials, err := db.TestimonialRepo().FindAll()
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(testimonials) != 1 {
		t.Fatalf("expected 1 testimonial, got %d", len(testimonials))
	}
	if testimonials[0].Rating != 5 {
		t.Errorf("expected default rating 5, got %d", testimonials[0].Rating)
	}
}

func TestCreateTestimonialStoresInactiveFlag(t *testing.T) {
	db := newTestDatabase(t)
	handler := newTestimonialHandler(db.TestimonialRepo()).createTestimonial()

	req := httptest.NewRequest(http.MethodPost, "/admin/testimonial",
		strings.NewReader(`{"name": "Bob", "content": "Keep this one off the page.", "rating": 3}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	active, err := db.TestimonialRepo().FindActive(3)
	if err != nil {
		t.Fatalf("FindActive failed: %v", err)
	}
	if len(active) != 0 {
		t.Error("testimonial created without is_active must not appear in the active listing")
	}
}
