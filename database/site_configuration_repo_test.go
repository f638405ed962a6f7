package database

import (
	"sync"
	"testing"

	"github.com/bikalpokharel/portfolio-backend/errs"
	"github.com/bikalpokharel/portfolio-backend/models"
)

func TestEnsureCreatesSingletonWithDefaults(t *testing.T) {
	repo := NewSiteConfigurationRepo(newTestDB(t))

	config, err := repo.Ensure()
	if err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}

	if config.ID != models.SiteConfigurationID {
		t.Errorf("expected fixed ID %d, got %d", models.SiteConfigurationID, config.ID)
	}
	if config.SiteName == "" || config.Email == "" {
		t.Error("defaults should populate site name and email")
	}
}

func TestEnsureIsIdempotent(t *testing.T) {
	repo := NewSiteConfigurationRepo(newTestDB(t))

	first, err := repo.Ensure()
	if err != nil {
		t.Fatalf("first Ensure failed: %v", err)
	}

	// Mutate the row, then Ensure again: the edit must survive
	first.Tagline = "edited"
	if err := repo.Update(first); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	second, err := repo.Ensure()
	if err != nil {
		t.Fatalf("second Ensure failed: %v", err)
	}
	if second.Tagline != "edited" {
		t.Errorf("Ensure overwrote an existing row: tagline = %q", second.Tagline)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 configuration row, got %d", count)
	}
}

func TestEnsureConcurrentCallersProduceOneRow(t *testing.T) {
	repo := NewSiteConfigurationRepo(newTestDB(t))

	const callers = 8
	var wg sync.WaitGroup
	errors := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Ensure(); err != nil {
				errors <- err
			}
		}()
	}
	wg.Wait()
	close(errors)

	for err := range errors {
		t.Fatalf("concurrent Ensure failed: %v", err)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 configuration row, got %d", count)
	}
}

func TestSecondDirectInsertFails(t *testing.T) {
	db := newTestDB(t)
	repo := NewSiteConfigurationRepo(db)

	if _, err := repo.Ensure(); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}

	second := models.DefaultSiteConfiguration()
	err := db.Create(second).Error
	if err == nil {
		t.Fatal("expected a uniqueness violation inserting a second configuration row")
	}
	if !errs.IsDuplicateKey(err) {
		t.Errorf("expected duplicate-key error, got: %v", err)
	}
}
