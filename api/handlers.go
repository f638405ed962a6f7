package api

import (
	"github.com/bikalpokharel/portfolio-backend/config"
	"github.com/bikalpokharel/portfolio-backend/database"
	"github.com/bikalpokharel/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, cfg map[string]string, mailer services.EmailSender) *routeHandlers {
	configSource := newSiteConfigSource(database.SiteConfigurationRepo())
	syncer := services.NewRepoSyncer(database.ProjectRepo())

	return &routeHandlers{
		siteHandler: newSiteHandler(configSource, database.SkillRepo(), database.ProjectRepo(),
			database.ExperienceRepo(), database.TestimonialRepo()),
		projectHandler: newProjectHandler(database.ProjectRepo(), database.SkillRepo(),
			config.GetString(cfg, "MEDIA_ROOT", "media")),
		contactHandler: newContactHandler(database.ContactRepo(), configSource, mailer),
		webhookHandler: newWebhookHandler(syncer, config.GetString(cfg, "GITHUB_WEBHOOK_SECRET", "")),
		authHandler: newAuthHandler(
			config.GetString(cfg, "ADMIN_USERNAME", "admin"),
			config.GetString(cfg, "ADMIN_PASSWORD_HASH", ""),
			config.GetString(cfg, "JWT_SECRET", ""),
		),
		skillHandler:         newSkillHandler(database.SkillRepo()),
		experienceHandler:    newExperienceHandler(database.ExperienceRepo()),
		testimonialHandler:   newTestimonialHandler(database.TestimonialRepo()),
		configurationHandler: newConfigurationHandler(configSource, database.SiteConfigurationRepo()),
	}
}
