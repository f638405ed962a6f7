package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site surface, the GitHub webhook and the
// authenticated admin surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public site endpoints
		r.Get("/", handlers.siteHandler.home())
		r.Get("/about", handlers.siteHandler.about())
		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/project/{slug}", handlers.projectHandler.projectDetail())
		r.Get("/contact", handlers.contactHandler.contactPage())
		r.Post("/contact", handlers.contactHandler.submitContact())

		// Repository sync webhook
		r.Post("/webhook/github", handlers.webhookHandler.handleGitHubWebhook())

		// Admin login
		r.Post("/admin/login", handlers.authHandler.login())

		// Authenticated admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Get("/admin/skills", handlers.skillHandler.getAllSkills())
			r.Post("/admin/skill", handlers.skillHandler.createSkill())
			r.Put("/admin/skill/{skillID}", handlers.skillHandler.updateSkill())
			r.Delete("/admin/skill/{skillID}", handlers.skillHandler.deleteSkill())

			r.Get("/admin/projects", handlers.projectHandler.getAllProjects())
			r.Post("/admin/project", handlers.projectHandler.createProject())
			r.Put("/admin/project/{slug}", handlers.projectHandler.updateProject())
			r.Delete("/admin/project/{slug}", handlers.projectHandler.deleteProject())
			r.Post("/admin/project/{slug}/image", handlers.projectHandler.uploadProjectImage())

			r.Get("/admin/experiences", handlers.experienceHandler.getAllExperiences())
			r.Post("/admin/experience", handlers.experienceHandler.createExperience())
			r.Put("/admin/experience/{experienceID}", handlers.experienceHandler.updateExperience())
			r.Delete("/admin/experience/{experienceID}", handlers.experienceHandler.deleteExperience())

			r.Get("/admin/testimonials", handlers.testimonialHandler.getAllTestimonials())
			r.Post("/admin/testimonial", handlers.testimonialHandler.createTestimonial())
			r.Put("/admin/testimonial/{testimonialID}", handlers.testimonialHandler.updateTestimonial())
			r.Delete("/admin/testimonial/{testimonialID}", handlers.testimonialHandler.deleteTestimonial())

			r.Get("/admin/contacts", handlers.contactHandler.getAllContacts())
			r.Put("/admin/contact/{contactID}/read", handlers.contactHandler.markContactRead())

			r.Get("/admin/configuration", handlers.configurationHandler.getConfiguration())
			r.Put("/admin/configuration", handlers.configurationHandler.updateConfiguration())
		})
	})
}
