// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for pollsite.

# Route Registration

NewRouter creates a configured handler with all endpoints:

	h := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Public pages (HTML):

	GET  /                    - Redirect to /polls/
	GET  /polls/              - Five newest published questions
	GET  /polls/{id}          - Question detail with voting form
	GET  /polls/{id}/results/ - Vote counts per choice
	POST /polls/{id}/vote/    - Record a vote, redirect to results

Admin API (JSON, requires X-Admin-Key):

	POST   /admin/questions              - Create question
	GET    /admin/questions              - List all questions
	GET    /admin/questions/{id}         - Question with choices
	PUT    /admin/questions/{id}         - Update question
	DELETE /admin/questions/{id}         - Delete question
	POST   /admin/questions/{id}/choices - Add choice
	DELETE /admin/choices/{id}           - Delete choice

The admin subtree is wrapped in CORS middleware; a nested ServeMux
keeps the OPTIONS preflight out of the method-specific patterns.

# Handler Initialization

The router creates handler instances with dependency injection:

	questionHandler := handlers.NewQuestionHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
