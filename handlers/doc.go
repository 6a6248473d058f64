// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for pollsite.

# Handler Types

Each handler is a struct with database and config dependencies:

  - QuestionHandler: public HTML pages (index, detail, results, vote)
  - AdminHandler: JSON CRUD over questions and choices

Handlers are created via constructor functions that accept *sql.DB and Config:

	questionHandler := handlers.NewQuestionHandler(db, cfg)

# Public Pages

A question is published once pub_date <= now. Every public route
applies that filter, so future-dated questions 404 even through
direct links:

	GET  /polls/              → Index (five newest published questions)
	GET  /polls/{id}          → Detail (voting form)
	GET  /polls/{id}/results/ → Results (vote counts)
	POST /polls/{id}/vote/    → Vote (increment and redirect)

Vote reads the form field "choice" (a choice id belonging to the
question), bumps the counter with a single UPDATE so concurrent votes
don't lose updates, and redirects to the results page. A missing or
foreign choice re-renders the form with an error message.

# Admin API

Admin operations require the X-Admin-Key header, validated against
the key derived from ADMIN_KEY_SALT:

	POST   /admin/questions              → CreateQuestion
	GET    /admin/questions              → ListQuestions (future ones included)
	GET    /admin/questions/{id}         → GetQuestion (with choices)
	PUT    /admin/questions/{id}         → UpdateQuestion (partial)
	DELETE /admin/questions/{id}         → DeleteQuestion (choices cascade)
	POST   /admin/questions/{id}/choices → AddChoice
	DELETE /admin/choices/{id}           → DeleteChoice

Text fields are bounded at 200 characters, counted in runes.
*/
package handlers
