// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/pollsite/cliparse"
	"github.com/danielhkuo/pollsite/handlers"
	"github.com/danielhkuo/pollsite/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public pages. {$} pins the exact trailing-slash paths; without
	// it a trailing-slash pattern matches the whole subtree.
	mux.HandleFunc("GET /polls/{$}", middleware.WithLogging(questionHandler.Index))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(questionHandler.Detail))
	mux.HandleFunc("GET /polls/{id}/results/{$}", middleware.WithLogging(questionHandler.Results))
	mux.HandleFunc("POST /polls/{id}/vote/{$}", middleware.WithLogging(questionHandler.Vote))

	// Admin API (CORS-enabled, key checked inside the handlers)
	admin := http.NewServeMux()
	admin.HandleFunc("POST /admin/questions", middleware.WithLogging(adminHandler.CreateQuestion))
	admin.HandleFunc("GET /admin/questions", middleware.WithLogging(adminHandler.ListQuestions))
	admin.HandleFunc("GET /admin/questions/{id}", middleware.WithLogging(adminHandler.GetQuestion))
	admin.HandleFunc("PUT /admin/questions/{id}", middleware.WithLogging(adminHandler.UpdateQuestion))
	admin.HandleFunc("DELETE /admin/questions/{id}", middleware.WithLogging(adminHandler.DeleteQuestion))
	admin.HandleFunc("POST /admin/questions/{id}/choices", middleware.WithLogging(adminHandler.AddChoice))
	admin.HandleFunc("DELETE /admin/choices/{id}", middleware.WithLogging(adminHandler.DeleteChoice))
	mux.Handle("/admin/", middleware.CORS(admin))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/polls/", http.StatusFound)
	})

	return mux
}
