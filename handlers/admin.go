// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/danielhkuo/pollsite/auth"
	"github.com/danielhkuo/pollsite/cliparse"
	"github.com/danielhkuo/pollsite/middleware"
	"github.com/danielhkuo/pollsite/models"
)

type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg}
}

// requireAdmin validates the X-Admin-Key header. Writes the error
// response itself; callers bail out on false.
func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

// pathID parses the {id} path value
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func validText(s string) bool {
	return s != "" && utf8.RuneCountInString(s) <= models.MaxTextLen
}

// CreateQuestion handles POST /admin/questions
func (h *AdminHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !validText(req.QuestionText) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_text is required and must be at most 200 characters")
		return
	}

	pubDate := time.Now().UTC()
	if req.PubDate != nil {
		pubDate = req.PubDate.UTC()
	}

	var id int64
	err := h.db.QueryRow(`
		INSERT INTO question (question_text, pub_date)
		VALUES ($1, $2)
		RETURNING id
	`, req.QuestionText, pubDate).Scan(&id)

	if err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", id)

	middleware.JSONResponse(w, http.StatusCreated, models.Question{
		ID:           id,
		QuestionText: req.QuestionText,
		PubDate:      pubDate,
	})
}

// ListQuestions handles GET /admin/questions
// Returns every question, including future-dated ones, newest first.
func (h *AdminHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	rows, err := h.db.Query(`
		SELECT id, question_text, pub_date
		FROM question
		ORDER BY pub_date DESC
	`)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.PubDate); err != nil {
			slog.Error("failed to scan question", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		questions = append(questions, q)
	}

	middleware.JSONResponse(w, http.StatusOK, questions)
}

// GetQuestion handles GET /admin/questions/{id}
// Returns the question with its choices and vote counts.
func (h *AdminHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	var q models.Question
	err = h.db.QueryRow(`
		SELECT id, question_text, pub_date
		FROM question
		WHERE id = $1
	`, id).Scan(&q.ID, &q.QuestionText, &q.PubDate)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows, err := h.db.Query(`
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY id
	`, q.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			slog.Error("failed to scan choice", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		choices = append(choices, c)
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionWithChoices{
		Question: q,
		Choices:  choices,
	})
}

// UpdateQuestion handles PUT /admin/questions/{id}
// Partial update: only the provided fields change.
func (h *AdminHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	var req models.UpdateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.QuestionText == nil && req.PubDate == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "no fields to update")
		return
	}
	if req.QuestionText != nil && !validText(*req.QuestionText) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_text must be non-empty and at most 200 characters")
		return
	}

	var q models.Question
	err = h.db.QueryRow(`
		SELECT id, question_text, pub_date
		FROM question
		WHERE id = $1
	`, id).Scan(&q.ID, &q.QuestionText, &q.PubDate)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if req.QuestionText != nil {
		q.QuestionText = *req.QuestionText
	}
	if req.PubDate != nil {
		q.PubDate = req.PubDate.UTC()
	}

	_, err = h.db.Exec(`
		UPDATE question
		SET question_text = $1, pub_date = $2
		WHERE id = $3
	`, q.QuestionText, q.PubDate, q.ID)

	if err != nil {
		slog.Error("failed to update question", "error", err, "question_id", q.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update question")
		return
	}

	slog.Info("question updated", "question_id", q.ID)

	middleware.JSONResponse(w, http.StatusOK, q)
}

// DeleteQuestion handles DELETE /admin/questions/{id}
// Choices are removed in the same transaction.
func (h *AdminHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM choice WHERE question_id = $1`, id); err != nil {
		slog.Error("failed to delete choices", "error", err, "question_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete question")
		return
	}

	res, err := tx.Exec(`DELETE FROM question WHERE id = $1`, id)
	if err != nil {
		slog.Error("failed to delete question", "error", err, "question_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete question")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete question")
		return
	}

	slog.Info("question deleted", "question_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// AddChoice handles POST /admin/questions/{id}/choices
func (h *AdminHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	questionID, err := pathID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	var req models.AddChoiceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !validText(req.ChoiceText) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "choice_text is required and must be at most 200 characters")
		return
	}

	// Check the question exists
	var exists bool
	err = h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM question WHERE id = $1)
	`, questionID).Scan(&exists)

	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	var choiceID int64
	err = h.db.QueryRow(`
		INSERT INTO choice (question_id, choice_text, votes)
		VALUES ($1, $2, 0)
		RETURNING id
	`, questionID, req.ChoiceText).Scan(&choiceID)

	if err != nil {
		slog.Error("failed to insert choice", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create choice")
		return
	}

	slog.Info("choice added", "question_id", questionID, "choice_id", choiceID)

	middleware.JSONResponse(w, http.StatusCreated, models.Choice{
		ID:         choiceID,
		QuestionID: questionID,
		ChoiceText: req.ChoiceText,
		Votes:      0,
	})
}

// DeleteChoice handles DELETE /admin/choices/{id}
func (h *AdminHandler) DeleteChoice(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Choice not found")
		return
	}

	res, err := h.db.Exec(`DELETE FROM choice WHERE id = $1`, id)
	if err != nil {
		slog.Error("failed to delete choice", "error", err, "choice_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete choice")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Choice not found")
		return
	}

	slog.Info("choice deleted", "choice_id", id)

	w.WriteHeader(http.StatusNoContent)
}
