// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/pollsite/cliparse"
	"github.com/danielhkuo/pollsite/models"
	"github.com/danielhkuo/pollsite/templates"
)

type QuestionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewQuestionHandler(db *sql.DB, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{db: db, cfg: cfg}
}

// Template context types

type indexData struct {
	LatestQuestionList []models.Question
}

type detailData struct {
	Question     models.Question
	Choices      []models.Choice
	ErrorMessage string
}

type resultsData struct {
	Question models.Question
	Choices  []models.Choice
}

// Index handles GET /polls/
// Shows the five most recently published questions, newest first.
func (h *QuestionHandler) Index(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, question_text, pub_date
		FROM question
		WHERE pub_date <= $1
		ORDER BY pub_date DESC
		LIMIT 5
	`, time.Now().UTC())

	if err != nil {
		slog.Error("failed to query questions", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	var latest []models.Question
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.PubDate); err != nil {
			slog.Error("failed to scan question", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		latest = append(latest, q)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate questions", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	renderHTML(w, "index.html", indexData{LatestQuestionList: latest})
}

// Detail handles GET /polls/{id}
// Shows the question with a voting form for its choices.
func (h *QuestionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	q, err := h.publishedQuestion(r)
	if err == sql.ErrNoRows {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	choices, err := h.questionChoices(q.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err, "question_id", q.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	renderHTML(w, "detail.html", detailData{Question: q, Choices: choices})
}

// Results handles GET /polls/{id}/results/
// Shows vote counts per choice.
func (h *QuestionHandler) Results(w http.ResponseWriter, r *http.Request) {
	q, err := h.publishedQuestion(r)
	if err == sql.ErrNoRows {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	choices, err := h.questionChoices(q.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err, "question_id", q.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	renderHTML(w, "results.html", resultsData{Question: q, Choices: choices})
}

// Vote handles POST /polls/{id}/vote/
// Records a vote for the submitted choice and redirects to results.
func (h *QuestionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	q, err := h.publishedQuestion(r)
	if err == sql.ErrNoRows {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.redisplayForm(w, q, "You didn't select a choice.")
		return
	}

	choiceID, err := strconv.ParseInt(r.PostFormValue("choice"), 10, 64)
	if err != nil {
		h.redisplayForm(w, q, "You didn't select a choice.")
		return
	}

	// Increment in SQL so concurrent votes never lose updates. The
	// question_id predicate rejects choices from other questions.
	res, err := h.db.Exec(`
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, choiceID, q.ID)

	if err != nil {
		slog.Error("failed to record vote", "error", err, "question_id", q.ID, "choice_id", choiceID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if affected == 0 {
		h.redisplayForm(w, q, "You didn't select a choice.")
		return
	}

	slog.Info("vote recorded", "question_id", q.ID, "choice_id", choiceID)

	// Redirect after POST so a reload doesn't double-vote
	http.Redirect(w, r, fmt.Sprintf("/polls/%d/results/", q.ID), http.StatusSeeOther)
}

// publishedQuestion loads the question named by the {id} path value,
// applying the same pub_date filter as the index so unpublished
// questions are invisible through direct links too. Unknown, future,
// and non-integer ids all come back as sql.ErrNoRows.
func (h *QuestionHandler) publishedQuestion(r *http.Request) (models.Question, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return models.Question{}, sql.ErrNoRows
	}

	var q models.Question
	err = h.db.QueryRow(`
		SELECT id, question_text, pub_date
		FROM question
		WHERE id = $1 AND pub_date <= $2
	`, id, time.Now().UTC()).Scan(&q.ID, &q.QuestionText, &q.PubDate)

	return q, err
}

func (h *QuestionHandler) questionChoices(questionID int64) ([]models.Choice, error) {
	rows, err := h.db.Query(`
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY id
	`, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, err
		}
		choices = append(choices, c)
	}
	return choices, rows.Err()
}

// redisplayForm re-renders the detail page with an error message,
// matching the behavior of a failed form submission.
func (h *QuestionHandler) redisplayForm(w http.ResponseWriter, q models.Question, message string) {
	choices, err := h.questionChoices(q.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err, "question_id", q.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	renderHTML(w, "detail.html", detailData{Question: q, Choices: choices, ErrorMessage: message})
}

// renderHTML writes a template response. Render failures after the
// header is written can only be logged.
func renderHTML(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, name, data); err != nil {
		slog.Error("failed to render template", "error", err, "template", name)
	}
}
