// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// MaxTextLen is the maximum length, in characters, of question_text
// and choice_text.
const MaxTextLen = 200

// RecentWindow is how far back a question's pub_date may lie for the
// question to still count as recently published.
const RecentWindow = 24 * time.Hour

// Request types

type CreateQuestionRequest struct {
	QuestionText string     `json:"question_text"`
	PubDate      *time.Time `json:"pub_date,omitempty"` // defaults to now
}

type UpdateQuestionRequest struct {
	QuestionText *string    `json:"question_text,omitempty"`
	PubDate      *time.Time `json:"pub_date,omitempty"`
}

type AddChoiceRequest struct {
	ChoiceText string `json:"choice_text"`
}

// Domain types

type Question struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

// WasPublishedRecently reports whether the question was published
// within the last 24 hours. The window is closed at both ends: a
// pub_date of exactly now or exactly 24 hours ago counts as recent,
// a future pub_date never does.
func (q Question) WasPublishedRecently() bool {
	return q.WasPublishedRecentlyAt(time.Now())
}

// WasPublishedRecentlyAt is WasPublishedRecently against an explicit
// clock reading.
func (q Question) WasPublishedRecentlyAt(now time.Time) bool {
	earliest := now.Add(-RecentWindow)
	return !q.PubDate.Before(earliest) && !q.PubDate.After(now)
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int64  `json:"votes"`
}

type QuestionWithChoices struct {
	Question Question `json:"question"`
	Choices  []Choice `json:"choices"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
