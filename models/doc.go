// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for pollsite.

# Domain Types

  - Question: poll question with text and publish timestamp
  - Choice: voting option with label and vote counter
  - QuestionWithChoices: question plus its choices, for admin reads

A question is considered published once its pub_date is at or before
the current time. Question.WasPublishedRecently reports whether the
pub_date falls within the closed 24-hour window [now-24h, now].

# Request Types

Types for parsing incoming admin JSON:

  - CreateQuestionRequest: question_text, optional pub_date
  - UpdateQuestionRequest: partial update of question_text / pub_date
  - AddChoiceRequest: choice_text

# Response Types

  - ErrorResponse: error, message

Created and updated rows are echoed back as the domain types.

# Constants

	MaxTextLen   = 200            // character bound on text fields
	RecentWindow = 24 * time.Hour // WasPublishedRecently lookback
*/
package models
