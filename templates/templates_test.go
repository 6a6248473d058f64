// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package templates

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/pollsite/models"
)

func TestRenderIndexWithQuestions(t *testing.T) {
	data := struct {
		LatestQuestionList []models.Question
	}{
		LatestQuestionList: []models.Question{
			{ID: 1, QuestionText: "What's new?", PubDate: time.Now().Add(-time.Hour)},
			{ID: 2, QuestionText: "What's old?", PubDate: time.Now().Add(-48 * time.Hour)},
		},
	}

	var buf bytes.Buffer
	if err := Render(&buf, "index.html", data); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, `<a href="/polls/1">What&#39;s new?</a>`) {
		t.Errorf("Expected link to question 1, got:\n%s", html)
	}
	if !strings.Contains(html, "<em>new</em>") {
		t.Error("Expected recently published marker for the hour-old question")
	}
	if strings.Contains(html, "No polls are available.") {
		t.Error("Fallback message should not appear when questions exist")
	}
}

func TestRenderIndexEmpty(t *testing.T) {
	data := struct {
		LatestQuestionList []models.Question
	}{}

	var buf bytes.Buffer
	if err := Render(&buf, "index.html", data); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No polls are available.") {
		t.Error("Expected fallback message for empty question list")
	}
}

func TestRenderDetail(t *testing.T) {
	data := struct {
		Question     models.Question
		Choices      []models.Choice
		ErrorMessage string
	}{
		Question: models.Question{ID: 7, QuestionText: "Best editor?", PubDate: time.Now().Add(-time.Hour)},
		Choices: []models.Choice{
			{ID: 11, QuestionID: 7, ChoiceText: "vim"},
			{ID: 12, QuestionID: 7, ChoiceText: "emacs"},
		},
	}

	var buf bytes.Buffer
	if err := Render(&buf, "detail.html", data); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, `action="/polls/7/vote/"`) {
		t.Error("Expected form posting to the vote route")
	}
	if !strings.Contains(html, `value="11"`) || !strings.Contains(html, "vim") {
		t.Error("Expected radio inputs for each choice")
	}
	if strings.Contains(html, "<strong>") {
		t.Error("Error block should not render without a message")
	}
}

func TestRenderDetailWithError(t *testing.T) {
	data := struct {
		Question     models.Question
		Choices      []models.Choice
		ErrorMessage string
	}{
		Question:     models.Question{ID: 7, QuestionText: "Best editor?", PubDate: time.Now()},
		ErrorMessage: "You didn't select a choice.",
	}

	var buf bytes.Buffer
	if err := Render(&buf, "detail.html", data); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(buf.String(), "You didn&#39;t select a choice.") {
		t.Error("Expected the error message to render")
	}
}

func TestRenderResultsPluralization(t *testing.T) {
	data := struct {
		Question models.Question
		Choices  []models.Choice
	}{
		Question: models.Question{ID: 3, QuestionText: "Tabs or spaces?", PubDate: time.Now()},
		Choices: []models.Choice{
			{ID: 1, QuestionID: 3, ChoiceText: "Tabs", Votes: 1},
			{ID: 2, QuestionID: 3, ChoiceText: "Spaces", Votes: 4},
		},
	}

	var buf bytes.Buffer
	if err := Render(&buf, "results.html", data); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "Tabs -- 1 vote<") {
		t.Errorf("Expected singular vote count, got:\n%s", html)
	}
	if !strings.Contains(html, "Spaces -- 4 votes") {
		t.Errorf("Expected plural vote count, got:\n%s", html)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, "missing.html", nil); err == nil {
		t.Error("Expected error for unknown template name")
	}
}
