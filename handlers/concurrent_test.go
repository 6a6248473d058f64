// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/pollsite/testutil"
)

// TestConcurrentVotes fires votes from many goroutines at the same
// choice. The increment runs inside a single UPDATE, so no vote may
// be lost.
func TestConcurrentVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewQuestionHandler(db, cfg)

	questionID := testutil.CreateTestQuestion(t, db, "Concurrent question", -time.Hour)
	choiceID := testutil.AddTestChoice(t, db, questionID, "Popular", 0)

	const voters = 25

	id := strconv.FormatInt(questionID, 10)
	choice := strconv.FormatInt(choiceID, 10)

	var wg sync.WaitGroup
	statuses := make(chan int, voters)

	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			form := url.Values{"choice": {choice}}
			req := testutil.MakeFormRequest("POST", "/polls/"+id+"/vote/", form)
			req.SetPathValue("id", id)
			w := httptest.NewRecorder()

			handler.Vote(w, req)
			statuses <- w.Code
		}()
	}

	wg.Wait()
	close(statuses)

	for code := range statuses {
		if code != http.StatusSeeOther {
			t.Errorf("Expected status %d for every vote, got %d", http.StatusSeeOther, code)
		}
	}

	if got := testutil.ChoiceVotes(t, db, choiceID); got != voters {
		t.Errorf("Expected %d votes, got %d", voters, got)
	}
}
