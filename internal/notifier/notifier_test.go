package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"CoinLife/internal/model"
)

type fakeSender struct {
	mu       sync.Mutex
	failures int
	sent     []string
}

func (f *fakeSender) Send(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("boom")
	}
	f.sent = append(f.sent, text)
	return nil
}

func (f *fakeSender) messages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

func TestSend_PostsEscapedHTML(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottok/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("tok", "42", "", zerolog.Nop())
	tn.APIBase = srv.URL
	tn.Client = srv.Client()

	require.NoError(t, tn.Send(context.Background(), "a < b"))
	assert.Equal(t, "42", got["chat_id"])
	assert.Equal(t, "HTML", got["parse_mode"])
	assert.Equal(t, "<pre>a &lt; b</pre>", got["text"])
}

func TestSend_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("tok", "42", "", zerolog.Nop())
	tn.APIBase = srv.URL
	tn.Client = srv.Client()

	err := tn.Send(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestSendWithRetry(t *testing.T) {
	f := &fakeSender{failures: 2}
	require.NoError(t, sendWithRetry(context.Background(), f, "hi", 3, time.Millisecond, zerolog.Nop()))
	assert.Equal(t, []string{"hi"}, f.messages())

	f = &fakeSender{failures: 5}
	err := sendWithRetry(context.Background(), f, "hi", 1, time.Millisecond, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 2 retries exhausted")
}

func TestSendWithRetry_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := sendWithRetry(ctx, &fakeSender{failures: 1}, "hi", 3, time.Hour, zerolog.Nop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestObserver_DeliversEndingsAndOptionalSettlements(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := &fakeSender{}
	o := NewObserver(context.Background(), f, false, zerolog.Nop())
	o.OnNightEnd(model.Settlement{Day: 1})
	o.OnSessionEnd(model.SessionSummary{Ending: model.Ending{Title: "The Bystander", Description: "watched"}})
	o.Close()
	o.Close()

	msgs := f.messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "The Bystander")

	f = &fakeSender{}
	o = NewObserver(context.Background(), f, true, zerolog.Nop())
	o.OnNightEnd(model.Settlement{Day: 3})
	o.Close()
	o.OnSessionEnd(model.SessionSummary{})

	msgs = f.messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "Night 3 settled")
}

type fakeRunner struct{ runs int }

func (r *fakeRunner) RunNow() (model.SessionSummary, error) {
	r.runs++
	return model.SessionSummary{Ending: model.Ending{Title: "Diamond Hands"}}, nil
}

func (r *fakeRunner) Runs() int { return r.runs }

type fakeCounts map[string]int

func (f fakeCounts) EndingCounts() (map[string]int, error) { return f, nil }

func TestCommands_Handle(t *testing.T) {
	r := &fakeRunner{}
	c := &Commands{Runner: r}
	ctx := context.Background()

	assert.Equal(t, helpText, c.Handle(ctx, "/help"))
	assert.Contains(t, c.Handle(ctx, "/play@CoinLifeBot"), "Diamond Hands")
	assert.Equal(t, "1 sessions played", c.Handle(ctx, "/runs"))
	assert.Equal(t, "no database configured", c.Handle(ctx, "/endings"))
	assert.Contains(t, c.Handle(ctx, "/moon"), "unknown command")

	c.Endings = fakeCounts{"Rekt": 1, "Diamond Hands": 3, "Apex": 1}
	lines := strings.Split(strings.TrimSpace(c.Handle(ctx, "/endings")), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Diamond Hands")
	assert.Contains(t, lines[1], "Apex")
	assert.Contains(t, lines[2], "Rekt")
}
