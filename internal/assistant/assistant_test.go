package assistant_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"automall/internal/assistant"
)

// blockingGen lets the test decide when the completion resolves.
type blockingGen struct {
	release chan string
	err     error
}

func (g *blockingGen) Generate(ctx context.Context, prompt string) (string, error) {
	text := <-g.release
	return text, g.err
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestAskAppendsReply(t *testing.T) {
	gen := &blockingGen{release: make(chan string, 1)}
	svc := assistant.NewService(gen)

	svc.Ask("sid", "¿Sirve un 2JZ para un drift build?")
	msgs, pending := svc.Conversation("sid")
	if len(msgs) != 1 || msgs[0].Role != assistant.RoleUser || !pending {
		t.Fatalf("want pending user message, got %+v pending=%v", msgs, pending)
	}

	gen.release <- "Sí, el 2JZ-GTE es ideal."
	waitFor(t, func() bool {
		msgs, pending := svc.Conversation("sid")
		return !pending && len(msgs) == 2
	})
	msgs, _ = svc.Conversation("sid")
	if msgs[1].Role != assistant.RoleAssistant || msgs[1].Text != "Sí, el 2JZ-GTE es ideal." {
		t.Fatalf("unexpected reply: %+v", msgs[1])
	}
}

func TestAskFailureAppendsFallback(t *testing.T) {
	gen := &blockingGen{release: make(chan string, 1), err: errors.New("boom")}
	svc := assistant.NewService(gen)

	svc.Ask("sid", "hola")
	gen.release <- ""
	waitFor(t, func() bool {
		msgs, pending := svc.Conversation("sid")
		return !pending && len(msgs) == 2
	})
	msgs, _ := svc.Conversation("sid")
	if msgs[1].Text != assistant.FallbackMessage {
		t.Fatalf("want fallback message, got %q", msgs[1].Text)
	}
}

func TestResetDiscardsInFlightReply(t *testing.T) {
	gen := &blockingGen{release: make(chan string, 1)}
	svc := assistant.NewService(gen)

	svc.Ask("sid", "hola")
	svc.Reset("sid") // panel closed while the request is in flight
	gen.release <- "respuesta tardía"

	// Give the goroutine a chance to (wrongly) append.
	time.Sleep(50 * time.Millisecond)
	msgs, pending := svc.Conversation("sid")
	if len(msgs) != 0 || pending {
		t.Fatalf("stale reply must be discarded, got %+v pending=%v", msgs, pending)
	}
}

func TestClientGenerate(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hola cliente"}]}}]}`))
	}))
	defer srv.Close()

	c := assistant.NewClient("test-key", srv.URL)
	text, err := c.Generate(context.Background(), "pregunta")
	if err != nil {
		t.Fatal(err)
	}
	if text != "hola cliente" {
		t.Fatalf("want reply text, got %q", text)
	}
	if gotPath != "/v1beta/models/gemini-2.0-flash:generateContent" {
		t.Fatalf("unexpected path %q", gotPath)
	}
}

func TestClientGenerateErrorStatuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := assistant.NewClient("test-key", srv.URL)
	if _, err := c.Generate(context.Background(), "pregunta"); err == nil {
		t.Fatal("non-200 status must surface as an error")
	}
}
