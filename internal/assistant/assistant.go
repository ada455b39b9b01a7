// Package assistant runs the chat-style technical advisor. Requests are
// fire-and-forget against the completion API; each conversation carries
// a generation token so a reply landing after the panel was closed is
// discarded instead of appended to a log nobody is looking at.
package assistant

import (
	"context"
	"sync"
)

// Persona prefix sent ahead of every customer question.
const personaPrompt = `Eres el Asistente Técnico Experto de "www.automallmotores.cl" (Auto Mall Motores).
Tu objetivo es asesorar a clientes sobre la compra de motores y repuestos automotrices.
La tienda es la referente digital de Auto Mall en Alto Hospicio e Iquique.
Responde siempre de forma profesional, directa y con conocimiento técnico profundo.
Promociona siempre el catálogo disponible en automallmotores.cl.
Pregunta del cliente: `

// FallbackMessage is shown for any API failure; there is no retry.
const FallbackMessage = "Lo siento, tuve un problema conectando con mi base de conocimientos técnicos de automallmotores.cl. ¿Puedes intentarlo de nuevo?"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role string
	Text string
}

// Generator is the completion call; satisfied by *Client.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type conversation struct {
	generation int
	pending    bool
	messages   []Message
}

type Service struct {
	mu    sync.Mutex
	gen   Generator
	convs map[string]*conversation
}

func NewService(gen Generator) *Service {
	return &Service{gen: gen, convs: map[string]*conversation{}}
}

// Ask records the question and kicks off the completion call. The call
// has no timeout and no retry; it resolves into either the reply or the
// fallback message, unless the conversation was reset meanwhile.
func (s *Service) Ask(sid, question string) {
	s.mu.Lock()
	conv := s.convLocked(sid)
	conv.messages = append(conv.messages, Message{Role: RoleUser, Text: question})
	conv.pending = true
	generation := conv.generation
	s.mu.Unlock()

	go func() {
		text, err := s.gen.Generate(context.Background(), personaPrompt+question)
		if err != nil {
			text = FallbackMessage
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		conv := s.convLocked(sid)
		if conv.generation != generation {
			// Panel closed or conversation reset while in flight.
			return
		}
		conv.pending = false
		conv.messages = append(conv.messages, Message{Role: RoleAssistant, Text: text})
	}()
}

// Conversation returns the message log and whether a reply is pending.
func (s *Service) Conversation(sid string) ([]Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv := s.convLocked(sid)
	return append([]Message(nil), conv.messages...), conv.pending
}

// Reset clears the log and bumps the generation so any in-flight reply
// is dropped on arrival.
func (s *Service) Reset(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv := s.convLocked(sid)
	conv.generation++
	conv.pending = false
	conv.messages = nil
}

func (s *Service) convLocked(sid string) *conversation {
	conv, ok := s.convs[sid]
	if !ok {
		conv = &conversation{}
		s.convs[sid] = conv
	}
	return conv
}
