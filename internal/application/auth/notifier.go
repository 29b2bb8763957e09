package auth

import (
	"sync"
	"time"
)

// EventType tipo de mudança de estado de autenticação.
type EventType string

const (
	EventLogin  EventType = "login"
	EventLogout EventType = "logout"
)

// Event mudança de estado de autenticação publicada aos assinantes.
type Event struct {
	Type   EventType `json:"type"`
	UserID string    `json:"user_id"`
	Email  string    `json:"email,omitempty"`
	At     time.Time `json:"at"`
}

// Notifier stream de mudanças de estado de autenticação em processo.
// A UI (ou qualquer componente interno) assina para reagir a login/logout.
// Publicação não bloqueante: assinante lento perde eventos em vez de travar
// o fluxo de autenticação.
type Notifier struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

// NewNotifier constrói o notificador.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]chan Event)}
}

// Subscribe registra um assinante. O segundo retorno cancela a assinatura e
// fecha o canal; deve ser chamado quando o assinante deixa de escutar.
func (n *Notifier) Subscribe() (<-chan Event, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	ch := make(chan Event, 8)
	n.subs[id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if c, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// Publish entrega o evento a todos os assinantes sem bloquear.
func (n *Notifier) Publish(e Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
