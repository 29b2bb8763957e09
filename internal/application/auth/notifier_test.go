package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotogestor/fotogestor-api/internal/application/auth"
)

func TestNotifier_EntregaParaTodosOsAssinantes(t *testing.T) {
	n := auth.NewNotifier()
	ch1, cancel1 := n.Subscribe()
	defer cancel1()
	ch2, cancel2 := n.Subscribe()
	defer cancel2()

	n.Publish(auth.Event{Type: auth.EventLogin, UserID: "u-1", Email: "ana@example.com", At: time.Now()})

	for _, ch := range []<-chan auth.Event{ch1, ch2} {
		select {
		case e := <-ch:
			assert.Equal(t, auth.EventLogin, e.Type)
			assert.Equal(t, "u-1", e.UserID)
		case <-time.After(time.Second):
			t.Fatal("evento não entregue ao assinante")
		}
	}
}

func TestNotifier_CancelFechaOCanal(t *testing.T) {
	n := auth.NewNotifier()
	ch, cancel := n.Subscribe()

	cancel()
	_, open := <-ch
	assert.False(t, open)

	// Cancelar de novo é inofensivo.
	cancel()
	n.Publish(auth.Event{Type: auth.EventLogout, UserID: "u-1"})
}

// Assinante lento perde eventos em vez de travar quem publica.
func TestNotifier_PublicacaoNaoBloqueia(t *testing.T) {
	n := auth.NewNotifier()
	_, cancel := n.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			n.Publish(auth.Event{Type: auth.EventLogin, UserID: "u-1"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish bloqueou com assinante lento")
	}
}

func TestNotifier_SemAssinantes(t *testing.T) {
	n := auth.NewNotifier()
	require.NotPanics(t, func() {
		n.Publish(auth.Event{Type: auth.EventLogin, UserID: "u-1"})
	})
}
