// Package supabase adaptadores do backend hospedado: consultas às tabelas
// remotas via API REST (PostgREST) e autenticação via serviço de auth (GoTrue).
// Toda a persistência do sistema passa por aqui: não existe conexão direta
// com banco de dados.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fotogestor/fotogestor-api/internal/domain"
	"github.com/fotogestor/fotogestor-api/pkg/reqctx"
)

const (
	restBasePath = "/rest/v1"
	authBasePath = "/auth/v1"

	// maxBodyBytes limite de leitura das respostas do backend.
	maxBodyBytes = 1 << 20 // 1 MiB
)

// Config credenciais de conexão com o projeto hospedado.
type Config struct {
	URL     string // ex.: https://xyzcompany.supabase.co
	AnonKey string // chave pública (anon) do projeto
}

// Client cliente HTTP fino sobre a API REST do backend hospedado.
// Sem retry nem backoff: uma chamada falhada volta imediatamente como erro
// para a camada de aplicação decidir (degradar ou exibir).
type Client struct {
	mu         sync.RWMutex
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// NewClient constrói o cliente. Timeout de rede de 10 s por chamada.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		anonKey: cfg.AnonKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// UpdateCredentials troca URL e chave em runtime (fluxo de /api/setup).
// Chamadas em andamento terminam com as credenciais antigas.
func (c *Client) UpdateCredentials(cfg Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimRight(cfg.URL, "/")
	c.anonKey = cfg.AnonKey
}

func (c *Client) credentials() (baseURL, anonKey string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL, c.anonKey
}

// APIError erro estruturado devolvido pelo backend (envelope PostgREST/GoTrue).
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("backend HTTP %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("backend HTTP %d: %s", e.Status, e.Message)
}

// errorEnvelope cobre os dois formatos de erro do backend:
// PostgREST: {"message","code","details"}; GoTrue: {"error","error_description","msg"}.
type errorEnvelope struct {
	Message          string `json:"message"`
	Code             string `json:"code"`
	Msg              string `json:"msg"`
	ErrorField       string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (env errorEnvelope) text() string {
	switch {
	case env.Message != "":
		return env.Message
	case env.ErrorDescription != "":
		return env.ErrorDescription
	case env.Msg != "":
		return env.Msg
	case env.ErrorField != "":
		return env.ErrorField
	}
	return ""
}

// do executa uma chamada contra o backend e decodifica a resposta em out
// (quando out != nil). body é serializado como JSON quando não nulo.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	baseURL, anonKey := c.credentials()
	u := baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("backend: criar request: %w", err)
	}
	req.Header.Set("apikey", anonKey)
	if tok := reqctx.AccessToken(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	} else {
		req.Header.Set("Authorization", "Bearer "+anonKey)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost || method == http.MethodPatch {
		// Devolver a(s) linha(s) afetada(s) no corpo da resposta.
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("backend: chamada cancelada: %w", ctx.Err())
		}
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("backend: ler resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env errorEnvelope
		_ = json.Unmarshal(raw, &env)
		msg := env.text()
		if msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		return &APIError{Status: resp.StatusCode, Code: env.Code, Message: msg}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("backend: deserializar resposta: %w", err)
	}
	return nil
}
