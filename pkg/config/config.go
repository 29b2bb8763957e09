// Package config configuração da aplicação lida via Viper (env e arquivos
// opcionais) mais as credenciais do backend hospedado, que podem ser trocadas
// em tempo de execução e persistidas em arquivo após validação.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Erros de credencial do backend hospedado.
var (
	// ErrMissingCredentials URL ou chave ausentes; a superfície protegida não
	// sobe, mas /api/setup continua disponível para corrigir.
	ErrMissingCredentials = errors.New("config: credenciais do backend ausentes")
	// ErrInvalidKey o backend respondeu 401/403 ao probe.
	ErrInvalidKey = errors.New("config: chave do backend inválida")
	// ErrUnreachable falha de rede ao contatar o backend.
	ErrUnreachable = errors.New("config: backend inacessível")
)

// Config agrupa a configuração da aplicação.
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Supabase SupabaseConfig

	// SettingsPath arquivo JSON com credenciais persistidas em runtime.
	SettingsPath string
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SupabaseConfig credenciais do projeto hospedado.
type SupabaseConfig struct {
	URL       string // ex.: https://xyzcompany.supabase.co
	AnonKey   string // chave pública (anon) do projeto
	JWTSecret string // segredo HS256 dos access tokens; vazio = sem verificação local
}

// BackendCredentials credenciais fornecidas em runtime via /api/setup.
// São persistidas em SettingsPath somente depois de um probe bem-sucedido.
type BackendCredentials struct {
	URL     string `json:"url"`
	AnonKey string `json:"anon_key"`
}

// Load lê a configuração de variáveis de ambiente e arquivos opcionais
// (.env, config.env). Env vars têm prioridade sobre arquivo.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignorado se não existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignorado se não existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "fotogestor"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Supabase: SupabaseConfig{
			URL:       getString(v, "SUPABASE_URL", ""),
			AnonKey:   getString(v, "SUPABASE_ANON_KEY", ""),
			JWTSecret: getString(v, "SUPABASE_JWT_SECRET", ""),
		},
		SettingsPath: getString(v, "SETTINGS_PATH", "fotogestor_settings.json"),
	}

	return cfg, nil
}

// Resolve aplica a precedência de credenciais: runtime > persistido > env.
// runtime pode ser nil; o arquivo persistido é ignorado se ausente ou corrompido.
func (c *Config) Resolve(runtime *BackendCredentials) SupabaseConfig {
	out := c.Supabase

	if persisted, err := LoadPersisted(c.SettingsPath); err == nil && persisted != nil {
		if persisted.URL != "" {
			out.URL = persisted.URL
		}
		if persisted.AnonKey != "" {
			out.AnonKey = persisted.AnonKey
		}
	}

	if runtime != nil {
		if runtime.URL != "" {
			out.URL = runtime.URL
		}
		if runtime.AnonKey != "" {
			out.AnonKey = runtime.AnonKey
		}
	}

	return out
}

// Validate confere que URL e chave estão presentes.
func (s SupabaseConfig) Validate() error {
	if s.URL == "" || s.AnonKey == "" {
		return ErrMissingCredentials
	}
	return nil
}

// LoadPersisted lê as credenciais persistidas. (nil, nil) se o arquivo não existe.
func LoadPersisted(path string) (*BackendCredentials, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: ler credenciais persistidas: %w", err)
	}
	var creds BackendCredentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("config: credenciais persistidas corrompidas: %w", err)
	}
	return &creds, nil
}

// SavePersisted grava as credenciais no arquivo de settings. Deve ser chamado
// somente depois de Probe bem-sucedido com essas credenciais.
func SavePersisted(path string, creds BackendCredentials) error {
	raw, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("config: serializar credenciais: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: criar diretório de settings: %w", err)
		}
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("config: gravar credenciais: %w", err)
	}
	return nil
}

// Probe valida as credenciais contra o backend com um GET na raiz da API REST.
// 401/403 indicam chave inválida; falha de rede indica backend inacessível.
// Qualquer outra resposta HTTP conta como credencial aceita.
func Probe(ctx context.Context, url, anonKey string) error {
	if url == "" || anonKey == "" {
		return ErrMissingCredentials
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(url, "/")+"/rest/v1/", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	req.Header.Set("apikey", anonKey)
	req.Header.Set("Authorization", "Bearer "+anonKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrInvalidKey
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
