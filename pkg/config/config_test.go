package config_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotogestor/fotogestor-api/pkg/config"
)

func baseConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Supabase: config.SupabaseConfig{
			URL:     "https://env.supabase.co",
			AnonKey: "chave-env",
		},
		SettingsPath: filepath.Join(t.TempDir(), "settings.json"),
	}
}

// Precedência: runtime > persistido > env.
func TestResolve_Precedencia(t *testing.T) {
	cfg := baseConfig(t)

	// Só env.
	resolved := cfg.Resolve(nil)
	assert.Equal(t, "https://env.supabase.co", resolved.URL)
	assert.Equal(t, "chave-env", resolved.AnonKey)

	// Persistido cobre env.
	require.NoError(t, config.SavePersisted(cfg.SettingsPath, config.BackendCredentials{
		URL: "https://persistido.supabase.co", AnonKey: "chave-persistida",
	}))
	resolved = cfg.Resolve(nil)
	assert.Equal(t, "https://persistido.supabase.co", resolved.URL)
	assert.Equal(t, "chave-persistida", resolved.AnonKey)

	// Runtime cobre os dois.
	resolved = cfg.Resolve(&config.BackendCredentials{
		URL: "https://runtime.supabase.co", AnonKey: "chave-runtime",
	})
	assert.Equal(t, "https://runtime.supabase.co", resolved.URL)
	assert.Equal(t, "chave-runtime", resolved.AnonKey)
}

// Arquivo corrompido é ignorado; as credenciais de env continuam valendo.
func TestResolve_ArquivoCorrompido(t *testing.T) {
	cfg := baseConfig(t)
	require.NoError(t, os.WriteFile(cfg.SettingsPath, []byte("{nao é json"), 0o600))

	resolved := cfg.Resolve(nil)
	assert.Equal(t, "https://env.supabase.co", resolved.URL)
}

func TestLoadPersisted_ArquivoInexistente(t *testing.T) {
	creds, err := config.LoadPersisted(filepath.Join(t.TempDir(), "nao-existe.json"))
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestSupabaseConfig_Validate(t *testing.T) {
	ok := config.SupabaseConfig{URL: "https://x.supabase.co", AnonKey: "k"}
	assert.NoError(t, ok.Validate())

	assert.ErrorIs(t, config.SupabaseConfig{URL: "https://x.supabase.co"}.Validate(), config.ErrMissingCredentials)
	assert.ErrorIs(t, config.SupabaseConfig{AnonKey: "k"}.Validate(), config.ErrMissingCredentials)
}

func TestProbe_ChaveAceita(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/", r.URL.Path)
		assert.Equal(t, "chave-ok", r.Header.Get("apikey"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.NoError(t, config.Probe(context.Background(), srv.URL, "chave-ok"))
}

func TestProbe_ChaveRecusada(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	assert.ErrorIs(t, config.Probe(context.Background(), srv.URL, "chave-ruim"), config.ErrInvalidKey)
}

func TestProbe_BackendInacessivel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	assert.ErrorIs(t, config.Probe(context.Background(), url, "chave"), config.ErrUnreachable)
}

func TestProbe_CredenciaisAusentes(t *testing.T) {
	assert.ErrorIs(t, config.Probe(context.Background(), "", ""), config.ErrMissingCredentials)
}
