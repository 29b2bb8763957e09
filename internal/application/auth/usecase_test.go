package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotogestor/fotogestor-api/internal/application/auth"
	"github.com/fotogestor/fotogestor-api/internal/application/dto"
	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
)

type fakePhotographerRepo struct {
	byUserID map[string]*entity.Photographer
	created  []*entity.Photographer
	updated  []*entity.Photographer
}

func (f *fakePhotographerRepo) GetByUserID(_ context.Context, userID string) (*entity.Photographer, error) {
	return f.byUserID[userID], nil
}

func (f *fakePhotographerRepo) Create(_ context.Context, p *entity.Photographer) (*entity.Photographer, error) {
	f.created = append(f.created, p)
	if f.byUserID == nil {
		f.byUserID = map[string]*entity.Photographer{}
	}
	f.byUserID[p.UserID] = p
	return p, nil
}

func (f *fakePhotographerRepo) Update(_ context.Context, p *entity.Photographer) error {
	f.updated = append(f.updated, p)
	return nil
}

func TestUpdateProfile_AlteraNomeETelefone(t *testing.T) {
	repo := &fakePhotographerRepo{byUserID: map[string]*entity.Photographer{
		"user-1": {
			ID:        "ph-1",
			UserID:    "user-1",
			Name:      "Ana",
			Email:     "ana@example.com",
			CreatedAt: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		},
	}}
	uc := auth.NewUseCase(nil, repo, auth.NewNotifier())

	out, err := uc.UpdateProfile(context.Background(), &auth.User{ID: "user-1", Email: "ana@example.com"}, dto.ProfileUpdateRequest{
		Name:  "Ana Souza",
		Phone: "11987654321",
	})
	require.NoError(t, err)

	require.Len(t, repo.updated, 1)
	assert.Equal(t, "ph-1", out.ID)
	assert.Equal(t, "user-1", out.UserID)
	assert.Equal(t, "Ana Souza", out.Name)
	assert.Equal(t, "11987654321", out.Phone)
	assert.Equal(t, "ana@example.com", out.Email)
	assert.Empty(t, repo.created)
}

// Conta confirmada fora do fluxo de login ainda não tem perfil; a edição
// cria a linha antes de gravar.
func TestUpdateProfile_CriaPerfilQuandoAusente(t *testing.T) {
	repo := &fakePhotographerRepo{}
	uc := auth.NewUseCase(nil, repo, auth.NewNotifier())

	out, err := uc.UpdateProfile(context.Background(), &auth.User{ID: "user-2", Email: "bia@example.com"}, dto.ProfileUpdateRequest{
		Name: "Bia Lima",
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, "user-2", out.UserID)
	assert.Equal(t, "Bia Lima", out.Name)
	assert.Equal(t, "bia@example.com", out.Email)
	assert.NotEmpty(t, out.ID)
}
