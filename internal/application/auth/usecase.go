// Package auth casos de uso de autenticação. Cadastro, login, logout e
// sessão são delegados ao serviço de autenticação hospedado; aqui ficam a
// criação do perfil do fotógrafo na primeira entrada e o stream de eventos
// de login/logout.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fotogestor/fotogestor-api/internal/application/dto"
	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
	"github.com/fotogestor/fotogestor-api/internal/domain/repository"
	"github.com/fotogestor/fotogestor-api/pkg/reqctx"
)

// UseCase proxy do serviço de autenticação hospedado.
type UseCase struct {
	gateway       Gateway
	photographers repository.PhotographerRepository
	notifier      *Notifier
}

// NewUseCase constrói o caso de uso.
func NewUseCase(gateway Gateway, photographers repository.PhotographerRepository, notifier *Notifier) *UseCase {
	return &UseCase{gateway: gateway, photographers: photographers, notifier: notifier}
}

// Notifier expõe o stream de eventos de autenticação.
func (uc *UseCase) Notifier() *Notifier {
	return uc.notifier
}

// SignUp cria a conta no serviço hospedado com os metadados de perfil.
// Se o projeto devolve sessão imediata (sem confirmação de e-mail), o perfil
// do fotógrafo é criado na hora e o evento de login é publicado.
func (uc *UseCase) SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.SessionResponse, error) {
	meta := map[string]string{"name": in.Name}
	if in.Phone != "" {
		meta["phone"] = in.Phone
	}
	session, err := uc.gateway.SignUp(ctx, in.Email, in.Password, meta)
	if err != nil {
		return nil, err
	}
	if session.AccessToken != "" {
		if _, err := uc.ensurePhotographer(ctx, session); err != nil {
			return nil, err
		}
		uc.notifier.Publish(Event{Type: EventLogin, UserID: session.User.ID, Email: session.User.Email, At: time.Now()})
	}
	return toSessionResponse(session), nil
}

// SignIn autentica no serviço hospedado e publica o evento de login.
func (uc *UseCase) SignIn(ctx context.Context, in dto.LoginRequest) (*dto.SessionResponse, error) {
	session, err := uc.gateway.SignIn(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if _, err := uc.ensurePhotographer(ctx, session); err != nil {
		return nil, err
	}
	uc.notifier.Publish(Event{Type: EventLogin, UserID: session.User.ID, Email: session.User.Email, At: time.Now()})
	return toSessionResponse(session), nil
}

// SignOut revoga a sessão no serviço hospedado e publica o evento de logout.
func (uc *UseCase) SignOut(ctx context.Context, accessToken, userID string) error {
	if err := uc.gateway.SignOut(ctx, accessToken); err != nil {
		return err
	}
	uc.notifier.Publish(Event{Type: EventLogout, UserID: userID, At: time.Now()})
	return nil
}

// Session devolve o usuário dono do access token.
func (uc *UseCase) Session(ctx context.Context, accessToken string) (*dto.UserResponse, error) {
	user, err := uc.gateway.CurrentUser(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Photographer devolve o perfil do fotógrafo do usuário, criando-o se ainda
// não existir (conta confirmada fora do fluxo de login).
func (uc *UseCase) Photographer(ctx context.Context, user *User) (*entity.Photographer, error) {
	p, err := uc.photographers.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}
	return uc.photographers.Create(ctx, &entity.Photographer{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Name:      user.Metadata["name"],
		Email:     user.Email,
		Phone:     user.Metadata["phone"],
		CreatedAt: time.Now().UTC(),
	})
}

// UpdateProfile altera nome e telefone do perfil do fotógrafo. O perfil é
// criado na hora se ainda não existir, como em Photographer.
func (uc *UseCase) UpdateProfile(ctx context.Context, user *User, in dto.ProfileUpdateRequest) (*entity.Photographer, error) {
	p, err := uc.Photographer(ctx, user)
	if err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Phone = in.Phone
	if err := uc.photographers.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ensurePhotographer garante a linha de perfil usando o token da sessão
// recém-emitida, para que o backend aplique as políticas de acesso do próprio
// usuário.
func (uc *UseCase) ensurePhotographer(ctx context.Context, session *Session) (*entity.Photographer, error) {
	ctx = reqctx.WithAccessToken(ctx, session.AccessToken)
	return uc.Photographer(ctx, &session.User)
}

func toSessionResponse(s *Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresIn:    s.ExpiresIn,
		User:         *toUserResponse(&s.User),
	}
}

func toUserResponse(u *User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Metadata["name"],
		Phone: u.Metadata["phone"],
	}
}
