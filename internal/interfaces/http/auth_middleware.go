package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fotogestor/fotogestor-api/internal/application/dto"
	"github.com/fotogestor/fotogestor-api/pkg/jwt"
	"github.com/fotogestor/fotogestor-api/pkg/reqctx"
)

// Locals keys no Fiber.
const (
	LocalUserID      = "user_id"
	LocalUserEmail   = "user_email"
	LocalAccessToken = "access_token"
)

// SessionResolver resolve o dono de um access token no serviço hospedado.
// Usado quando o segredo JWT do projeto não está configurado localmente.
type SessionResolver interface {
	Session(ctx context.Context, accessToken string) (*dto.UserResponse, error)
}

// AuthMiddleware valida o Bearer Token dos access tokens do serviço hospedado.
// Com jwtSecret configurado a assinatura é verificada localmente (HS256);
// sem segredo, o token é resolvido contra o próprio serviço de autenticação.
// Em ambos os casos o token segue para o backend em cada chamada, que aplica
// as políticas de acesso por linha.
func AuthMiddleware(jwtSecret string, sessions SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}

		var userID, email string
		if jwtSecret != "" {
			var err error
			userID, email, err = jwt.Parse(jwtSecret, tokenString)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
			}
		} else {
			user, err := sessions.Session(c.UserContext(), tokenString)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
			}
			userID, email = user.ID, user.Email
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserEmail, email)
		c.Locals(LocalAccessToken, tokenString)
		return c.Next()
	}
}

// GetUserID devolve o UserID do contexto (após o middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUserEmail devolve o e-mail do contexto (após o middleware de auth).
func GetUserEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserEmail).(string)
	return s
}

// GetAccessToken devolve o access token bruto (após o middleware de auth).
func GetAccessToken(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalAccessToken).(string)
	return s
}

// requestCtx contexto da requisição com o access token anexado; as chamadas
// ao backend saem com o token do usuário, não com a chave anônima.
func requestCtx(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if tok := GetAccessToken(c); tok != "" {
		ctx = reqctx.WithAccessToken(ctx, tok)
	}
	return ctx
}
