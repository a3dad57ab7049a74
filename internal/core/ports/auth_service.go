package ports

import (
	"context"

	"github.com/shoplane/catalog-service/internal/core/domain"
)

type AuthService interface {
	// Register creates an account and returns a signed identity token
	// alongside the created user.
	Register(ctx context.Context, username, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// CurrentUser resolves the user behind a verified token subject.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
