package auth

import (
	"errors"
	"strings"

	autherrors "github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return autherrors.ErrUsernameTaken
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return autherrors.ErrUsernameTaken
	}

	return err
}
