package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return employeeerrors.ErrEmployeeNameTaken
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return employeeerrors.ErrEmployeeNameTaken
	}

	return err
}
