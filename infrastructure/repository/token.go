package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/cogs-reconciler-api/infrastructure/database/postgres"
)

const keysTable = "keys"

// RefreshTokenRepository persiste o refresh token do QuickBooks. A tabela é
// append-only: vale sempre a linha mais recente. O token é lido uma vez no
// início da execução e regravado no fim quando a Intuit o rotaciona.
type RefreshTokenRepository interface {
	Latest() (string, error)
	Save(refreshToken string) error
}

type refreshTokenRepository struct {
	conn postgres.Queryer
}

func NewRefreshTokenRepository(conn postgres.Queryer) RefreshTokenRepository {
	return &refreshTokenRepository{
		conn: conn,
	}
}

func (r *refreshTokenRepository) Latest() (string, error) {
	query, args, err := squirrel.
		Select("refresh_token").
		From(keysTable).
		OrderBy("id DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", errors.Wrap(err, "erro ao construir a query")
	}

	var token string
	if err := r.conn.QueryRow(query, args...).Scan(&token); err != nil {
		if err == sql.ErrNoRows {
			return "", errors.New("nenhum refresh token encontrado na tabela keys")
		}
		return "", errors.Wrap(err, "erro ao ler refresh token")
	}

	return token, nil
}

func (r *refreshTokenRepository) Save(refreshToken string) error {
	query, args, err := squirrel.
		Insert(keysTable).
		Columns("refresh_token").
		Values(refreshToken).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "erro ao gravar refresh token")
	}

	return nil
}
