package token

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DeliveryService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeliveryService/pkg/psqlbuilder"
)

// Repository доступ к offline API токенам магазинов.
// Токены пишутся установочным (OAuth) потоком, здесь только чтение.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория токенов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOfflineToken returns the newest offline access token for shop.
// ErrTokenNotFound when the shop has no stored token.
func (r *Repository) GetOfflineToken(ctx context.Context, shop string) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("access_token").
		From("shop_tokens").
		Where(squirrel.Eq{"shop": shop}).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: GetOfflineToken - build select query: %v", ErrBuildQuery, err)
	}

	var accessToken string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&accessToken)
	if err == sql.ErrNoRows {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: GetOfflineToken - scan token: %v", ErrExecQuery, err)
	}
	return accessToken, nil
}
