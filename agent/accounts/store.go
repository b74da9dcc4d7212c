// Package accounts is the existing-user lookup collaborator. The intent
// handlers never consult it; the service only constructs it from the
// configured table identifier and health-checks the connection.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "alexbuddy/agent/contract"
)

type Config struct {
	DSN     string        `envconfig:"DSN" split_words:"true" required:"true"`
	Table   string        `envconfig:"TABLE" split_words:"true" default:"user_existing_accounts"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"5s"`
}

type accountRow struct {
	bun.BaseModel `bun:"table:user_existing_accounts,alias:ua"`

	Username  string    `bun:"username,pk"`
	PlanName  string    `bun:"plan_name"`
	CreatedAt time.Time `bun:"created_at"`
}

// Store looks up accounts in the configured Postgres table.
type Store struct {
	db    *bun.DB
	table string
}

var _ contractx.AccountStore = (*Store)(nil)

func NewStore(cfg Config) (*Store, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("accounts dsn is required")
	}
	table := strings.TrimSpace(cfg.Table)
	if table == "" {
		return nil, errors.New("accounts table is required")
	}

	opts := []pgdriver.Option{pgdriver.WithDSN(dsn)}
	if cfg.Timeout > 0 {
		opts = append(opts, pgdriver.WithTimeout(cfg.Timeout))
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(opts...))
	db := bun.NewDB(sqldb, pgdialect.New())

	return &Store{db: db, table: table}, nil
}

func (s *Store) Lookup(ctx context.Context, username string) (*contractx.Account, error) {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: username is empty", contractx.ErrValidation)
	}

	row := new(accountRow)
	err := s.db.NewSelect().
		Model(row).
		ModelTableExpr("? AS ua", bun.Ident(s.table)).
		Where("ua.username = ?", trimmed).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", contractx.ErrAccountNotFound, trimmed)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	return &contractx.Account{
		Username:  row.Username,
		PlanName:  row.PlanName,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
