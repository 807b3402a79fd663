package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/shared/constant"
	"frontdesk/shared/logger"
	"frontdesk/shared/timezone"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
)

const (
	dialectPostgres = "postgres"
	colKey          = "key"
	colPayload      = "payload"
	colUpdatedAt    = "updated_at"
)

type postgresStore struct {
	db    *postgres.Connection
	otel  otel.Otel
	table string
}

func NewPostgresStore(db *postgres.Connection, table string, otl otel.Otel) Store {
	return &postgresStore{db: db, otel: otl, table: table}
}

func (p *postgresStore) Save(ctx context.Context, key string, data []byte) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelSnapshotScopeName, constant.OtelSnapshotScopeName+".postgres.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, args, err := goqu.Dialect(dialectPostgres).
		Insert(p.table).
		Rows(goqu.Record{colKey: key, colPayload: data, colUpdatedAt: timezone.Now()}).
		OnConflict(goqu.DoUpdate(colKey, goqu.Record{
			colPayload:   goqu.L("EXCLUDED." + colPayload),
			colUpdatedAt: goqu.L("EXCLUDED." + colUpdatedAt),
		})).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build snapshot upsert: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = p.db.Write.ExecContext(ctx, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}

	return nil
}

func (p *postgresStore) Load(ctx context.Context, key string) (data []byte, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelSnapshotScopeName, constant.OtelSnapshotScopeName+".postgres.Load")
	defer scope.End()

	query, args, err := goqu.Dialect(dialectPostgres).
		From(p.table).
		Select(colPayload).
		Where(goqu.C(colKey).Eq(key)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot select: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = p.db.Read.GetContext(ctx, &data, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		scope.TraceError(err)
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}

	return data, nil
}
