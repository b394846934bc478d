package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	contextPkg "DishaAssistant/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type Postgres struct {
	db  *sqlx.DB
	log *logrus.Logger
	now func() time.Time
}

// NewPostgres stores values in a single disha_kv table. Call Migrate once
// before first use.
func NewPostgres(db *sqlx.DB, log *logrus.Logger) *Postgres {
	return &Postgres{
		db:  db,
		log: log,
		now: time.Now,
	}
}

func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, queryCreateKVTable); err != nil {
		p.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to create key-value table")
		return err
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"key": key,
		"now": p.now(),
	}

	query, args, err := sqlx.Named(queryGetValue, argsKV)
	if err != nil {
		p.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Get named query preparation err")
		return nil, err
	}
	query = p.db.Rebind(query)

	var value []byte
	if err := p.db.QueryRowxContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		p.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"key":        key,
			"error":      err.Error(),
		}).Error("Get execution err")
		return nil, err
	}

	return value, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	requestID := contextPkg.GetRequestID(ctx)

	expiresAt := sql.NullTime{}
	if ttl > 0 {
		expiresAt = sql.NullTime{Time: p.now().Add(ttl), Valid: true}
	}

	argsKV := map[string]interface{}{
		"key":        key,
		"value":      value,
		"expires_at": expiresAt,
	}

	query, args, err := sqlx.Named(queryUpsertValue, argsKV)
	if err != nil {
		p.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Set named query preparation err")
		return err
	}
	query = p.db.Rebind(query)

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		p.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"key":        key,
			"error":      err.Error(),
		}).Error("Database error when storing value")
		return err
	}

	return nil
}

func (p *Postgres) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"keys": pq.StringArray(keys),
	}

	query, args, err := sqlx.Named(queryDeleteValues, argsKV)
	if err != nil {
		p.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete named query preparation err")
		return err
	}
	query = p.db.Rebind(query)

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		p.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"keys":       keys,
			"error":      err.Error(),
		}).Error("Database error when deleting values")
		return err
	}

	return nil
}
