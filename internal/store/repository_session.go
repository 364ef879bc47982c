package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/models"
)

const sessionsTable = "sessions"

type sessionRepository struct {
	*DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewSessionRepository returns the SQLite implementation of
// [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  logger,
	}
}

func (r *sessionRepository) GetSession(ctx context.Context, scope string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("session_id", "created_at").
		From(sessionsTable).
		Where(sq.Eq{"scope": scope}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.GetSession").Msg("failed to build select query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	session := models.Session{Scope: scope}
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&session.ID, &session.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.GetSession").
			Str("scope", scope).
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Replace(sessionsTable).
		Columns("scope", "session_id", "created_at").
		Values(session.Scope, session.ID, session.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.SaveSession").Msg("failed to build replace query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("scope", session.Scope).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, scope string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(sessionsTable).
		Where(sq.Eq{"scope": scope}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteSession").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Str("scope", scope).
			Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
