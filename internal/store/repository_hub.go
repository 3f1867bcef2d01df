// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/models"
)

// hubRepository is the SQL implementation of [HubRepository]. Queries are
// built with squirrel using the placeholder format of the connection's
// dialect, so the same code serves SQLite and PostgreSQL.
type hubRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewHubRepository constructs a [HubRepository] on top of db.
func NewHubRepository(db *DB, logger *logger.Logger) HubRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating hub repository")
	return &hubRepository{
		db:     db,
		logger: logger,
	}
}

func (r *hubRepository) CreateDocument(ctx context.Context, docID string, createdAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertDocumentQuery(r.db.builder, docID, createdAt.UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.retry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*hubRepository.CreateDocument").Msg("error inserting document")
		if isUniqueViolation(err) {
			return ErrDocumentAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *hubRepository) DocumentExists(ctx context.Context, docID string) (bool, error) {
	query, args, err := buildDocumentExistsQuery(r.db.builder, docID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exists(ctx, "*hubRepository.DocumentExists", query, args)
}

func (r *hubRepository) SetPeerOnline(ctx context.Context, docID, peerID string, seen time.Time) (bool, error) {
	var changed bool
	err := r.inTx(ctx, "*hubRepository.SetPeerOnline", func(tx *sql.Tx) error {
		known, online, err := r.peerStatus(ctx, tx, docID, peerID)
		if err != nil {
			return err
		}
		changed = !known || !online

		seen := seen.UTC()
		var query string
		var args []any
		if known {
			query, args, err = buildUpdatePeerQuery(r.db.builder, docID, peerID, true, &seen)
		} else {
			query, args, err = buildInsertPeerQuery(r.db.builder, docID, peerID, seen)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})

	return changed, err
}

func (r *hubRepository) SetPeerOffline(ctx context.Context, docID, peerID string) (bool, error) {
	var changed bool
	err := r.inTx(ctx, "*hubRepository.SetPeerOffline", func(tx *sql.Tx) error {
		known, online, err := r.peerStatus(ctx, tx, docID, peerID)
		if err != nil || !known || !online {
			return err
		}
		changed = true

		query, args, err := buildUpdatePeerQuery(r.db.builder, docID, peerID, false, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})

	return changed, err
}

func (r *hubRepository) peerStatus(ctx context.Context, tx *sql.Tx, docID, peerID string) (known, online bool, err error) {
	query, args, err := buildSelectPeerStatusQuery(r.db.builder, docID, peerID)
	if err != nil {
		return false, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = tx.QueryRowContext(ctx, query, args...).Scan(&online)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, false, nil
	case err != nil:
		return false, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return true, online, nil
}

func (r *hubRepository) ListPeers(ctx context.Context, docID string) ([]models.Peer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPeersQuery(r.db.builder, docID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*hubRepository.ListPeers").Msg("error selecting peers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	peers := make([]models.Peer, 0)
	for rows.Next() {
		var p models.Peer
		if err = rows.Scan(&p.ID, &p.Online, &p.LastSeen); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		peers = append(peers, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return peers, nil
}

func (r *hubRepository) ExpirePeers(ctx context.Context, before time.Time) ([]models.PeerRef, error) {
	before = before.UTC()

	var expired []models.PeerRef
	err := r.inTx(ctx, "*hubRepository.ExpirePeers", func(tx *sql.Tx) error {
		expired = expired[:0]

		query, args, err := buildSelectStalePeersQuery(r.db.builder, before)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		for rows.Next() {
			var ref models.PeerRef
			if err = rows.Scan(&ref.DocumentID, &ref.PeerID); err != nil {
				rows.Close()
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			expired = append(expired, ref)
		}
		rows.Close()
		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if len(expired) == 0 {
			return nil
		}

		query, args, err = buildExpirePeersQuery(r.db.builder, before)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return expired, nil
}

func (r *hubRepository) SaveBlob(ctx context.Context, id models.ContentID, data []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBlobQuery(r.db.builder, id, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.retry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*hubRepository.SaveBlob").Str("content_id", id.Short()).Msg("error inserting blob")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *hubRepository) GetBlob(ctx context.Context, id models.ContentID) ([]byte, error) {
	query, args, err := buildSelectBlobQuery(r.db.builder, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&data)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*hubRepository.GetBlob").Msg("error selecting blob")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return data, nil
}

func (r *hubRepository) HasBlob(ctx context.Context, id models.ContentID) (bool, error) {
	query, args, err := buildBlobExistsQuery(r.db.builder, id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exists(ctx, "*hubRepository.HasBlob", query, args)
}

func (r *hubRepository) LatestEntry(ctx context.Context, docID, key string) (models.HubEvent, error) {
	query, args, err := buildLatestEntryQuery(r.db.builder, docID, key)
	if err != nil {
		return models.HubEvent{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ev, err := scanEvent(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.HubEvent{}, ErrNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*hubRepository.LatestEntry").Msg("error selecting latest entry")
		return models.HubEvent{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return ev, nil
}

func (r *hubRepository) AppendEvent(ctx context.Context, docID string, ev models.HubEvent) (int64, error) {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}
	ev.CreatedAt = ev.CreatedAt.UTC()

	query, args, err := buildInsertEventQuery(r.db.builder, docID, ev)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var seq int64
	err = r.db.retry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&seq)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*hubRepository.AppendEvent").Str("kind", string(ev.Kind)).Msg("error inserting event")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return seq, nil
}

func (r *hubRepository) ListEvents(ctx context.Context, docID string, after int64, limit uint64) ([]models.HubEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEventsQuery(r.db.builder, docID, after, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*hubRepository.ListEvents").Msg("error selecting events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.HubEvent, 0)
	for rows.Next() {
		ev, scanErr := scanEvent(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		events = append(events, ev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}

func (r *hubRepository) exists(ctx context.Context, fn, query string, args []any) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error checking existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return true, nil
}

func (r *hubRepository) inTx(ctx context.Context, fn string, op func(tx *sql.Tx) error) error {
	return r.db.retry(ctx, func() error {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error beginning transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}

		if err = op(tx); err != nil {
			_ = tx.Rollback()
			logger.FromContext(ctx).Err(err).Str("func", fn).Msg("transaction rolled back")
			return err
		}

		if err = tx.Commit(); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error committing transaction")
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (models.HubEvent, error) {
	var (
		ev    models.HubEvent
		kind  string
		entry models.Entry
		cid   string
	)

	if err := row.Scan(&ev.Seq, &kind, &entry.Key, &cid, &entry.Size, &entry.Author, &ev.PeerID, &ev.CreatedAt); err != nil {
		return models.HubEvent{}, err
	}

	ev.Kind = models.HubEventKind(kind)
	if ev.Kind == models.HubEventEntry {
		entry.ContentID = models.ContentID(cid)
		entry.Timestamp = ev.CreatedAt
		ev.Entry = &entry
	}

	return ev, nil
}
