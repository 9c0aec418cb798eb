// Package postgres is the remote-authoritative store: settings as a single
// upserted config row, menu items as wrapped JSON payloads keyed by id, and
// requests/feedbacks as plain rows listed by descending timestamp. No
// transactionality is assumed across collections.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"concierge-system/internal/common/db"
	"concierge-system/internal/common/logger"
	"concierge-system/internal/domain"
	"concierge-system/internal/store"
)

type Store struct {
	conn *db.Conn
	lg   *logger.Logger
}

func New(conn *db.Conn, lg *logger.Logger) *Store {
	return &Store{conn: conn, lg: lg}
}

func (s *Store) Close() { s.conn.Close() }

func (s *Store) LoadSettings(ctx context.Context) (domain.HotelSettings, error) {
	var raw []byte
	err := s.conn.QueryRow(ctx, `SELECT config FROM settings WHERE id = 1`).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		s.lg.Warn("settings_load_failed", err, nil)
		return domain.DefaultSettings(), nil
	}
	var v domain.HotelSettings
	if err := json.Unmarshal(raw, &v); err != nil {
		s.lg.Warn("settings_malformed", err, nil)
		return domain.DefaultSettings(), nil
	}
	return v, nil
}

func (s *Store) SaveSettings(ctx context.Context, v domain.HotelSettings) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	_, err = s.conn.Exec(ctx, `
		INSERT INTO settings (id, config) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET config = EXCLUDED.config`, raw)
	return err
}

func (s *Store) LoadMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := s.conn.Query(ctx, `SELECT data FROM menu_items`)
	if err != nil {
		s.lg.Warn("menu_load_failed", err, nil)
		return domain.SeedMenuItems(), nil
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		var m domain.MenuItem
		if err := json.Unmarshal(raw, &m); err != nil {
			s.lg.Warn("menu_item_malformed", err, nil)
			continue
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		// First-time setup.
		return domain.SeedMenuItems(), nil
	}
	return items, nil
}

func (s *Store) SaveMenuItems(ctx context.Context, items []domain.MenuItem) error {
	// Whole-catalog replacement keeps the two strategies interchangeable.
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM menu_items`); err != nil {
		return fmt.Errorf("clear menu: %w", err)
	}
	for _, m := range items {
		raw, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("encode menu item %s: %w", m.ID, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO menu_items (id, data) VALUES ($1, $2)`, m.ID, raw); err != nil {
			return fmt.Errorf("insert menu item %s: %w", m.ID, err)
		}
	}
	return tx.Commit(ctx)
}

func (s *Store) LoadRequests(ctx context.Context) ([]domain.RequestItem, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT id, type, room_number, items, details, status, ts
		FROM requests ORDER BY ts DESC`)
	if err != nil {
		s.lg.Warn("requests_load_failed", err, nil)
		return []domain.RequestItem{}, nil
	}
	defer rows.Close()

	var out []domain.RequestItem
	for rows.Next() {
		var r domain.RequestItem
		var items []byte
		if err := rows.Scan(&r.ID, &r.Type, &r.RoomNumber, &items, &r.Details, &r.Status, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		if len(items) > 0 {
			_ = json.Unmarshal(items, &r.Items)
		}
		out = append(out, r)
	}
	if out == nil {
		out = []domain.RequestItem{}
	}
	return out, rows.Err()
}

func (s *Store) AppendRequest(ctx context.Context, r domain.RequestItem) error {
	var items []byte
	if len(r.Items) > 0 {
		var err error
		items, err = json.Marshal(r.Items)
		if err != nil {
			return fmt.Errorf("encode request items: %w", err)
		}
	}
	_, err := s.conn.Exec(ctx, `
		INSERT INTO requests (id, type, room_number, items, details, status, ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID, r.Type, r.RoomNumber, items, r.Details, r.Status, r.Timestamp)
	return err
}

func (s *Store) UpdateRequestStatus(ctx context.Context, id string, status domain.Status) error {
	tag, err := s.conn.Exec(ctx,
		`UPDATE requests SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) LoadFeedbacks(ctx context.Context) ([]domain.Feedback, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT id, room_number, rating, comment, ts
		FROM feedbacks ORDER BY ts DESC`)
	if err != nil {
		s.lg.Warn("feedbacks_load_failed", err, nil)
		return []domain.Feedback{}, nil
	}
	defer rows.Close()

	var out []domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		if err := rows.Scan(&f.ID, &f.RoomNumber, &f.Rating, &f.Comment, &f.Timestamp); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		out = append(out, f)
	}
	if out == nil {
		out = []domain.Feedback{}
	}
	return out, rows.Err()
}

func (s *Store) AppendFeedback(ctx context.Context, f domain.Feedback) error {
	_, err := s.conn.Exec(ctx, `
		INSERT INTO feedbacks (id, room_number, rating, comment, ts)
		VALUES ($1, $2, $3, $4, $5)`,
		f.ID, f.RoomNumber, f.Rating, f.Comment, f.Timestamp)
	return err
}

func (s *Store) LoadRoomNumber(ctx context.Context, sessionID string) (string, error) {
	var room string
	err := s.conn.QueryRow(ctx,
		`SELECT room_number FROM sessions WHERE id = $1`, sessionID).Scan(&room)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	return room, err
}

func (s *Store) SaveRoomNumber(ctx context.Context, sessionID, room string) error {
	_, err := s.conn.Exec(ctx, `
		INSERT INTO sessions (id, room_number) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET room_number = EXCLUDED.room_number`,
		sessionID, room)
	return err
}

var _ store.Store = (*Store)(nil)
