package curriculum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kolearn/kolearn/internal/catalog"
)

const dbTimeout = 5 * time.Second

// PostgresStore is a PostgreSQL-backed Store. Lessons and preferences are
// stored as JSONB; the scalar columns exist for listing and filtering.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates the store and ensures its schema exists.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS curricula (
			id          TEXT PRIMARY KEY,
			user_id     TEXT NOT NULL,
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			level       INT NOT NULL,
			goal        TEXT NOT NULL,
			duration    INT NOT NULL,
			progress    INT NOT NULL DEFAULT 0,
			lessons     JSONB NOT NULL,
			preferences JSONB NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS curricula_user_id_idx ON curricula (user_id, created_at DESC);
	`); err != nil {
		return nil, fmt.Errorf("ensure curricula schema: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Save(ctx context.Context, c Curriculum) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	lessons, err := json.Marshal(c.Lessons)
	if err != nil {
		return fmt.Errorf("marshal lessons: %w", err)
	}
	prefs, err := json.Marshal(c.Preferences)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO curricula (id, user_id, title, description, level, goal, duration, progress, lessons, preferences, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (id) DO UPDATE SET
		   progress = EXCLUDED.progress,
		   lessons = EXCLUDED.lessons,
		   updated_at = EXCLUDED.updated_at`,
		c.ID, c.UserID, c.Title, c.Description, c.Level, string(c.Goal),
		c.EstimatedDuration, c.Progress, lessons, prefs, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save curriculum: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Curriculum, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	row := s.pool.QueryRow(ctx,
		`SELECT id, user_id, title, description, level, goal, duration, progress, lessons, preferences, created_at, updated_at
		 FROM curricula
		 WHERE id = $1`,
		id,
	)
	c, err := scanCurriculum(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Curriculum{}, ErrNotFound
		}
		return Curriculum{}, fmt.Errorf("get curriculum: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID string) ([]Curriculum, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, title, description, level, goal, duration, progress, lessons, preferences, created_at, updated_at
		 FROM curricula
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list curricula: %w", err)
	}
	defer rows.Close()

	list := []Curriculum{}
	for rows.Next() {
		c, err := scanCurriculum(rows)
		if err != nil {
			return nil, fmt.Errorf("scan curriculum: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate curricula: %w", err)
	}
	return list, nil
}

func (s *PostgresStore) CompleteLesson(ctx context.Context, curriculumID, lessonID string) (Curriculum, error) {
	c, err := s.Get(ctx, curriculumID)
	if err != nil {
		return Curriculum{}, err
	}
	if err := c.CompleteLesson(lessonID); err != nil {
		return Curriculum{}, err
	}
	if err := s.Save(ctx, c); err != nil {
		return Curriculum{}, err
	}
	return c, nil
}

func scanCurriculum(row pgx.Row) (Curriculum, error) {
	var c Curriculum
	var goal string
	var lessons, prefs []byte

	if err := row.Scan(
		&c.ID, &c.UserID, &c.Title, &c.Description, &c.Level, &goal,
		&c.EstimatedDuration, &c.Progress, &lessons, &prefs, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return Curriculum{}, err
	}

	c.Goal = catalog.GoalID(goal)
	if err := json.Unmarshal(lessons, &c.Lessons); err != nil {
		return Curriculum{}, fmt.Errorf("unmarshal lessons: %w", err)
	}
	if err := json.Unmarshal(prefs, &c.Preferences); err != nil {
		return Curriculum{}, fmt.Errorf("unmarshal preferences: %w", err)
	}
	return c, nil
}
