// Package store persists summarized articles in a single-file SQLite
// database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sqlbuilder "github.com/huandu/go-sqlbuilder"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Article is a stored, already-summarized article row.
type Article struct {
	ID            string
	ImageURL      string
	Title         string
	OriginalTitle string
	Snippet       string
	Source        string
	PublishedAt   time.Time
}

// Store handles all database operations with a shared connection pool.
type Store struct {
	db *sql.DB
}

func Open(database string) (*Store, error) {
	// Enable foreign keys and WAL mode
	db, err := sql.Open("sqlite", fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", database))
	if err != nil {
		return nil, err
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(time.Hour)

	if _, err := db.Exec(`
		PRAGMA busy_timeout = 5000;
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;
	`); err != nil {
		return nil, fmt.Errorf("failed to set pragmas: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// UpsertArticles writes a batch of articles, replacing rows that share
// an id with the fresh version.
func (s *Store) UpsertArticles(ctx context.Context, articles []Article) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin error: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	for _, article := range articles {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO articles (id, image_url, title, original_title, snippet, source, published_at, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET
				image_url = excluded.image_url,
				title = excluded.title,
				original_title = excluded.original_title,
				snippet = excluded.snippet,
				source = excluded.source,
				published_at = excluded.published_at`,
			article.ID,
			article.ImageURL,
			article.Title,
			article.OriginalTitle,
			article.Snippet,
			article.Source,
			article.PublishedAt,
			now,
		)
		if err != nil {
			return fmt.Errorf("insert error: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit error: %w", err)
	}

	log.WithFields(log.Fields{
		"count": len(articles),
	}).Info("Stored articles")

	return nil
}

// ListArticles returns the newest articles first, up to limit.
func (s *Store) ListArticles(ctx context.Context, limit int) ([]Article, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select("id", "image_url", "title", "original_title", "snippet", "source", "published_at").
		From("articles").
		OrderBy("published_at").Desc().
		Limit(limit)

	query, args := sb.Build()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		var a Article
		if err := rows.Scan(&a.ID, &a.ImageURL, &a.Title, &a.OriginalTitle, &a.Snippet, &a.Source, &a.PublishedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		articles = append(articles, a)
	}

	return articles, rows.Err()
}

// CountSince reports how many stored articles were fetched after the
// given time. Used to decide whether a refresh can be skipped.
func (s *Store) CountSince(ctx context.Context, since time.Time) (int, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select("COUNT(*)").From("articles")
	sb.Where(sb.GreaterThan("created_at", since))

	query, args := sb.Build()

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count error: %w", err)
	}
	return count, nil
}
