// internal/history/repository.go
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julienpequegnot/emolex/internal/database"
	"github.com/julienpequegnot/emolex/internal/emotion"
)

var ErrNotFound = errors.New("analysis not found")

// Record is one stored analysis.
type Record struct {
	ID         string    `json:"id"`
	Emotion    string    `json:"emotion"`
	Confidence float64   `json:"confidence"`
	InputText  string    `json:"input_text"`
	Sentiment  string    `json:"sentiment"`
	Compound   float64   `json:"compound"`
	Polarity   float64   `json:"polarity"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

// FromVerdict builds an unsaved record for text.
func FromVerdict(text string, v emotion.Verdict) Record {
	return Record{
		Emotion:    string(v.TopEmotion),
		Confidence: v.Confidence,
		InputText:  text,
		Sentiment:  v.Sentiment.Label(),
		Compound:   v.Sentiment.Compound,
		Polarity:   v.Sentiment.Polarity,
		Reason:     string(v.Reason),
	}
}

type SearchResult struct {
	Record
	Snippet string  `json:"snippet"`
	Rank    float64 `json:"rank"`
}

// Count is the number of records carrying one emotion.
type Count struct {
	Emotion string `json:"emotion"`
	Count   int    `json:"count"`
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

const recordColumns = `id, emotion, confidence, input_text, sentiment, compound, polarity, COALESCE(reason, ''), created_at`

// Add stores rec, assigning an ID and timestamp when they are empty.
func (r *Repository) Add(rec Record) (*Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.CreatedAt = rec.CreatedAt.UTC()

	_, err := r.db.Exec(
		`INSERT INTO analyses (id, emotion, confidence, input_text, sentiment, compound, polarity, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Emotion, rec.Confidence, rec.InputText, rec.Sentiment, rec.Compound, rec.Polarity, rec.Reason, rec.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert analysis: %w", err)
	}
	return &rec, nil
}

func (r *Repository) Get(id string) (*Record, error) {
	row := r.db.QueryRow(`SELECT `+recordColumns+` FROM analyses WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Recent returns the newest records first.
func (r *Repository) Recent(limit int) ([]Record, error) {
	return r.list(`SELECT `+recordColumns+` FROM analyses ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
}

// Since returns records created at or after t, oldest first.
func (r *Repository) Since(t time.Time) ([]Record, error) {
	return r.list(`SELECT `+recordColumns+` FROM analyses WHERE created_at >= ? ORDER BY created_at ASC, rowid ASC`, t.UTC())
}

// Distribution counts records per emotion since t, largest first.
func (r *Repository) Distribution(since time.Time) ([]Count, error) {
	rows, err := r.db.Query(`
		SELECT emotion, COUNT(*) AS n
		FROM analyses
		WHERE created_at >= ?
		GROUP BY emotion
		ORDER BY n DESC, emotion ASC
	`, since.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []Count
	for rows.Next() {
		var c Count
		if err := rows.Scan(&c.Emotion, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// Search runs a full-text query over input text and emotion labels. Each
// whitespace-separated term is matched literally.
func (r *Repository) Search(query string, limit int) ([]SearchResult, error) {
	match := ftsQuery(query)
	if match == "" {
		return nil, nil
	}

	rows, err := r.db.Query(`
		SELECT
			a.id, a.emotion, a.confidence, a.input_text, a.sentiment, a.compound, a.polarity,
			COALESCE(a.reason, ''), a.created_at,
			snippet(analyses_fts, 0, '<b>', '</b>', '...', 16) AS snippet,
			bm25(analyses_fts) AS rank
		FROM analyses_fts
		JOIN analyses a ON analyses_fts.rowid = a.rowid
		WHERE analyses_fts MATCH ?
		ORDER BY bm25(analyses_fts)
		LIMIT ?
	`, match, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var sr SearchResult
		if err := rows.Scan(&sr.ID, &sr.Emotion, &sr.Confidence, &sr.InputText, &sr.Sentiment,
			&sr.Compound, &sr.Polarity, &sr.Reason, &sr.CreatedAt, &sr.Snippet, &sr.Rank); err != nil {
			return nil, err
		}
		results = append(results, sr)
	}
	return results, rows.Err()
}

func (r *Repository) RebuildIndex() error {
	if _, err := r.db.Exec("DELETE FROM analyses_fts"); err != nil {
		return err
	}

	_, err := r.db.Exec(`
		INSERT INTO analyses_fts(rowid, input_text, emotion)
		SELECT rowid, input_text, emotion FROM analyses
	`)
	return err
}

// Prune deletes records created before t and reports how many went.
func (r *Repository) Prune(before time.Time) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM analyses WHERE created_at < ?`, before.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *Repository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM analyses`).Scan(&n)
	return n, err
}

func (r *Repository) list(query string, args ...any) ([]Record, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*Record, error) {
	var rec Record
	if err := s.Scan(&rec.ID, &rec.Emotion, &rec.Confidence, &rec.InputText, &rec.Sentiment,
		&rec.Compound, &rec.Polarity, &rec.Reason, &rec.CreatedAt); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ftsQuery quotes each term so punctuation like apostrophes cannot break the
// FTS5 query syntax.
func ftsQuery(q string) string {
	fields := strings.Fields(q)
	for i, f := range fields {
		fields[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(fields, " ")
}
