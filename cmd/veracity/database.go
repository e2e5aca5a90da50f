// cmd/veracity/database.go
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var db *sqlx.DB

// analysisSchema creates the analyses table on startup.
const analysisSchema = `
CREATE TABLE IF NOT EXISTS analyses (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	source_domain TEXT NOT NULL DEFAULT '',
	credibility_score INTEGER NOT NULL,
	verification_status TEXT NOT NULL,
	bias_score DOUBLE PRECISION NOT NULL,
	content_type TEXT NOT NULL,
	result JSONB NOT NULL,
	analyzed_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analyses_analyzed_at ON analyses (analyzed_at DESC);
CREATE INDEX IF NOT EXISTS idx_analyses_source_domain ON analyses (source_domain);
`

// analysisRow mirrors one row of the analyses table.
type analysisRow struct {
	ID                 string    `db:"id"`
	Title              string    `db:"title"`
	SourceDomain       string    `db:"source_domain"`
	CredibilityScore   int       `db:"credibility_score"`
	VerificationStatus string    `db:"verification_status"`
	BiasScore          float64   `db:"bias_score"`
	ContentType        string    `db:"content_type"`
	Result             []byte    `db:"result"`
	AnalyzedAt         time.Time `db:"analyzed_at"`
}

// InitDatabase connects to PostgreSQL and ensures the schema exists. It is a
// no-op when the database is disabled in config.
func InitDatabase(config *Config) error {
	if !config.EnableDatabase {
		Log().Info("Database disabled, analyses kept in memory only")
		return nil
	}
	if config.DatabaseURL == "" {
		return fmt.Errorf("database enabled but DATABASE_URL is empty")
	}

	var err error
	db, err = sqlx.Connect("postgres", config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec(analysisSchema); err != nil {
		return fmt.Errorf("failed to create schema: %v", err)
	}

	Log().Info("Database connection established")
	return nil
}

// SaveAnalysisToDB persists one result. Callers treat failures as
// non-fatal; the in-memory history already holds the result.
func SaveAnalysisToDB(result *AnalysisResult) error {
	if db == nil {
		return nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %v", err)
	}

	_, err = db.NamedExec(`
		INSERT INTO analyses (id, title, source_domain, credibility_score,
			verification_status, bias_score, content_type, result, analyzed_at)
		VALUES (:id, :title, :source_domain, :credibility_score,
			:verification_status, :bias_score, :content_type, :result, :analyzed_at)
		ON CONFLICT (id) DO NOTHING`,
		analysisRow{
			ID:                 result.ID,
			Title:              result.Title,
			SourceDomain:       result.SourceDomain,
			CredibilityScore:   result.CredibilityScore,
			VerificationStatus: result.VerificationStatus,
			BiasScore:          result.BiasScore,
			ContentType:        result.ContentType,
			Result:             payload,
			AnalyzedAt:         result.AnalyzedAt,
		})
	if err != nil {
		return fmt.Errorf("failed to insert analysis: %v", err)
	}
	return nil
}

// LoadRecentAnalyses returns the newest persisted results, up to limit.
func LoadRecentAnalyses(limit int) ([]*AnalysisResult, error) {
	if db == nil {
		return nil, nil
	}

	var rows []analysisRow
	err := db.Select(&rows, `
		SELECT id, title, source_domain, credibility_score, verification_status,
			bias_score, content_type, result, analyzed_at
		FROM analyses ORDER BY analyzed_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %v", err)
	}

	results := make([]*AnalysisResult, 0, len(rows))
	for _, row := range rows {
		var result AnalysisResult
		if err := json.Unmarshal(row.Result, &result); err != nil {
			Log().Warning("Skipping corrupt analysis row %s: %v", row.ID, err)
			continue
		}
		results = append(results, &result)
	}
	return results, nil
}

// CloseDatabase closes the connection pool if one was opened.
func CloseDatabase() {
	if db != nil {
		if err := db.Close(); err != nil {
			Log().Error("Failed to close database: %v", err)
		}
		db = nil
	}
}
