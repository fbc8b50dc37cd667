package domain

import (
	"context"
	"time"
)

// BankLoader reads a question bank from a file.
type BankLoader interface {
	LoadBank(path string) (*QuestionBank, error)
	LoadAnswers(path string) (Answers, error)
}

// ConfigLoader reads project configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (EngineConfig, error)
}

// BankVersioner reports the commit that last touched a question bank.
type BankVersioner interface {
	CommitHash(path string) (string, error)
}

// ResultCache memoizes classifications by CacheKey.
type ResultCache interface {
	Get(ctx context.Context, key string) (*Classification, bool, error)
	Put(ctx context.Context, key string, c *Classification) error
	Clear(ctx context.Context) error
}

// ResultStore persists classifications.
type ResultStore interface {
	Save(ctx context.Context, rec *ResultRecord) error
	Get(ctx context.Context, id string) (*ResultRecord, error)
	ListCodes(ctx context.Context) ([]string, error)
	Close() error
}

// ResultHistory keeps a local log of classification runs.
type ResultHistory interface {
	Save(dir string, entry ResultEntry) error
	Load(dir string) ([]ResultEntry, error)
}

// ResultRecord is a persisted classification.
type ResultRecord struct {
	ID             string         `json:"id"                      bson:"_id"`
	RespondentID   string         `json:"respondent_id,omitempty" bson:"respondentId"`
	BankVersion    string         `json:"bank_version,omitempty"  bson:"bankVersion"`
	Code           string         `json:"code"                    bson:"code"`
	Name           string         `json:"name"                    bson:"name"`
	Classification Classification `json:"classification"          bson:"classification"`
	Answers        Answers        `json:"answers"                 bson:"answers"`
	CreatedAt      time.Time      `json:"created_at"              bson:"createdAt"`
}

// ResultEntry is one line of the local history log.
type ResultEntry struct {
	Timestamp    string `json:"timestamp"`
	RespondentID string `json:"respondent_id,omitempty"`
	BankVersion  string `json:"bank_version,omitempty"`
	Code         string `json:"code"`
	Name         string `json:"name"`
}
