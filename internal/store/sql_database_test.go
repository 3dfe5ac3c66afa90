package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddenisov/go-contact-keeper/internal/config"
	"github.com/ddenisov/go-contact-keeper/internal/logger"
)

// stubClassifier lets tests steer the unique-violation classification
// without a real driver error.
type stubClassifier struct {
	unique bool
}

func (c *stubClassifier) IsUniqueViolation(error) bool {
	return c.unique
}

// newTestDB returns a DB wired to a sqlmock connection with Postgres-style
// placeholders.
func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *stubClassifier) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	classifier := &stubClassifier{}
	db := &DB{
		DB:              conn,
		builder:         sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		driver:          "pgx",
		errorClassifier: classifier,
		logger:          logger.Nop(),
	}

	return db, mock, classifier
}

func TestNewDatabase_UnsupportedDriver(t *testing.T) {
	_, err := NewDatabase(context.Background(), config.DB{Driver: "oracle"}, logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
