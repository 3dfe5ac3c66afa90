package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddenisov/go-contact-keeper/internal/logger"
	"github.com/ddenisov/go-contact-keeper/models"
)

func TestContactRepository_CreateContact_AssignsID(t *testing.T) {
	db, mock, _ := newTestDB(t)
	repo := NewContactRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO contacts (id,username,first_name,last_name,email,phone) VALUES ($1,$2,$3,$4,$5,$6)")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	lastName := "Doe"
	created, err := repo.CreateContact(context.Background(), models.Contact{
		Username:  "eddy",
		FirstName: "John",
		LastName:  &lastName,
	})
	require.NoError(t, err)

	_, parseErr := uuid.Parse(created.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, "eddy", created.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_FindContactByID(t *testing.T) {
	db, mock, _ := newTestDB(t)
	repo := NewContactRepository(db, logger.Nop())

	rows := sqlmock.NewRows([]string{"id", "username", "first_name", "last_name", "email", "phone"}).
		AddRow("c-1", "eddy", "John", "Doe", "john@example.com", nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, first_name, last_name, email, phone FROM contacts WHERE id = $1 AND username = $2")).
		WithArgs("c-1", "eddy").
		WillReturnRows(rows)

	contact, err := repo.FindContactByID(context.Background(), "eddy", "c-1")
	require.NoError(t, err)

	assert.Equal(t, "John", contact.FirstName)
	require.NotNil(t, contact.Email)
	assert.Equal(t, "john@example.com", *contact.Email)
	assert.Nil(t, contact.Phone)
}

func TestContactRepository_FindContactByID_WrongOwner(t *testing.T) {
	db, mock, _ := newTestDB(t)
	repo := NewContactRepository(db, logger.Nop())

	// the owner filter makes another user's contact indistinguishable from a
	// missing one
	mock.ExpectQuery("SELECT id, username, first_name, last_name, email, phone FROM contacts").
		WithArgs("c-1", "intruder").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "first_name", "last_name", "email", "phone"}))

	_, err := repo.FindContactByID(context.Background(), "intruder", "c-1")

	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestContactRepository_UpdateContact_NotFound(t *testing.T) {
	db, mock, _ := newTestDB(t)
	repo := NewContactRepository(db, logger.Nop())

	mock.ExpectExec("UPDATE contacts SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateContact(context.Background(), models.Contact{ID: "ghost", Username: "eddy", FirstName: "X"})

	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestContactRepository_DeleteContact(t *testing.T) {
	db, mock, _ := newTestDB(t)
	repo := NewContactRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contacts WHERE id = $1 AND username = $2")).
		WithArgs("c-1", "eddy").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteContact(context.Background(), "eddy", "c-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_SearchContacts(t *testing.T) {
	db, mock, _ := newTestDB(t)
	repo := NewContactRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM contacts WHERE (username = $1 AND (LOWER(first_name) LIKE $2 OR LOWER(last_name) LIKE $3))")).
		WithArgs("eddy", "%john%", "%john%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	rows := sqlmock.NewRows([]string{"id", "username", "first_name", "last_name", "email", "phone"}).
		AddRow("c-1", "eddy", "John", "Doe", nil, nil).
		AddRow("c-2", "eddy", "Johnny", nil, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY first_name, id LIMIT 2 OFFSET 0")).
		WithArgs("eddy", "%john%", "%john%").
		WillReturnRows(rows)

	contacts, total, err := repo.SearchContacts(context.Background(), "eddy", models.ContactSearchRequest{
		Name: "John",
		Page: 1,
		Size: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, total)
	require.Len(t, contacts, 2)
	assert.Equal(t, "John", contacts[0].FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_SearchContacts_NoFiltersSecondPage(t *testing.T) {
	db, mock, _ := newTestDB(t)
	repo := NewContactRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM contacts WHERE (username = $1)")).
		WithArgs("eddy").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(15))

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT 10 OFFSET 10")).
		WithArgs("eddy").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "first_name", "last_name", "email", "phone"}).
			AddRow("c-11", "eddy", "Kasandra", nil, nil, nil))

	contacts, total, err := repo.SearchContacts(context.Background(), "eddy", models.ContactSearchRequest{Page: 2, Size: 10})
	require.NoError(t, err)

	assert.Equal(t, 15, total)
	assert.Len(t, contacts, 1)
}
