package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/ddenisov/go-contact-keeper/internal/logger"
	"github.com/ddenisov/go-contact-keeper/models"
)

// contactRepository is the SQL-backed implementation of [ContactRepository].
// It executes all contact CRUD and search operations against the "contacts"
// table using the embedded [*DB] connection.
//
// Every lookup and mutation filters by the owner's username in the same
// query, so a contact owned by another user produces the same empty result
// as a missing one.
type contactRepository struct {
	*DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateContact inserts a new contact and assigns it a fresh UUID.
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	contact.ID = uuid.NewString()

	query, args, err := r.Builder().
		Insert(contact.TableName()).
		Columns("id", "username", "first_name", "last_name", "email", "phone").
		Values(contact.ID, contact.Username, contact.FirstName, contact.LastName, contact.Email, contact.Phone).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error building insert query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Str("username", contact.Username).Msg("error executing insert")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return contact, nil
}

// FindContactByID retrieves the contact with the given id owned by username.
// The single owner-and-id filtered lookup is also the authorization check.
func (r *contactRepository) FindContactByID(ctx context.Context, username, contactID string) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Select("id", "username", "first_name", "last_name", "email", "phone").
		From(models.Contact{}.TableName()).
		Where(sq.Eq{"id": contactID, "username": username}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.FindContactByID").Msg("error building select query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var contact models.Contact
	row := r.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&contact.ID, &contact.Username, &contact.FirstName, &contact.LastName, &contact.Email, &contact.Phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}
		log.Err(err).Str("func", "*contactRepository.FindContactByID").Msg("error: scanning error")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return contact, nil
}

// UpdateContact overwrites the mutable columns of an existing contact.
// The id and the owner never change; both participate in the WHERE clause.
func (r *contactRepository) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Update(contact.TableName()).
		Set("first_name", contact.FirstName).
		Set("last_name", contact.LastName).
		Set("email", contact.Email).
		Set("phone", contact.Phone).
		Where(sq.Eq{"id": contact.ID, "username": contact.Username}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("error building update query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("error executing update")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return models.Contact{}, ErrContactNotFound
	}

	return contact, nil
}

// DeleteContact removes the contact with the given id owned by username.
// Addresses under the contact are removed by the cascading foreign key.
func (r *contactRepository) DeleteContact(ctx context.Context, username, contactID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Delete(models.Contact{}.TableName()).
		Where(sq.Eq{"id": contactID, "username": username}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

// SearchContacts returns one page of the user's contacts matching the request
// filters plus the total number of matching rows.
//
// Filters are conjunctive case-insensitive substring predicates; the name
// filter matches against first or last name. An empty filter set returns all
// of the user's contacts. The page window is skip = (page-1)*size, take = size.
func (r *contactRepository) SearchContacts(ctx context.Context, username string, request models.ContactSearchRequest) ([]models.Contact, int, error) {
	log := logger.FromContext(ctx)

	filters := buildContactSearchFilters(username, request)

	countQuery, countArgs, err := r.Builder().
		Select("COUNT(*)").
		From(models.Contact{}.TableName()).
		Where(filters).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("error building count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = r.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("error executing count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	offset := (request.Page - 1) * request.Size

	query, args, err := r.Builder().
		Select("id", "username", "first_name", "last_name", "email", "phone").
		From(models.Contact{}.TableName()).
		Where(filters).
		OrderBy("first_name", "id").
		Limit(uint64(request.Size)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("error building select query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Str("username", username).Msg("error executing search query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, request.Size)
	for rows.Next() {
		var contact models.Contact
		if scanErr := rows.Scan(&contact.ID, &contact.Username, &contact.FirstName, &contact.LastName, &contact.Email, &contact.Phone); scanErr != nil {
			log.Err(scanErr).Str("func", "*contactRepository.SearchContacts").Msg("failed to scan contact row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		contacts = append(contacts, contact)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*contactRepository.SearchContacts").Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return contacts, total, nil
}

// buildContactSearchFilters assembles the conjunctive WHERE clause shared by
// the search and count queries. LOWER(...) LIKE keeps the predicates
// case-insensitive on both supported engines.
func buildContactSearchFilters(username string, request models.ContactSearchRequest) sq.And {
	filters := sq.And{sq.Eq{"username": username}}

	if request.Name != "" {
		pattern := substringPattern(request.Name)
		filters = append(filters, sq.Or{
			sq.Expr("LOWER(first_name) LIKE ?", pattern),
			sq.Expr("LOWER(last_name) LIKE ?", pattern),
		})
	}
	if request.Email != "" {
		filters = append(filters, sq.Expr("LOWER(email) LIKE ?", substringPattern(request.Email)))
	}
	if request.Phone != "" {
		filters = append(filters, sq.Expr("LOWER(phone) LIKE ?", substringPattern(request.Phone)))
	}

	return filters
}

func substringPattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
