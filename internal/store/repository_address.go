package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/ddenisov/go-contact-keeper/internal/logger"
	"github.com/ddenisov/go-contact-keeper/models"
)

// addressRepository is the SQL-backed implementation of [AddressRepository].
// All lookups and mutations filter by the parent contact id; authorizing the
// contact itself against the requesting user happens one layer up, in the
// service's ownership chain.
type addressRepository struct {
	*DB
	logger *logger.Logger
}

// NewAddressRepository constructs an [AddressRepository] backed by the
// provided database connection and logger.
func NewAddressRepository(db *DB, logger *logger.Logger) AddressRepository {
	logger.Debug().Msg("creating address repository")
	return &addressRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAddress inserts a new address and assigns it a fresh UUID.
func (r *addressRepository) CreateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	log := logger.FromContext(ctx)

	address.ID = uuid.NewString()

	query, args, err := r.Builder().
		Insert(address.TableName()).
		Columns("id", "contact_id", "street", "city", "province", "country", "postal_code").
		Values(address.ID, address.ContactID, address.Street, address.City, address.Province, address.Country, address.PostalCode).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.CreateAddress").Msg("error building insert query")
		return models.Address{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*addressRepository.CreateAddress").Str("contact_id", address.ContactID).Msg("error executing insert")
		return models.Address{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return address, nil
}

// FindAddressByID retrieves the address with the given id under contactID.
// The contact-and-id filtered lookup hides addresses of other contacts.
func (r *addressRepository) FindAddressByID(ctx context.Context, contactID, addressID string) (models.Address, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Select("id", "contact_id", "street", "city", "province", "country", "postal_code").
		From(models.Address{}.TableName()).
		Where(sq.Eq{"id": addressID, "contact_id": contactID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.FindAddressByID").Msg("error building select query")
		return models.Address{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var address models.Address
	row := r.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&address.ID, &address.ContactID, &address.Street, &address.City, &address.Province, &address.Country, &address.PostalCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Address{}, ErrAddressNotFound
		}
		log.Err(err).Str("func", "*addressRepository.FindAddressByID").Msg("error: scanning error")
		return models.Address{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return address, nil
}

// UpdateAddress overwrites the mutable columns of an existing address.
// The id and the parent contact never change; both participate in the WHERE
// clause.
func (r *addressRepository) UpdateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Update(address.TableName()).
		Set("street", address.Street).
		Set("city", address.City).
		Set("province", address.Province).
		Set("country", address.Country).
		Set("postal_code", address.PostalCode).
		Where(sq.Eq{"id": address.ID, "contact_id": address.ContactID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.UpdateAddress").Msg("error building update query")
		return models.Address{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.UpdateAddress").Msg("error executing update")
		return models.Address{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return models.Address{}, ErrAddressNotFound
	}

	return address, nil
}

// DeleteAddress removes the address with the given id under contactID.
func (r *addressRepository) DeleteAddress(ctx context.Context, contactID, addressID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Delete(models.Address{}.TableName()).
		Where(sq.Eq{"id": addressID, "contact_id": contactID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.DeleteAddress").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.DeleteAddress").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrAddressNotFound
	}

	return nil
}

// ListAddressesByContact returns every address under the given contact.
// Result order is not part of the contract; id order keeps it stable.
func (r *addressRepository) ListAddressesByContact(ctx context.Context, contactID string) ([]models.Address, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Select("id", "contact_id", "street", "city", "province", "country", "postal_code").
		From(models.Address{}.TableName()).
		Where(sq.Eq{"contact_id": contactID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.ListAddressesByContact").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.ListAddressesByContact").Str("contact_id", contactID).Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	addresses := make([]models.Address, 0, 8)
	for rows.Next() {
		var address models.Address
		if scanErr := rows.Scan(&address.ID, &address.ContactID, &address.Street, &address.City, &address.Province, &address.Country, &address.PostalCode); scanErr != nil {
			log.Err(scanErr).Str("func", "*addressRepository.ListAddressesByContact").Msg("failed to scan address row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		addresses = append(addresses, address)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*addressRepository.ListAddressesByContact").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return addresses, nil
}
