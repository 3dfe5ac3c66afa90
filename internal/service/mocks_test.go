package service

import (
	"context"

	"github.com/ddenisov/go-contact-keeper/models"
)

// Function-field mocks for the repository interfaces. Tests assign only the
// functions the scenario needs; an unassigned call panics and fails the test.

type userRepositoryMock struct {
	createUserFunc         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFunc func(ctx context.Context, username string) (models.User, error)
	updateUserFunc         func(ctx context.Context, user models.User) (models.User, error)
	updateTokenFunc        func(ctx context.Context, username string, token *string) error
}

func (m *userRepositoryMock) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFunc(ctx, user)
}

func (m *userRepositoryMock) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsernameFunc(ctx, username)
}

func (m *userRepositoryMock) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.updateUserFunc(ctx, user)
}

func (m *userRepositoryMock) UpdateToken(ctx context.Context, username string, token *string) error {
	return m.updateTokenFunc(ctx, username, token)
}

type contactRepositoryMock struct {
	createContactFunc   func(ctx context.Context, contact models.Contact) (models.Contact, error)
	findContactByIDFunc func(ctx context.Context, username, contactID string) (models.Contact, error)
	updateContactFunc   func(ctx context.Context, contact models.Contact) (models.Contact, error)
	deleteContactFunc   func(ctx context.Context, username, contactID string) error
	searchContactsFunc  func(ctx context.Context, username string, request models.ContactSearchRequest) ([]models.Contact, int, error)
}

func (m *contactRepositoryMock) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	return m.createContactFunc(ctx, contact)
}

func (m *contactRepositoryMock) FindContactByID(ctx context.Context, username, contactID string) (models.Contact, error) {
	return m.findContactByIDFunc(ctx, username, contactID)
}

func (m *contactRepositoryMock) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	return m.updateContactFunc(ctx, contact)
}

func (m *contactRepositoryMock) DeleteContact(ctx context.Context, username, contactID string) error {
	return m.deleteContactFunc(ctx, username, contactID)
}

func (m *contactRepositoryMock) SearchContacts(ctx context.Context, username string, request models.ContactSearchRequest) ([]models.Contact, int, error) {
	return m.searchContactsFunc(ctx, username, request)
}

type addressRepositoryMock struct {
	createAddressFunc          func(ctx context.Context, address models.Address) (models.Address, error)
	findAddressByIDFunc        func(ctx context.Context, contactID, addressID string) (models.Address, error)
	updateAddressFunc          func(ctx context.Context, address models.Address) (models.Address, error)
	deleteAddressFunc          func(ctx context.Context, contactID, addressID string) error
	listAddressesByContactFunc func(ctx context.Context, contactID string) ([]models.Address, error)
}

func (m *addressRepositoryMock) CreateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	return m.createAddressFunc(ctx, address)
}

func (m *addressRepositoryMock) FindAddressByID(ctx context.Context, contactID, addressID string) (models.Address, error) {
	return m.findAddressByIDFunc(ctx, contactID, addressID)
}

func (m *addressRepositoryMock) UpdateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	return m.updateAddressFunc(ctx, address)
}

func (m *addressRepositoryMock) DeleteAddress(ctx context.Context, contactID, addressID string) error {
	return m.deleteAddressFunc(ctx, contactID, addressID)
}

func (m *addressRepositoryMock) ListAddressesByContact(ctx context.Context, contactID string) ([]models.Address, error) {
	return m.listAddressesByContactFunc(ctx, contactID)
}

func strPtr(s string) *string { return &s }
