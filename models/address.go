package models

// Address is a postal address attached to exactly one contact.
// It is only reachable through its owning contact, which in turn must belong
// to the requesting user (two-level ownership chain).
type Address struct {
	// ID is the UUID primary key assigned at creation.
	ID string `json:"id"`

	// ContactID is the owner key (foreign key to contacts.id).
	// It is fixed at creation time and never changes.
	ContactID string `json:"-"`

	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// TableName returns the name of the database table
// associated with the Address model.
func (a Address) TableName() string {
	return "addresses"
}

// AddressCreateRequest is the request body of
// POST /api/v1/contacts/{contactId}/addresses. All fields are required.
type AddressCreateRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

// AddressUpdateRequest is the request body of
// PUT /api/v1/contacts/{contactId}/addresses/{addressId}.
// Nil fields are left unchanged.
type AddressUpdateRequest struct {
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	Province   *string `json:"province,omitempty"`
	Country    *string `json:"country,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
}

// AddressResponse is the outward representation of an address.
// PostalCode round-trips through the stored postal_code column.
type AddressResponse struct {
	ID         string `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

// ToAddressResponse maps a stored address to its response DTO.
func ToAddressResponse(address Address) AddressResponse {
	return AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}
