package models

// Contact is a single contact entry owned by exactly one user.
// The owner (Username) is fixed at creation time and never changes.
type Contact struct {
	// ID is the UUID primary key assigned at creation.
	ID string `json:"id"`

	// Username is the owner key (foreign key to users.username).
	Username string `json:"-"`

	// FirstName is the only required contact attribute.
	FirstName string `json:"first_name"`

	// LastName, Email and Phone are optional and stored as NULL when absent.
	LastName *string `json:"last_name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// ContactCreateRequest is the request body of POST /api/v1/contacts.
type ContactCreateRequest struct {
	FirstName string  `json:"firstName"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// ContactUpdateRequest is the request body of PUT /api/v1/contacts/{contactId}.
// Nil fields are left unchanged.
type ContactUpdateRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// ContactSearchRequest carries the query parameters of GET /api/v1/contacts.
// Name matches against first or last name; all filters are case-insensitive
// substring predicates combined conjunctively.
type ContactSearchRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
}

// ContactResponse is the outward representation of a contact.
type ContactResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// ToContactResponse maps a stored contact to its response DTO.
func ToContactResponse(contact Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}
