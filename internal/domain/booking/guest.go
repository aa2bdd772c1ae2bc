package booking

import (
	"time"

	"github.com/google/uuid"
)

// Guest is identified operationally by (hotel, email): booking creation
// looks up an existing guest by email within the tenant and creates one
// only when absent. Emails are not globally unique.
type Guest struct {
	id          uuid.UUID
	hotelID     uuid.UUID
	firstName   string
	lastName    string
	email       string
	phone       *string
	nationality *string
	idType      *string
	idNumber    *string
	address     *string
	createdAt   time.Time
}

func NewGuest(hotelID uuid.UUID, firstName, lastName, email string, phone, nationality, idType, idNumber, address *string) *Guest {
	return &Guest{
		id:          uuid.New(),
		hotelID:     hotelID,
		firstName:   firstName,
		lastName:    lastName,
		email:       email,
		phone:       phone,
		nationality: nationality,
		idType:      idType,
		idNumber:    idNumber,
		address:     address,
	}
}

func ReconstructGuest(
	id, hotelID uuid.UUID,
	firstName, lastName, email string,
	phone, nationality, idType, idNumber, address *string,
	createdAt time.Time,
) *Guest {
	return &Guest{
		id:          id,
		hotelID:     hotelID,
		firstName:   firstName,
		lastName:    lastName,
		email:       email,
		phone:       phone,
		nationality: nationality,
		idType:      idType,
		idNumber:    idNumber,
		address:     address,
		createdAt:   createdAt,
	}
}

func (g *Guest) FullName() string {
	return g.firstName + " " + g.lastName
}

func (g *Guest) ID() uuid.UUID        { return g.id }
func (g *Guest) HotelID() uuid.UUID   { return g.hotelID }
func (g *Guest) FirstName() string    { return g.firstName }
func (g *Guest) LastName() string     { return g.lastName }
func (g *Guest) Email() string        { return g.email }
func (g *Guest) Phone() *string       { return g.phone }
func (g *Guest) Nationality() *string { return g.nationality }
func (g *Guest) IDType() *string      { return g.idType }
func (g *Guest) IDNumber() *string    { return g.idNumber }
func (g *Guest) Address() *string     { return g.address }
func (g *Guest) CreatedAt() time.Time { return g.createdAt }
