package testutil

import "time"

// Address is the innermost record of the fixture graph.
type Address struct {
	Number int
	Street string
}

// Home wraps an Address so fixtures exercise multi-level paths like
// home.address.number.
type Home struct {
	Address *Address
}

// Person is the fixture entity. Neighbour back-references allow cyclic
// graphs; Friends allows cycles through sequences.
type Person struct {
	Name        string
	DateOfBirth *time.Time
	Home        Home
	Neighbour   *Person
	Friends     []*Person
}

// NewPerson builds a person with an initialized home address, mirroring the
// shape the comparison scenarios expect.
func NewPerson(name string) *Person {
	return &Person{
		Name: name,
		Home: Home{Address: &Address{Number: 1, Street: "Baker Street"}},
	}
}
