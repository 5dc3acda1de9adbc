/*
Package dbmodel defines db model structure.
*/
package dbmodel

// Lookup represents `lookups` table and fields. One Lookup is stored per
// displayed row; status rows carry Message and leave the record fields empty.
type Lookup struct {
	QueryID      string
	Position     int
	CVEID        string
	Description  string
	Published    string
	LastModified string
	Severity     string
	Vector       string
	BaseScore    string
	Message      string
}

// Lookups is a collection of Lookup.
type Lookups []Lookup
