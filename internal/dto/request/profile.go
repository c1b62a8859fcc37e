package request

// ProfileForm carries the role-specific fields of a registration or
// profile update. Pointer fields record whether the caller actually sent
// a value, so a legitimate zero (coordinate 0.0, empty description) is
// never mistaken for "absent".
type ProfileForm struct {
	// Flyer holds the raw uploaded media; nil when not provided.
	Flyer          []byte
	FlyerType      string
	DigitalAddress *string
	Latitude       *float64
	Longitude      *float64
	Description    *string
	CompanyName    *string
	Lead           *string
	ShopName       *string
	Owner          *string
}
