package identity

type UserType string

const (
	TypePatient UserType = "patient"
	TypeDoctor  UserType = "doctor"
	TypeAdmin   UserType = "admin"
)

func (t UserType) Valid() bool {
	switch t {
	case TypePatient, TypeDoctor, TypeAdmin:
		return true
	}
	return false
}

// Identity is the caller resolved from a validated session token.
type Identity struct {
	UserID   uint
	Email    string
	UserType UserType
}

func (id Identity) IsAdmin() bool {
	return id.UserType == TypeAdmin
}
