package entity

import (
	"NeuroLink/pkg/xerr"
)

// Role is the closed set of relay participants. It is validated once at
// the connection boundary; everything downstream trusts the value.
type Role string

const (
	RoleUser      Role = "user"
	RoleTherapist Role = "therapist"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleTherapist:
		return RoleTherapist, nil
	default:
		return "", xerr.ErrInvalidRole
	}
}

// Peer returns the counterpart role in the appointment pair.
func (r Role) Peer() Role {
	if r == RoleUser {
		return RoleTherapist
	}
	return RoleUser
}

func (r Role) String() string {
	return string(r)
}
