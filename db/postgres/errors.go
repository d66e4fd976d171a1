package postgres

import (
	"errors"
	"net"

	"github.com/lib/pq"
)

// ConnectErrorKind classifies why an initial connection attempt failed.
// The bootstrap branches on the kind, not on raw SQLSTATEs.
type ConnectErrorKind int

const (
	ConnectOK ConnectErrorKind = iota
	// ConnectPrincipalMissing: the application role does not exist yet.
	// This is the only kind that triggers the elevation flow.
	ConnectPrincipalMissing
	// ConnectAuthRejected: the role exists but the password was refused.
	ConnectAuthRejected
	// ConnectUnreachable: the server could not be reached at all.
	ConnectUnreachable
	ConnectOther
)

func (k ConnectErrorKind) String() string {
	switch k {
	case ConnectOK:
		return "ok"
	case ConnectPrincipalMissing:
		return "principal missing"
	case ConnectAuthRejected:
		return "auth rejected"
	case ConnectUnreachable:
		return "unreachable"
	default:
		return "other"
	}
}

// ClassifyConnectError maps a Ping/Connect error to a ConnectErrorKind.
// SQLSTATE 28000 (invalid_authorization_specification) is what the server
// returns for a nonexistent role; 28P01 (invalid_password) means the role
// exists but the password is wrong.
func ClassifyConnectError(err error) ConnectErrorKind {
	if err == nil {
		return ConnectOK
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "28000":
			return ConnectPrincipalMissing
		case "28P01":
			return ConnectAuthRejected
		}
		return ConnectOther
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ConnectUnreachable
	}

	return ConnectOther
}
