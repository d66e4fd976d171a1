package db

import "context"

// DB is the shared contract for both store connections. The relational and
// document stores are always used together; there is no store switching.
type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
