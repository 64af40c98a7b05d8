package repository

import "errors"

// ErrDBNotReady is returned while the server is up but the database has
// not been attached yet (the API starts before the DB connects).
var ErrDBNotReady = errors.New("database not initialized")
