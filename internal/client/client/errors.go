package client

import "errors"

var (
	// ErrAuthRejected means the service rejected the session key. Callers
	// must force a lock before propagating it further.
	ErrAuthRejected = errors.New("session key rejected")

	// ErrCommunication covers network and IO failures talking to the
	// service. Lock state is not affected.
	ErrCommunication = errors.New("communication failure")

	// ErrTrust means the server certificate could not be trusted. Lock
	// state is not affected.
	ErrTrust = errors.New("server certificate not trusted")
)
