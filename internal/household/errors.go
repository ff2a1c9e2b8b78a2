package household

import "errors"

var (
	ErrInvalidDocument   = errors.New("invalid household document")
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrUnknownMember     = errors.New("unknown member")
	ErrDuplicateMember   = errors.New("duplicate member id")
)
