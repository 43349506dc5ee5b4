package model

import "errors"

var (
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrNotFound          = errors.New("not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrMissingField      = errors.New("missing field")      // parsing only
	ErrInvalidFormat     = errors.New("invalid format")     // parsing only
	ErrPersistence       = errors.New("persistence failure") // load/save only
	ErrInsufficientFunds = errors.New("insufficient funds")
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindDuplicateKey
	KindNotFound
	KindInvalidArgument
	KindMissingField
	KindInvalidFormat
	KindPersistence
	KindInsufficientFunds
)

var kinds = []struct {
	sentinel error
	kind     ErrorKind
}{
	{ErrPersistence, KindPersistence},
	{ErrDuplicateKey, KindDuplicateKey},
	{ErrNotFound, KindNotFound},
	{ErrInvalidArgument, KindInvalidArgument},
	{ErrMissingField, KindMissingField},
	{ErrInvalidFormat, KindInvalidFormat},
	{ErrInsufficientFunds, KindInsufficientFunds},
}

// KindOf reports the kind of err. Persistence wins over whatever it wraps,
// so a rejected snapshot is reported as a persistence failure.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	for _, k := range kinds {
		if errors.Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindUnknown
}

func (k ErrorKind) String() string {
	switch k {
	case KindDuplicateKey:
		return "Duplicate"
	case KindNotFound:
		return "Not Found"
	case KindInvalidArgument:
		return "Invalid Argument"
	case KindMissingField:
		return "Missing Field"
	case KindInvalidFormat:
		return "Invalid Format"
	case KindPersistence:
		return "Persistence"
	case KindInsufficientFunds:
		return "Insufficient Funds"
	default:
		return "Error"
	}
}
