package errors

import "errors"

// Kind is the closed set of failure classes a query can produce.
type Kind int

const (
	// KindInternal is any unanticipated failure.
	KindInternal Kind = iota
	// KindInvalidSearch is a search with neither query nor parent.
	KindInvalidSearch
	// KindCodeNotFound is a lookup of an unknown code value.
	KindCodeNotFound
	// KindParentNotFound is a children lookup of an unknown parent value.
	KindParentNotFound
	// KindEndpointNotFound is a request no route matches.
	KindEndpointNotFound
	// KindStartupData is a missing or unparsable source document.
	KindStartupData
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInvalidSearch:
		return "invalid_search"
	case KindCodeNotFound:
		return "code_not_found"
	case KindParentNotFound:
		return "parent_not_found"
	case KindEndpointNotFound:
		return "endpoint_not_found"
	case KindStartupData:
		return "startup_data"
	default:
		return "internal"
	}
}

// KindOf classifies err. Errors that match none of the known types,
// including nil, are KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}

	var nf *NotFoundError
	if errors.As(err, &nf) {
		switch nf.Resource {
		case ResourceParentCode:
			return KindParentNotFound
		case ResourceEndpoint:
			return KindEndpointNotFound
		default:
			return KindCodeNotFound
		}
	}

	switch {
	case errors.Is(err, ErrInvalidSearch):
		return KindInvalidSearch
	case errors.Is(err, ErrDataUnavailable):
		return KindStartupData
	default:
		return KindInternal
	}
}
