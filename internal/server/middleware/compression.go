package middleware

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// Compression gzips responses of at least minSize bytes for clients that
// accept it.
func Compression(minSize int) (func(http.Handler) http.Handler, error) {
	wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(minSize))
	if err != nil {
		return nil, err
	}
	return func(next http.Handler) http.Handler {
		return wrap(next)
	}, nil
}
