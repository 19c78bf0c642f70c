// Package constants provides shared constants used throughout the thema codebase.
// This includes pagination defaults, server timeouts, file permissions and the
// candidate locations of the source document.
package constants

import "time"

// Pagination constants
const (
	// DefaultPage is the page returned when none (or an invalid one) is requested
	DefaultPage = 1

	// DefaultPageSize is the default number of codes per page
	DefaultPageSize = 100
)

// Server constants
const (
	// DefaultHost is the default bind address
	DefaultHost = "localhost"

	// DefaultPort is the default listen port
	DefaultPort = 3000

	// DefaultPathPrefix is the default API path prefix
	DefaultPathPrefix = "/api/v1"

	// DefaultReadTimeout is the HTTP read timeout
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the HTTP write timeout
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the HTTP keep-alive idle timeout
	DefaultIdleTimeout = 120 * time.Second

	// ShutdownTimeout bounds graceful connection draining
	ShutdownTimeout = 30 * time.Second

	// ServiceName identifies the API in health responses and logs
	ServiceName = "thema-api"

	// APIVersion is the version segment of the API
	APIVersion = "v1"
)

// Rate limiting constants
const (
	// DefaultRateLimit is the default requests per minute per client (0 disables)
	DefaultRateLimit = 600

	// RateLimitWindow is the interval over which DefaultRateLimit applies
	RateLimitWindow = time.Minute

	// VisitorTTL is how long an idle client's bucket is retained
	VisitorTTL = 10 * time.Minute

	// VisitorCleanupInterval is how often expired buckets are purged
	VisitorCleanupInterval = 5 * time.Minute
)

// Compression constants
const (
	// GzipMinSize is the smallest response body that is compressed
	GzipMinSize = 1024
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Data file constants
const (
	// DataFileEnv names the environment variable that overrides the data file
	DataFileEnv = "THEMA_DATA_FILE"

	// ConfigName is the base name of the optional config file
	ConfigName = ".thema"
)

// DataFileCandidates lists the default source document locations in the
// order they are tried. Relative entries are resolved against the working
// directory and then the executable's directory.
var DataFileCandidates = []string{
	"data/data.json",
	"data.json",
}
