package constant

import (
	"time"
)

const (
	RequestParamID = "id"
)

const (
	FieldCreatedAt = "created_at"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelSeederScopeName     = "seeder"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderContentType = "Content-Type"
	RequestHeaderRequestID   = "X-Request-ID"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown = "server is preparing to shut down"
	ResponseErrorUnhealthy       = "server is unhealthy"
)

const (
	Empty = ""
)
