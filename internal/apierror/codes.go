package apierror

// Error type URIs following the urn:dayplan:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:dayplan:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:dayplan:error:not_found"

	// TypeConflict indicates a resource conflict (409)
	TypeConflict = "urn:dayplan:error:conflict"

	// TypeMissingOwner indicates the request carried no owner identity (400)
	TypeMissingOwner = "urn:dayplan:error:missing_owner"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:dayplan:error:internal"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:dayplan:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation   = "Validation Error"
	TitleNotFound     = "Resource Not Found"
	TitleConflict     = "Resource Conflict"
	TitleMissingOwner = "Owner Identity Required"
	TitleInternal     = "Internal Server Error"
	TitleBadRequest   = "Bad Request"
)
