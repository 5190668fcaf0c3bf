package errs

// Sentinels shared by the command and query use cases. Engine errors
// (span, calendar, pricing) live next to the code that raises them.
var (
	// Access errors
	ErrForbidden    = New("forbidden")
	ErrUserNotFound = New("user not found")
	ErrUserInactive = New("user inactive")

	// Resource errors
	ErrResourceNotFound = New("resource not found")

	// Reservation errors
	ErrReservationNotFound = New("reservation not found")

	// Idempotency errors
	ErrIdempotencyKeyRequired = New("idempotency key required")
	ErrIdempotencyInProgress  = New("idempotency in progress")
	ErrIdempotencyMismatch    = New("idempotency key reused with a different request")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
