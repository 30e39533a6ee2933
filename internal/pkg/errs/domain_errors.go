package errs

// Cross-layer sentinels. Usecase packages mark their own errors with these so
// handlers can classify failures without importing every usecase package.
var (
	ErrValidation              = New("validation failed")
	ErrNotFound                = New("not found")
	ErrConflict                = New("conflict")
	ErrDatabaseOperationFailed = New("database operation failed")
)
