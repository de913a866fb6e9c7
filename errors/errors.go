package errors

const (
	UnauthorizedError         = "unauthorized access"
	ForbiddenError            = "forbidden access"
	UserExistsError           = "user already exists"
	DuplicateRequestError     = "request already submitted"
	InvalidRequestFormatError = "invalid request format"
	DatabaseError             = "database error"
)
