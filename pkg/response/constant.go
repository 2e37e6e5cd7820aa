package response

const (
	MessageSuccess         = "Success"
	MessageTooManyRequests = "Too many requests, slow down"
	DefaultErrorMessage    = "Something went wrong"

	DateTimeFormat = "2006-01-02 15:04:05"
)
