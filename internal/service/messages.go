package service

// Operator-facing messages.
const (
	MsgInvalidLogin            = "Invalid username or password"
	MsgLoginFailed             = "Login failed. Please try again."
	MsgSignupRequiresLogin     = "You must be logged in as a teacher to register students."
	MsgUnregisterRequiresLogin = "You must be logged in as a teacher to unregister students."
	MsgSignupFailed            = "Failed to sign up. Please try again."
	MsgUnregisterFailed        = "Failed to unregister. Please try again."
	MsgRejectedFallback        = "An error occurred"
)
