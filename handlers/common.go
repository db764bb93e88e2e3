package handlers

// MessageResponse is the envelope used for every non-payload answer.
type MessageResponse struct {
	Message string `json:"message"`
}

var (
	UnexpectedErrorResponse = MessageResponse{"An unexpected error occurred"}
	SearchErrorResponse     = MessageResponse{"Error searching for places"}
	InvalidCredsResponse    = MessageResponse{"Invalid credentials"}
)
