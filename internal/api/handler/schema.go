package handler

// messageResponse is the standard envelope for errors and acknowledgements.
type messageResponse struct {
	Message string `json:"message"`
}
