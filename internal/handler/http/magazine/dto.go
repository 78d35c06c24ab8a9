package magazine

// createRequest is the body of POST /magazines.
type createRequest struct {
	ID       *int64 `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// updateRequest is the body of PUT /magazines/{id}. Nil fields are left unchanged.
type updateRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
}

// TitlesResponse holds null when the magazine has no articles.
type TitlesResponse struct {
	Titles []string `json:"titles"`
}
