package author

// createRequest is the body of POST /authors. ID is a pointer so an absent
// field is told apart from an explicit 0.
type createRequest struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}
