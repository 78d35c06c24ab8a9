package article

// createRequest is the body of POST /articles. Both references are required.
type createRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   *int64 `json:"author_id"`
	MagazineID *int64 `json:"magazine_id"`
}
