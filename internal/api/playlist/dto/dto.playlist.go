package playlistdto

// PlaylistCreateInput đầu vào tạo playlist.
type PlaylistCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Description string `json:"description" validate:"required,no_xss"`
}

// PlaylistUpdateInput đầu vào cập nhật playlist.
type PlaylistUpdateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Description string `json:"description" validate:"required,no_xss"`
}
