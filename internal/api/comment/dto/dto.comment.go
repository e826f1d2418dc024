package commentdto

// CommentCreateInput đầu vào thêm bình luận vào một video.
type CommentCreateInput struct {
	Content string `json:"content" validate:"required,no_xss"`
}

// CommentUpdateInput đầu vào sửa nội dung bình luận.
type CommentUpdateInput struct {
	Content string `json:"content" validate:"required,no_xss"`
}
