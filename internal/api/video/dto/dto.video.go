package videodto

// VideoListQuery đầu vào lọc danh sách video (lấy từ query string).
type VideoListQuery struct {
	Query    string `query:"query"`    // Tìm theo title/description (regex, không phân biệt hoa thường)
	SortBy   string `query:"sortBy"`   // Field sắp xếp, mặc định createdAt
	SortType string `query:"sortType"` // asc hoặc desc, mặc định desc
	UserID   string `query:"userId"`   // Lọc theo chủ sở hữu
	Page     int64  `query:"page"`
	Limit    int64  `query:"limit"`
}

// VideoPublishInput đầu vào đăng video (multipart form, kèm file videoFile và thumbnail).
// Duration do client gửi kèm vì kho lưu trữ object không đọc metadata media.
type VideoPublishInput struct {
	Title       string  `json:"title" form:"title" validate:"required,no_xss"`
	Description string  `json:"description" form:"description" validate:"required,no_xss"`
	Duration    float64 `json:"duration" form:"duration"`
}

// VideoUpdateInput đầu vào cập nhật video (multipart form, thumbnail mới không bắt buộc).
type VideoUpdateInput struct {
	Title       string `json:"title" form:"title" validate:"required,no_xss"`
	Description string `json:"description" form:"description" validate:"required,no_xss"`
}
