// Package media cung cấp kho lưu trữ file media (video, thumbnail, avatar)
// trên dịch vụ object storage tương thích S3.
package media

import (
	"context"
	"io"
	"path"
	"strings"
)

// Kind phân loại file media, quyết định prefix của object key.
type Kind string

const (
	KindVideo     Kind = "videos"
	KindThumbnail Kind = "thumbnails"
	KindImage     Kind = "images"
)

// UploadResult chứa thông tin file sau khi tải lên thành công.
type UploadResult struct {
	URL      string  `json:"url"`      // URL công khai của file
	PublicID string  `json:"publicId"` // Định danh dùng để xóa file sau này
	Size     int64   `json:"size"`     // Kích thước file (bytes)
	Duration float64 `json:"duration"` // Thời lượng (giây), chỉ có với video
}

// UploadInput mô tả một file cần tải lên.
type UploadInput struct {
	Kind        Kind      // Loại media
	FileName    string    // Tên file gốc (chỉ dùng để suy ra content type)
	ContentType string    // Content type của file
	Size        int64     // Kích thước file
	Body        io.Reader // Nội dung file
}

// Storage là interface kho lưu trữ media.
// Mọi service cần upload/xóa media đều làm việc qua interface này.
type Storage interface {
	// Upload tải file lên kho lưu trữ và trả về URL công khai cùng publicId.
	Upload(ctx context.Context, input *UploadInput) (*UploadResult, error)

	// Remove xóa file khỏi kho lưu trữ theo publicId.
	// Xóa một publicId không tồn tại không bị coi là lỗi.
	Remove(ctx context.Context, kind Kind, publicID string) error
}

// PublicIDFromURL trích xuất publicId từ URL media:
// segment cuối cùng của path, bỏ phần extension nếu có.
func PublicIDFromURL(rawURL string) string {
	trimmed := strings.TrimRight(rawURL, "/")
	if trimmed == "" {
		return ""
	}
	segment := path.Base(trimmed)
	if segment == "." || segment == "/" {
		return ""
	}
	if ext := path.Ext(segment); ext != "" {
		segment = strings.TrimSuffix(segment, ext)
	}
	return segment
}
