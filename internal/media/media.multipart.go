package media

import (
	"mime/multipart"

	"github.com/yuvraj3121/yt-backend/internal/common"
)

// UploadInputFromFileHeader mở một file từ multipart form và gói thành UploadInput.
// Hàm close trả về phải được gọi sau khi upload xong.
func UploadInputFromFileHeader(kind Kind, fh *multipart.FileHeader) (*UploadInput, func(), error) {
	if fh == nil {
		return nil, nil, common.ErrMediaFileMissing
	}

	file, err := fh.Open()
	if err != nil {
		return nil, nil, common.NewError(common.ErrCodeMediaUpload, "Không mở được file tải lên", common.StatusBadRequest, err)
	}

	input := &UploadInput{
		Kind:        kind,
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        file,
	}
	return input, func() { _ = file.Close() }, nil
}
