package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yuvraj3121/yt-backend/config"
	"github.com/yuvraj3121/yt-backend/internal/common"
)

// S3Storage là implementation của Storage trên dịch vụ tương thích S3.
type S3Storage struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	baseURL  string
}

// NewS3Storage khởi tạo uploader trỏ tới object store trong cấu hình.
func NewS3Storage(ctx context.Context, cfg *config.Configuration) (*S3Storage, error) {
	if strings.TrimSpace(cfg.S3_Bucket) == "" {
		return nil, fmt.Errorf("s3 storage: bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3_Region),
	}

	if cfg.S3_AccessKey != "" && cfg.S3_SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3_AccessKey, cfg.S3_SecretKey, ""),
		))
	}

	if strings.TrimSpace(cfg.S3_Endpoint) != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == s3.ServiceID {
				return aws.Endpoint{
					URL:           cfg.S3_Endpoint,
					SigningRegion: cfg.S3_Region,
				}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = 5 * 1024 * 1024
		u.LeavePartsOnError = false
	})

	return &S3Storage{
		client:   client,
		uploader: uploader,
		bucket:   cfg.S3_Bucket,
		baseURL:  strings.TrimSuffix(cfg.S3_PublicURL, "/"),
	}, nil
}

// objectKey ghép kind và publicId thành object key.
// Key không mang extension để publicId trích từ URL luôn khớp với key.
func objectKey(kind Kind, publicID string) string {
	return fmt.Sprintf("%s/%s", kind, publicID)
}

// Upload tải file lên bucket và trả về URL công khai.
func (s *S3Storage) Upload(ctx context.Context, input *UploadInput) (*UploadResult, error) {
	if input == nil || input.Body == nil {
		return nil, common.ErrMediaFileMissing
	}

	publicID := primitive.NewObjectID().Hex()
	key := objectKey(input.Kind, publicID)

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        input.Body,
		ContentType: aws.String(input.ContentType),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Error("S3Storage.Upload: Lỗi tải file lên bucket")
		return nil, common.NewError(common.ErrCodeMediaUpload, "Tải file lên kho lưu trữ thất bại", common.StatusInternalServerError, err)
	}

	url := key
	if s.baseURL != "" {
		url = fmt.Sprintf("%s/%s", s.baseURL, key)
	}

	return &UploadResult{
		URL:      url,
		PublicID: publicID,
		Size:     input.Size,
	}, nil
}

// Remove xóa object khỏi bucket theo publicId.
func (s *S3Storage) Remove(ctx context.Context, kind Kind, publicID string) error {
	if publicID == "" {
		return nil
	}

	key := objectKey(kind, publicID)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Error("S3Storage.Remove: Lỗi xóa file khỏi bucket")
		return common.NewError(common.ErrCodeMediaRemove, "Xóa file khỏi kho lưu trữ thất bại", common.StatusInternalServerError, err)
	}
	return nil
}
