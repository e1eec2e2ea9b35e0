package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"backend-tabungan/config"
)

var s3Client *s3.Client

// InitStorage inisialisasi klien S3 untuk penyimpanan gambar
func InitStorage() {
	s3Client = s3.NewFromConfig(config.AWSConfig)
	log.Println("✅ Penyimpanan gambar (S3) telah diinisialisasi.")
}

func imageContentType(key string) string {
	if strings.HasSuffix(strings.ToLower(key), ".png") {
		return "image/png"
	}
	return "image/jpeg"
}

// UploadImage mengunggah gambar ke S3 dan mengembalikan key objeknya
func UploadImage(ctx context.Context, key string, body io.Reader) (string, error) {
	uploader := manager.NewUploader(s3Client)

	_, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(config.AWSBucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(imageContentType(key)),
	})
	if err != nil {
		return "", fmt.Errorf("gagal mengunggah gambar ke S3: %v", err)
	}

	return key, nil
}

// DeleteImage menghapus objek gambar dari S3. Penghapusan bersifat
// best-effort: pemanggil cukup mencatat kegagalannya.
func DeleteImage(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	_, err := s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(config.AWSBucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("gagal menghapus gambar dari S3: %v", err)
	}
	return nil
}

// ImageURL mengembalikan URL publik sebuah objek gambar
func ImageURL(key string) string {
	if key == "" {
		return ""
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", config.AWSBucketName, config.AWSRegion, key)
}
