package storage

import (
	"time"

	"github.com/gofiber/storage/s3/v2"
)

type S3Config struct {
	Endpoint  string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
}

func NewS3(cfg S3Config) *s3.Storage {
	return s3.New(s3.Config{
		Endpoint: cfg.Endpoint,
		Bucket:   cfg.Bucket,
		Region:   cfg.Region,
		Credentials: s3.Credentials{
			AccessKey:       cfg.AccessKey,
			SecretAccessKey: cfg.SecretKey,
		},
		MaxAttempts:    3,
		RequestTimeout: time.Second * 10,
		Reset:          false,
	})
}
