package storage

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/jsphweid/musicability/constants"
)

// UploadArtifact puts a rendered file into the configured S3 bucket. Callers
// are expected to have checked GetRenderBucket is non-empty first.
func UploadArtifact(key string, data []byte, contentType string) error {
	bucket := constants.GetRenderBucket()
	if bucket == "" {
		return fmt.Errorf("RENDER_BUCKET is not set")
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(constants.GetAWSRegion()),
	})
	if err != nil {
		return fmt.Errorf("could not create an S3 session because %v", err)
	}

	client := s3.New(sess)
	_, err = client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("error from S3: %v", err)
	}
	return nil
}
