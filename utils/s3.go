package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"mime"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var s3Client *s3.Client

func InitS3() {
	s3Region := os.Getenv("S3_REGION")
	if s3Region == "" {
		s3Region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(s3Region))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
}

// UploadBase64ImageToS3 accepts a "data:<mime>;base64,<data>" URL, stores the
// decoded image under keyPrefix and returns the public URL.
func UploadBase64ImageToS3(base64Data, keyPrefix string) (string, error) {
	parts := strings.Split(base64Data, ",")
	if len(parts) != 2 {
		return "", fmt.Errorf("imagen base64 inválida")
	}
	meta := parts[0]
	data := parts[1]

	mediaType := strings.SplitN(meta, ":", 2)[1]        // "image/jpeg;base64"
	contentType := strings.SplitN(mediaType, ";", 2)[0] // "image/jpeg"

	exts, _ := mime.ExtensionsByType(contentType)
	var ext string
	switch contentType {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	default:
		if len(exts) > 0 {
			ext = exts[0]
		} else {
			sub := strings.SplitN(contentType, "/", 2)
			if len(sub) == 2 {
				ext = "." + sub[1]
			}
		}
	}

	imageData, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("no se pudo decodificar la imagen: %v", err)
	}

	key := fmt.Sprintf("%s-%d%s", keyPrefix, time.Now().UnixNano(), ext)

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("error subiendo a S3: %v", err)
	}

	cfURL := os.Getenv("CLOUDFRONT_URL")
	return fmt.Sprintf("%s/%s", cfURL, key), nil
}
