package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/config"
)

// Lado máximo da foto de crachá depois da normalização.
const maxPhotoSide = 512

const webpQuality = 85

// PhotoStore normaliza a foto do visitante para webp e guarda no S3.
type PhotoStore struct {
	client *s3.Client
	bucket string
}

// NewPhotoStore devolve nil quando o bucket não está configurado;
// o upload de foto fica desligado sem afetar o resto da API.
func NewPhotoStore(cfg *config.Config) *PhotoStore {
	if cfg.S3Bucket == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.AWSRegion,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &PhotoStore{
		client: s3.New(opts),
		bucket: cfg.S3Bucket,
	}
}

func (s *PhotoStore) Enabled() bool {
	return s != nil
}

func (s *PhotoStore) Save(
	ctx context.Context,
	visitorID string,
	img image.Image,
) (string, error) {

	normalized := scaleDown(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, normalized, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("visitors/%s.webp", visitorID)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return key, nil
}

func scaleDown(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= maxPhotoSide && h <= maxPhotoSide {
		return img
	}

	if w >= h {
		h = h * maxPhotoSide / w
		w = maxPhotoSide
	} else {
		w = w * maxPhotoSide / h
		h = maxPhotoSide
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
