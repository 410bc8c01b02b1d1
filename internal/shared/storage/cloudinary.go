package storage

import (
	"context"
	"io"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadResult carries the public URL and provider id of a stored image.
type UploadResult struct {
	URL      string
	PublicID string
}

// ImageUploader stores an image stream and returns its public location.
type ImageUploader interface {
	UploadImage(ctx context.Context, folder string, r io.Reader) (*UploadResult, error)
}

type cloudinaryUploader struct {
	cld *cld.Cloudinary
}

func NewCloudinaryUploader(cloud *cld.Cloudinary) ImageUploader {
	return &cloudinaryUploader{cld: cloud}
}

func (u *cloudinaryUploader) UploadImage(ctx context.Context, folder string, r io.Reader) (*UploadResult, error) {
	yes := true
	no := false
	res, err := u.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &yes,
		Overwrite:      &no,
	})
	if err != nil {
		return nil, err
	}
	return &UploadResult{URL: res.SecureURL, PublicID: res.PublicID}, nil
}
