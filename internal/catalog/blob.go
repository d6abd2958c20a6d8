package catalog

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// BlobSource reads the catalog from Azure Blob Storage with shared-key
// credentials taken from the environment.
type BlobSource struct {
	client    *azblob.Client
	container string
	blob      string
}

var _ Source = (*BlobSource)(nil)

func NewBlobSource(container, blob string) (*BlobSource, error) {
	accountName, ok := os.LookupEnv("AZURE_STORAGE_ACCOUNT_NAME")
	if !ok {
		return nil, fmt.Errorf("AZURE_STORAGE_ACCOUNT_NAME could not be found")
	}

	accountKey, ok := os.LookupEnv("AZURE_STORAGE_PRIMARY_ACCOUNT_KEY")
	if !ok {
		return nil, fmt.Errorf("AZURE_STORAGE_PRIMARY_ACCOUNT_KEY could not be found")
	}

	cred, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create shared key credential: %w", err)
	}

	client, err := azblob.NewClientWithSharedKeyCredential(fmt.Sprintf("https://%s.blob.core.windows.net/", accountName), cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}

	return &BlobSource{
		client:    client,
		container: container,
		blob:      blob,
	}, nil
}

func (s *BlobSource) Open(ctx context.Context) (io.ReadCloser, error) {
	stream, err := s.client.DownloadStream(ctx, s.container, s.blob, &azblob.DownloadStreamOptions{})
	if err != nil {
		return nil, err
	}
	return stream.Body, nil
}

func (s *BlobSource) Name() string { return s.container + "/" + s.blob }
