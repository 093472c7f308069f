package photoapi

import (
	"context"
	"fmt"

	"ravelpix.com/photo-download-gateway/app/utils/httpclients"
	"ravelpix.com/photo-download-gateway/config/environment_variables"
	"resty.dev/v3"
)

var PhotoAPIRestyClient *resty.Client

func Init() {
	PhotoAPIRestyClient = httpclients.NewClient("PhotoAPIClient")
	PhotoAPIRestyClient.SetBaseURL(environment_variables.EnvironmentVariables.API_ENDPOINT)
}

// MissingResourceError is the service-level marker for an unknown photo. It
// arrives inside a 200 payload, not as a transport failure.
const MissingResourceError = "Missing resource"

// DownloadFileResponse maps a photo to its original object and the canonical
// derived key (Filename) for the requested width.
type DownloadFileResponse struct {
	S3Bucket  string `json:"s3Bucket"`
	S3Version string `json:"s3Version"`
	S3Key     string `json:"s3Key"`
	Filename  string `json:"filename"`
	Errors    string `json:"errors,omitempty"`
}

type Client struct{}

func NewClient() *Client {
	return &Client{}
}

// DownloadFile resolves the photo's download location. width carries either
// the coerced numeric width or the raw "web"/"original" alias.
func (c *Client) DownloadFile(ctx context.Context, token, photoID, albumID, width string) (*DownloadFileResponse, error) {
	var result DownloadFileResponse
	resp, err := PhotoAPIRestyClient.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetQueryParams(map[string]string{
			"albumId": albumID,
			"width":   width,
		}).
		SetResult(&result).
		Get(fmt.Sprintf("/photos/%s/download_file", photoID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("photo api returned %s", resp.Status())
	}
	return &result, nil
}
