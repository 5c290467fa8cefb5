package client

import "fmt"

// ImageClient produces stable placeholder image URLs for sellers who did
// not upload pictures. Binary image data is never stored server-side;
// uploads arrive inlined as data URLs.
type ImageClient interface {
	URLFor(seed string, width, height int) string
}

type imageClientImpl struct {
	baseURL string
}

func NewImageClient(baseURL string) ImageClient {
	return &imageClientImpl{
		baseURL: baseURL,
	}
}

func (c *imageClientImpl) URLFor(seed string, width, height int) string {
	return fmt.Sprintf("%s/seed/%s/%d/%d", c.baseURL, seed, width, height)
}
