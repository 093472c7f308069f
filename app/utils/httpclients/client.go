package httpclients

import (
	"time"

	"resty.dev/v3"
)

// NewClient builds a named resty client with the shared defaults. Timeouts
// live here at the transport, the services above impose none of their own.
func NewClient(name string) *resty.Client {
	return resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("User-Agent", "photo-download-gateway/"+name)
}
