// utils/http.go
package utils

import (
	"net/http"
	"time"
)

// HTTPClient is used by the apply client. The server side imposes no timeout
// on mail delivery; this one only bounds the CLI waiting on our own API.
var HTTPClient = &http.Client{
	Timeout: 30 * time.Second,
}
