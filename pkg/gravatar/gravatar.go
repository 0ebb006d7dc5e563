package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
)

const baseURL = "https://www.gravatar.com/avatar/"

// Options control the rendered avatar.
type Options struct {
	Size    int    // pixel size, 0 means gravatar default
	Rating  string // e.g. "pg"
	Default string // fallback image, e.g. "mm"
}

// URL returns the deterministic gravatar URL for an email address.
// The hash is computed over the trimmed, lowercased address as
// gravatar requires, so the same email always maps to the same avatar.
func URL(email string, opts Options) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))

	query := url.Values{}
	if opts.Size > 0 {
		query.Set("s", fmt.Sprintf("%d", opts.Size))
	}
	if opts.Rating != "" {
		query.Set("r", opts.Rating)
	}
	if opts.Default != "" {
		query.Set("d", opts.Default)
	}

	u := baseURL + hex.EncodeToString(sum[:])
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}
