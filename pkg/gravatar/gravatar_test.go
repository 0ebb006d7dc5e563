package gravatar_test

import (
	"testing"

	"sosmed/pkg/gravatar"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	// md5("ann@x.com") is stable, so the URL must be too.
	u := gravatar.URL("ann@x.com", gravatar.Options{Size: 200, Rating: "pg", Default: "mm"})
	assert.Contains(t, u, "https://www.gravatar.com/avatar/")
	assert.Contains(t, u, "s=200")
	assert.Contains(t, u, "r=pg")
	assert.Contains(t, u, "d=mm")
}

func TestURLNormalizesEmail(t *testing.T) {
	a := gravatar.URL("Ann@X.com ", gravatar.Options{})
	b := gravatar.URL("ann@x.com", gravatar.Options{})
	assert.Equal(t, a, b)
}

func TestURLWithoutOptions(t *testing.T) {
	u := gravatar.URL("ann@x.com", gravatar.Options{})
	assert.NotContains(t, u, "?")
}
