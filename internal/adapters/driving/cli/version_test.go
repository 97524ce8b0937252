package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd(t *testing.T) {
	out, err := execute("version")

	assert.NoError(t, err)
	assert.Contains(t, out, "eventsync version")
}
