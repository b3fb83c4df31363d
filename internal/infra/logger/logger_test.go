package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter("dev", &buf).Debug("rows loaded", "read", 3)
	assert.Contains(t, buf.String(), `"msg":"rows loaded"`)
	assert.Contains(t, buf.String(), `"read":3`)

	buf.Reset()
	NewWithWriter("prod", &buf).Debug("rows loaded")
	assert.Empty(t, buf.String())
}
