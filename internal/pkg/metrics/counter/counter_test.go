package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	Reset()
	AddRequest()
	AddRequest()
	AddFailure()

	assert.Equal(t, int64(2), Requests())
	assert.Equal(t, int64(1), Failures())

	Reset()
	assert.Equal(t, int64(0), Requests())
	assert.Equal(t, int64(0), Failures())
}
