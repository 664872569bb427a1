package shell

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailodash/hailodash/pkg/errors"
)

func TestOutputTrims(t *testing.T) {
	r := NewRunner(0)
	out, err := r.Output(context.Background(), "echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestOutputMissingBinary(t *testing.T) {
	r := NewRunner(0)
	_, err := r.Output(context.Background(), "definitely-not-a-real-binary-xyz")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, errors.Code(err))
}

func TestOutputNonZeroExit(t *testing.T) {
	r := NewRunner(0)
	_, err := r.Output(context.Background(), "false")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeExecFailed, errors.Code(err))
}

func TestOutputTimeout(t *testing.T) {
	r := NewRunner(50 * time.Millisecond)
	start := time.Now()
	_, err := r.Output(context.Background(), "sleep", "5")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeTimeout, errors.Code(err))
	assert.Less(t, time.Since(start), 2*time.Second, "timed-out command must be killed promptly")
}

func TestOutputRespectsCallerContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(0)
	_, err := r.Output(ctx, "sleep", "5")
	assert.Error(t, err)
}
