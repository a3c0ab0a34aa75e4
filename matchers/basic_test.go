package matchers

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	pass, _ := Equal(3).Test(3)
	assert.True(t, pass)

	pass, desc := Equal(3).Test(4)
	assert.False(t, pass)
	assert.Contains(t, desc, "equal to 3")
}

func TestDeepEqual(t *testing.T) {
	pass, _ := DeepEqual([]string{"a", "b"}).Test([]string{"a", "b"})
	assert.True(t, pass)

	pass, _ = DeepEqual([]string{"a"}).Test([]string{"b"})
	assert.False(t, pass)
}

func TestCloseTo(t *testing.T) {
	pass, _ := CloseTo(math.Pi, 1e-9).Test(3.141592653)
	assert.True(t, pass)

	pass, desc := CloseTo(math.Pi, 1e-12).Test(3.141)
	assert.False(t, pass)
	assert.Contains(t, desc, "within 1e-12 of 3.141592653589793")

	pass, _ = CloseTo(1, 100).Test(math.NaN())
	assert.False(t, pass, "NaN is never close to anything")
}

func TestIsError(t *testing.T) {
	sentinel := errors.New("the sentinel")
	wrapped := fmt.Errorf("context: %w", sentinel)

	pass, _ := IsError(sentinel).Test(wrapped)
	assert.True(t, pass)

	pass, desc := IsError(sentinel).Test(errors.New("other"))
	assert.False(t, pass)
	assert.Contains(t, desc, `an error wrapping "the sentinel"`)
	assert.Contains(t, desc, `"other"`)

	pass, desc = IsError(sentinel).Test(nil)
	assert.False(t, pass)
	assert.Contains(t, desc, "no error")
}
