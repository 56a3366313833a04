package invariant

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPanics(t *testing.T) {
	Check(nil, "test")

	defer func() {
		r := recover()
		assert.NotNil(t, r)
		assert.Equal(t, "invariant violated: context: test", r.(error).Error())
	}()
	Check(fmt.Errorf("test"), "context")
}

func TestRecover(t *testing.T) {
	err := Recover(func() error {
		Check(fmt.Errorf("test"), "context")
		return nil
	})
	assert.Error(t, err)
	assert.Equal(t, "invariant violated: context: test", err.Error())

	err = func() (err error) {
		defer func() {
			if recover() == nil {
				err = fmt.Errorf("recovered")
			}
		}()
		return Recover(func() error {
			panic("test")
		})
	}()
	assert.NoError(t, err)
}

func TestAssert(t *testing.T) {
	Assert(true, "test")

	defer func() {
		r := recover()
		assert.NotNil(t, r)
		assert.Equal(t, "invariant violated: assertion failed: test", r.(error).Error())
	}()
	Assert(false, "test")
}
