package yerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	var (
		err  = errors.New("no such key")
		code = CodeNotFound
	)

	se := New(code, "s3.GetObject", err)

	assert.Equal(t, "NotFound error: op=s3.GetObject message=no such key", se.Error())
	assert.Equal(t, code, se.Code)
	assert.ErrorIs(t, se, err)

	noOp := New(CodeParse, "", err)
	assert.Equal(t, "Parse error: message=no such key", noOp.Error())
}

func TestErrorf(t *testing.T) {
	se := Errorf(CodeConfig, "fetcher", "%s is not set", "S3_BUCKET")

	assert.Equal(t, "Config error: op=fetcher message=S3_BUCKET is not set", se.Error())
}

func TestCode(t *testing.T) {
	assert.Equal(t, "Backend", CodeBackend.String())
	assert.Equal(t, "NotFound", CodeNotFound.String())
	assert.Equal(t, "Parse", CodeParse.String())
	assert.Equal(t, "Config", CodeConfig.String())
	assert.Equal(t, "XXX", Code(200).String())
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", New(CodeParse, "strconv", errors.New("bad")))

	assert.Equal(t, CodeParse, CodeOf(wrapped))
	assert.Equal(t, CodeBackend, CodeOf(errors.New("boom")))
	assert.True(t, IsNotFound(New(CodeNotFound, "", errors.New("x"))))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(errors.New("x")))
}
