package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorChans(t *testing.T) {
	ecs := errorChans{}
	ec1 := &errorChan{}
	ec2 := &errorChan{}
	doneChan := make(chan struct{}, 2)
	go func() {
		ecs.add(ec1)
		doneChan <- struct{}{}
	}()
	go func() {
		ecs.add(ec2)
		doneChan <- struct{}{}
	}()
	<-doneChan
	<-doneChan
	assert.ElementsMatch(t, []*errorChan{ec1, ec2}, ecs.list)
}

func TestNewErrorChan(t *testing.T) {
	ec1 := newErrorChan("abr", nil)
	assert.Equal(t, &errorChan{pattern: "abr"}, ec1)

	c2 := make(chan error)
	ec2 := newErrorChan("aca", c2)
	expected := &errorChan{pattern: "aca"}
	expected.c = c2
	assert.Equal(t, expected, ec2)
}

func TestMergeErrorsAllNil(t *testing.T) {
	ec1 := newErrorChan("abr", nil)
	ec2 := newErrorChan("aca", nil)

	outErrorChan := mergeErrors(ec1, ec2)
	gotErr, open := <-outErrorChan
	assert.False(t, open)
	assert.Nil(t, gotErr)
}

func TestMergeErrorsWrapsPattern(t *testing.T) {
	errC := make(chan error, 1)
	errC <- errors.New("boom")
	close(errC)

	err := waitForSearches(newErrorChan("abr", errC))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `pattern "abr"`)
	assert.Contains(t, err.Error(), "boom")
}
