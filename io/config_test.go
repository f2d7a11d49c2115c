package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gcfg.v1"
)

func TestExampleResampleFileParses(t *testing.T) {
	wrap := DefaultResampleWrapper()
	err := gcfg.ReadStringInto(wrap, ExampleResampleFile)
	assert.NoError(t, err)

	con := &wrap.Resample
	assert.True(t, con.ValidInput())
	assert.True(t, con.ValidOutput())
	assert.True(t, con.ValidParams())
	assert.True(t, con.ValidLines())
	assert.True(t, con.ValidShape())
}

func TestParseNameCols(t *testing.T) {
	names, cols, err := ParseNameCols("logU:0, logP:1, Hbeta:2")
	assert.NoError(t, err)
	assert.Equal(t, []string{"logU", "logP", "Hbeta"}, names)
	assert.Equal(t, []int{0, 1, 2}, cols)

	for _, bad := range []string{"", "logU", "logU:x", ":0", "logU:-1"} {
		_, _, err := ParseNameCols(bad)
		assert.Error(t, err, "input '%s'", bad)
	}
}

func TestParseIntList(t *testing.T) {
	shape, err := ParseIntList("50, 30,15")
	assert.NoError(t, err)
	assert.Equal(t, []int{50, 30, 15}, shape)

	for _, bad := range []string{"", "50,", "a"} {
		_, err := ParseIntList(bad)
		assert.Error(t, err, "input '%s'", bad)
	}
}

func TestValidShape(t *testing.T) {
	con := &ResampleConfig{}
	assert.True(t, con.ValidShape()) // unset uses the default

	con.Shape = "50, 50"
	assert.True(t, con.ValidShape())
	con.Shape = "50, 1"
	assert.False(t, con.ValidShape())
	con.Shape = "50, x"
	assert.False(t, con.ValidShape())
}
