package main

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurve_WellFormed(t *testing.T) {
	c, err := parseCurve("5:10, 2:4 ,8:12")
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	// Points come back in ascending x order regardless of input order.
	pts := c.Points()
	assert.True(t, pts[0].X.Equal(decimal.NewFromInt(2)))
	assert.True(t, pts[0].Y.Equal(decimal.NewFromInt(4)))
	assert.True(t, pts[2].X.Equal(decimal.NewFromInt(8)))
}

func TestParseCurve_DecimalCoordinates(t *testing.T) {
	c, err := parseCurve("0.5:1.25,1.5:-3")
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.True(t, c.Points()[0].Y.Equal(decimal.RequireFromString("1.25")))
}

func TestParseCurve_TrailingComma(t *testing.T) {
	c, err := parseCurve("1:1,2:2,")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestParseCurve_MissingSeparator(t *testing.T) {
	_, err := parseCurve("1:1,22")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed pair")
}

func TestParseCurve_BadNumber(t *testing.T) {
	_, err := parseCurve("1:one")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad y")

	_, err = parseCurve("x:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad x")
}

func TestParseCurve_Empty(t *testing.T) {
	_, err := parseCurve("")
	require.Error(t, err)
}
