package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m := NewMoney(1234.56)
	assert.Equal(t, "$1234.56", m.String())
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("99.99")
	require.NoError(t, err)
	assert.Equal(t, "$99.99", m.String())

	_, err = NewMoneyFromString("not-a-number")
	assert.Error(t, err)
}

func TestMoneyRound(t *testing.T) {
	m := NewMoney(10.126).Round()
	assert.Equal(t, "$10.13", m.String())
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoney(100)
	b := NewMoney(40)

	assert.True(t, a.Add(b).Equal(NewMoney(140)))
	assert.True(t, a.Sub(b).Equal(NewMoney(60)))
	assert.True(t, a.Mul(decimal.NewFromFloat(0.5)).Equal(NewMoney(50)))
}

func TestMoneyComparisons(t *testing.T) {
	a := NewMoney(100)
	b := NewMoney(200)

	assert.True(t, a.LessThan(b))
	assert.True(t, b.GreaterThanOrEqual(a))
	assert.True(t, a.GreaterThanOrEqual(a))
	assert.False(t, a.IsZero())
	assert.True(t, NewMoney(0).IsZero())
}
