package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/budget-dashboard/internal/model"
)

func TestCollection_OrderedByID(t *testing.T) {
	c := NewCollection[model.TransactionType]()
	c.AddOne(model.NewTransactionType("rent", "Rent"))
	c.AddOne(model.NewTransactionType("food", "Food"))
	c.AddOne(model.NewTransactionType("salary", "Salary", true))

	assert.Equal(t, []string{"food", "rent", "salary"}, c.IDs())
	assert.Equal(t, "Food", c.All()[0].Description())
}

func TestCollection_AddOneKeepsExisting(t *testing.T) {
	c := NewCollection[model.TransactionType]()

	assert.True(t, c.AddOne(model.NewTransactionType("A", "Salary", true)))
	assert.False(t, c.AddOne(model.NewTransactionType("A", "Other")))

	got, ok := c.Get("A")
	assert.True(t, ok)
	assert.Equal(t, "Salary", got.Description())
	assert.Equal(t, 1, c.Len())
}

func TestCollection_UpdateOne(t *testing.T) {
	c := NewCollection[model.TransactionType]()
	c.AddOne(model.NewTransactionType("A", "Salary", true))

	assert.True(t, c.UpdateOne(model.NewTransactionType("A", "Monthly salary", true)))
	assert.False(t, c.UpdateOne(model.NewTransactionType("B", "Bonus", true)))

	got, _ := c.Get("A")
	assert.Equal(t, "Monthly salary", got.Description())
	_, ok := c.Get("B")
	assert.False(t, ok)
}

func TestCollection_RemoveOne(t *testing.T) {
	c := NewCollection[model.TransactionType]()
	c.AddOne(model.NewTransactionType("A", "Salary", true))
	c.AddOne(model.NewTransactionType("B", "Bonus", true))

	assert.True(t, c.RemoveOne("A"))
	assert.False(t, c.RemoveOne("A"))
	assert.Equal(t, []string{"B"}, c.IDs())
}

func TestCollection_SetAllReplaces(t *testing.T) {
	c := NewCollection[model.TransactionType]()
	c.AddOne(model.NewTransactionType("Z", "Old"))

	c.SetAll([]model.TransactionType{
		model.NewTransactionType("C", "Gift", true),
		model.NewTransactionType("A", "Salary", true),
		model.NewTransactionType("C", "Gift card", true),
	})

	assert.Equal(t, []string{"A", "C"}, c.IDs())
	got, _ := c.Get("C")
	assert.Equal(t, "Gift card", got.Description())
}

func TestCollection_IDsIsACopy(t *testing.T) {
	c := NewCollection[model.TransactionType]()
	c.AddOne(model.NewTransactionType("A", "Salary", true))

	ids := c.IDs()
	ids[0] = "mutated"

	assert.Equal(t, []string{"A"}, c.IDs())
}
