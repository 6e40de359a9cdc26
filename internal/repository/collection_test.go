package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/grubdash/internal/model"
)

func TestCollection_AppendKeepsInsertionOrder(t *testing.T) {
	c := NewCollection[model.Dish]()
	assert.NotNil(t, c.List())
	assert.Empty(t, c.List())

	c.Append(model.Dish{ID: "b"})
	c.Append(model.Dish{ID: "a"})
	c.Append(model.Dish{ID: "c"})

	ids := []string{}
	for _, d := range c.List() {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
	assert.Equal(t, 3, c.Len())
}

func TestCollection_FindByID(t *testing.T) {
	c := NewCollection(model.Dish{ID: "1", Name: "first"}, model.Dish{ID: "1", Name: "duplicate"})

	found, ok := c.FindByID("1")
	require.True(t, ok)
	assert.Equal(t, "first", found.Name)

	_, ok = c.FindByID("missing")
	assert.False(t, ok)
	assert.True(t, c.Contains("1"))
	assert.False(t, c.Contains(""))
}

func TestCollection_ReturnsCopies(t *testing.T) {
	c := NewCollection(model.Dish{ID: "1", Name: "original"})

	found, _ := c.FindByID("1")
	found.Name = "changed"

	list := c.List()
	list[0].Name = "changed too"

	stored, _ := c.FindByID("1")
	assert.Equal(t, "original", stored.Name)
}

func TestCollection_UpdateInPlace(t *testing.T) {
	c := NewCollection(model.Dish{ID: "1"}, model.Dish{ID: "2"}, model.Dish{ID: "3"})

	assert.True(t, c.Update(model.Dish{ID: "2", Name: "new", Price: 4}))
	assert.False(t, c.Update(model.Dish{ID: "9"}))

	list := c.List()
	assert.Equal(t, model.Dish{ID: "2", Name: "new", Price: 4}, list[1])
	assert.Len(t, list, 3)
}

func TestCollection_Remove(t *testing.T) {
	c := NewCollection(model.Order{ID: "1"}, model.Order{ID: "2"}, model.Order{ID: "3"})

	assert.True(t, c.Remove("2"))
	assert.False(t, c.Remove("2"))

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "3", list[1].ID)
}

func TestCollection_ConcurrentAccess(t *testing.T) {
	c := NewCollection[model.Order]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("order-%d", i)
			c.Append(model.Order{ID: id})
			c.Update(model.Order{ID: id, Status: model.StatusPreparing})
			_ = c.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, c.Len())
}

func TestLoadFixtures(t *testing.T) {
	dishes, orders, err := LoadFixtures()
	require.NoError(t, err)
	require.NotEmpty(t, dishes)
	require.NotEmpty(t, orders)

	for _, d := range dishes {
		assert.NotEmpty(t, d.ID)
		assert.Greater(t, d.Price, 0, d.ID)
	}

	for _, o := range orders {
		_, ok := model.ParseOrderStatus(string(o.Status))
		assert.True(t, ok, o.ID)
		require.NotEmpty(t, o.Dishes, o.ID)
		for _, line := range o.Dishes {
			assert.Greater(t, line.Quantity, 0, o.ID)
		}
	}
}
