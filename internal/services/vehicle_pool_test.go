package services

import (
	"delivery-estimate-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVehiclePoolDispatchesSoonestFree(t *testing.T) {
	pool := NewVehiclePool(3)
	assert.Equal(t, 3, pool.Len())
	assert.Equal(t, domain.ETA(0), pool.Peek())

	pool.Pop()
	pool.Push(356)
	pool.Pop()
	pool.Push(284)

	assert.Equal(t, domain.ETA(0), pool.Pop())
	pool.Push(500)

	assert.Equal(t, domain.ETA(284), pool.Peek())
	assert.Equal(t, []domain.ETA{284, 356, 500}, pool.Snapshot())
	assert.Equal(t, domain.ETA(284), pool.Pop())
	assert.Equal(t, domain.ETA(356), pool.Pop())
	assert.Equal(t, domain.ETA(500), pool.Pop())
	assert.Equal(t, 0, pool.Len())
}
