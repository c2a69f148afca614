package react

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	t.Run("update notifies with the previous value", func(t *testing.T) {
		log := []string{}

		v := NewValue(1)
		v.Listen(func(value, old int) {
			log = append(log, fmt.Sprintf("%d -> %d", old, value))
		})

		assert.Equal(t, 1, v.Update(2))
		assert.Equal(t, 2, v.Update(3))
		assert.Equal(t, 3, v.Get())

		assert.Equal(t, []string{"1 -> 2", "2 -> 3"}, log)
	})

	t.Run("update skips identical values", func(t *testing.T) {
		calls := 0

		v := NewValue("a")
		v.ConnectUnit(func() { calls++ })

		v.Update("a")
		v.Update("b")
		v.Update("b")

		assert.Equal(t, 1, calls)
	})

	t.Run("force update always notifies", func(t *testing.T) {
		log := []string{}

		v := NewValue("a")
		v.Connect(func(s string) { log = append(log, s) })

		assert.Equal(t, "a", v.UpdateForce("a"))
		v.UpdateForce("a")

		assert.Equal(t, []string{"a", "a"}, log)
	})

	t.Run("notify variants deliver the current value", func(t *testing.T) {
		log := []string{}

		v := NewValue(7)
		v.ConnectNotify(func(value int) {
			log = append(log, fmt.Sprintf("slot %d", value))
		})
		v.ListenNotify(func(value, old int) {
			log = append(log, fmt.Sprintf("listener %d %d", value, old))
		})

		v.Update(8)

		assert.Equal(t, []string{
			"slot 7",
			"listener 7 0",
			"slot 8",
			"listener 8 7",
		}, log)
	})

	t.Run("prioritized listeners", func(t *testing.T) {
		log := []string{}

		v := NewValue(false)
		v.ConnectUnit(func() { log = append(log, "default") })
		v.WithPriority(3).Listen(func(value, _ bool) {
			log = append(log, fmt.Sprintf("3 %t", value))
		})
		v.WithPriority(-3).ConnectNotify(func(value bool) {
			log = append(log, fmt.Sprintf("-3 %t", value))
		})

		v.Update(true)

		assert.Equal(t, []string{"-3 false", "3 true", "default", "-3 true"}, log)
	})

	t.Run("disconnect", func(t *testing.T) {
		calls := 0

		v := NewValue(0)
		conn := v.ConnectUnit(func() { calls++ })
		assert.True(t, v.HasConnections())

		v.Update(1)
		conn.Disconnect()
		v.Update(2)

		assert.Equal(t, 1, calls)
		assert.False(t, v.HasConnections())
	})

	t.Run("updates from a listener", func(t *testing.T) {
		log := []int{}

		v := NewValue(0)
		v.Connect(func(value int) {
			log = append(log, value)
			if value < 3 {
				v.Update(value + 1)
			}
		})

		v.Update(1)

		assert.Equal(t, []int{1, 2, 3}, log)
		assert.Equal(t, 3, v.Get())
	})

	t.Run("listener failures panic out of update", func(t *testing.T) {
		v := NewValue(0)
		v.ConnectUnit(func() { panic("boom") })

		assert.Panics(t, func() { v.Update(1) })
		assert.Equal(t, 1, v.Get())
	})
}

func TestMap(t *testing.T) {
	t.Run("computes from its source", func(t *testing.T) {
		v := NewValue(2)
		m := Map(v, strconv.Itoa)

		assert.Equal(t, "2", m.Get())

		v.Update(3)
		assert.Equal(t, "3", m.Get())
	})

	t.Run("notifies on every source change", func(t *testing.T) {
		log := []string{}

		v := NewValue(1)
		even := Map(v, func(i int) bool { return i%2 == 0 })
		even.Listen(func(value, old bool) {
			log = append(log, fmt.Sprintf("%t -> %t", old, value))
		})

		v.Update(3)
		v.Update(4)

		assert.Equal(t, []string{"false -> false", "false -> true"}, log)
	})

	t.Run("chains", func(t *testing.T) {
		log := []int{}

		v := NewValue(1)
		double := Map(v, func(i int) int { return i * 2 })
		plusOne := Map[int](double, func(i int) int { return i + 1 })
		plusOne.Connect(func(i int) { log = append(log, i) })

		v.Update(10)

		assert.Equal(t, 21, plusOne.Get())
		assert.Equal(t, []int{21}, log)
	})

	t.Run("disconnecting stops notifications", func(t *testing.T) {
		calls := 0

		v := NewValue(1)
		m := Map(v, func(i int) int { return -i })
		m.ConnectUnit(func() { calls++ })

		m.Connection().Disconnect()
		v.Update(2)

		assert.Equal(t, 0, calls)
		assert.False(t, v.HasConnections())
	})
}
