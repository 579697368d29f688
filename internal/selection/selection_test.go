package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveOptions() []Option {
	return []Option{
		{Label: "first", Value: Number(1)},
		{Label: "second", Value: Number(2)},
		{Label: "third", Value: Number(3)},
		{Label: "fourth", Value: Number(4)},
		{Label: "fifth", Value: Number(5)},
	}
}

// host mimics the embedding program: it owns the value and re-supplies props.
type multiHost struct {
	options []Option
	value   []Option
	calls   int
}

func (h *multiHost) props() Props {
	return NewMultiple(h.options, h.value, func(next []Option) {
		h.calls++
		h.value = next
	})
}

type singleHost struct {
	options []Option
	value   *Option
	calls   int
}

func (h *singleHost) props() Props {
	return NewSingle(h.options, h.value, func(next *Option) {
		h.calls++
		h.value = next
	})
}

func TestMultipleScenario(t *testing.T) {
	opts := fiveOptions()
	h := &multiHost{options: opts, value: []Option{opts[0]}}

	require.True(t, h.props().Toggle(opts[1]))
	assert.Equal(t, []Option{opts[0], opts[1]}, h.value)

	require.True(t, h.props().Toggle(opts[0]))
	assert.Equal(t, []Option{opts[1]}, h.value)

	h.props().Clear()
	assert.Empty(t, h.value)
	assert.NotNil(t, h.value)
	assert.Equal(t, 3, h.calls)
}

func TestSingleScenario(t *testing.T) {
	opts := fiveOptions()
	first := opts[0]
	h := &singleHost{options: opts, value: &first}

	assert.False(t, h.props().Toggle(opts[0]))
	assert.Zero(t, h.calls)
	require.NotNil(t, h.value)
	assert.Equal(t, "first", h.value.Label)

	assert.True(t, h.props().Toggle(opts[2]))
	assert.Equal(t, 1, h.calls)
	require.NotNil(t, h.value)
	assert.Equal(t, opts[2], *h.value)
}

func TestSingleToggleFromEmptySelects(t *testing.T) {
	opts := fiveOptions()
	h := &singleHost{options: opts}
	assert.True(t, h.props().Toggle(opts[3]))
	require.NotNil(t, h.value)
	assert.Equal(t, Number(4), h.value.Value)
}

func TestToggleTwiceRestoresSelection(t *testing.T) {
	opts := fiveOptions()
	starts := [][]Option{
		nil,
		{opts[0]},
		{opts[2], opts[0], opts[4]},
		{opts[4], opts[3], opts[2], opts[1], opts[0]},
	}
	for _, start := range starts {
		for _, opt := range opts {
			once := ToggleMultiple(start, opt)
			twice := ToggleMultiple(once, opt)
			if Contains(start, opt) {
				// removal then re-append moves the option to the end
				assert.Len(t, twice, len(start))
				assert.True(t, Contains(twice, opt))
				continue
			}
			assert.Equal(t, len(start), len(twice))
			for i := range start {
				assert.Equal(t, start[i], twice[i])
			}
		}
	}
}

func TestToggleMultipleDoesNotMutateInput(t *testing.T) {
	opts := fiveOptions()
	start := make([]Option, 2, 8)
	copy(start, opts[:2])
	next := ToggleMultiple(start, opts[3])
	assert.Len(t, start, 2)
	assert.Equal(t, []Option{opts[0], opts[1], opts[3]}, next)

	next = ToggleMultiple(start, opts[0])
	assert.Equal(t, []Option{opts[0], opts[1]}, start)
	assert.Equal(t, []Option{opts[1]}, next)
}

func TestEqualityIsByValue(t *testing.T) {
	opts := fiveOptions()
	relabeled := Option{Label: "another first", Value: Number(1)}

	h := &multiHost{options: opts, value: []Option{opts[0]}}
	assert.True(t, h.props().IsSelected(relabeled))
	h.props().Toggle(relabeled)
	assert.Empty(t, h.value)

	first := opts[0]
	s := &singleHost{options: opts, value: &first}
	assert.True(t, s.props().IsSelected(relabeled))
	assert.False(t, s.props().Toggle(relabeled))
}

func TestTextAndNumberValuesDiffer(t *testing.T) {
	assert.NotEqual(t, Text("1"), Number(1))
	assert.Equal(t, "1", Text("1").String())
	assert.Equal(t, "1", Number(1).String())
	assert.Equal(t, "2.5", Number(2.5).String())
	assert.False(t, Text("x").IsNumber())
	n, ok := Number(7).Float()
	assert.True(t, ok)
	assert.Equal(t, 7.0, n)
}

func TestClearIsUnconditional(t *testing.T) {
	opts := fiveOptions()
	h := &multiHost{options: opts}
	h.props().Clear()
	h.props().Clear()
	assert.Equal(t, 2, h.calls)
	assert.Empty(t, h.value)

	s := &singleHost{options: opts}
	s.props().Clear()
	assert.Equal(t, 1, s.calls)
	assert.Nil(t, s.value)
}

func TestSelectedAcrossModes(t *testing.T) {
	opts := fiveOptions()
	third := opts[2]
	assert.Equal(t, []Option{third}, NewSingle(opts, &third, nil).Selected())
	assert.Nil(t, NewSingle(opts, nil, nil).Selected())
	assert.Equal(t, opts[:2], NewMultiple(opts, opts[:2], nil).Selected())
	assert.Equal(t, Multiple, NewMultiple(opts, nil, nil).Mode())
	assert.Equal(t, "single", Single.String())
}

func TestNilCallbackDropsChange(t *testing.T) {
	opts := fiveOptions()
	p := NewMultiple(opts, nil, nil)
	assert.NotPanics(t, func() {
		p.Toggle(opts[0])
		p.Clear()
	})
	assert.NotPanics(t, func() {
		NewSingle(opts, nil, nil).Toggle(opts[1])
	})
}
