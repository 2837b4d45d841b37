package generic_test

import (
	"testing"

	"crazygenerics/internal/core/domain/model/generic"
	"crazygenerics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallestUUID keeps the lowest UUID it has processed and its serialized form.
type smallestUUID struct {
	min   *kernel.UUID
	bytes []byte
}

func (p *smallestUUID) Process(obj kernel.UUID) {
	if p.min != nil && obj.Compare(*p.min) >= 0 {
		return
	}
	data, err := obj.MarshalBinary()
	if err != nil {
		return
	}
	p.min = &obj
	p.bytes = data
}

func TestStrictProcessor(t *testing.T) {
	low, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000001")
	require.NoError(t, err)
	high, err := kernel.UUIDFromString("ffffffff-ffff-4fff-bfff-ffffffffffff")
	require.NoError(t, err)

	p := &smallestUUID{}
	var processor generic.StrictProcessor[kernel.UUID] = p

	processor.Process(high)
	processor.Process(low)
	processor.Process(high)

	require.NotNil(t, p.min)
	assert.True(t, p.min.IsEqual(low))
	assert.Len(t, p.bytes, 16)
}

func TestStrictProcessorFunc(t *testing.T) {
	var seen []string
	processor := generic.StrictProcessorFunc[kernel.UUID](func(obj kernel.UUID) {
		seen = append(seen, obj.String())
	})

	id := kernel.NewUUID()
	processor.Process(id)

	assert.Equal(t, []string{id.String()}, seen)
}
