package mapping

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filament-mapper/internal/assign"
	"filament-mapper/internal/diagnostic"
	"filament-mapper/internal/filament"
)

// filaments builds n descriptors named after their tool index.
func filaments(n int) []filament.Descriptor {
	out := make([]filament.Descriptor, n)
	for i := range out {
		out[i] = filament.New(i, fmt.Sprintf("Filament %d", i))
	}

	return out
}

func newStore(t *testing.T, n, slotCount int) *Store {
	t.Helper()

	s, err := New(filaments(n), slotCount)
	require.NoError(t, err)

	return s
}

func TestNew_InvalidSlotCount(t *testing.T) {
	for _, slotCount := range []int{0, -1} {
		s, err := New(filaments(3), slotCount)
		require.ErrorIs(t, err, assign.ErrInvalidInput)
		assert.Nil(t, s)
	}
}

func TestNew_BoundsAndLength(t *testing.T) {
	for slotCount := 1; slotCount <= 6; slotCount++ {
		for n := 0; n <= 12; n++ {
			s := newStore(t, n, slotCount)

			m := s.Mapping()
			require.Len(t, m, n)

			for _, slot := range m {
				assert.True(t, assign.ValidSlot(slot, slotCount), "slots=%d:\n%s", slotCount, spew.Sdump(m))
			}
		}
	}
}

func TestScenario_ThreeFilamentsFourSlots(t *testing.T) {
	s := newStore(t, 3, 4)

	s.Reset()

	assert.Equal(t, []int{1, 2, 3}, s.Mapping())
	assert.Empty(t, s.Conflicts())
	assert.False(t, s.HasConflicts())
	assert.False(t, s.Diagnostics().HasWarnings())
}

func TestScenario_FiveFilamentsThreeSlots(t *testing.T) {
	s := newStore(t, 5, 3)

	s.Reset()
	assert.Equal(t, []int{1, 2, 3, 1, 2}, s.Mapping())
	assert.Equal(t, []int{1, 2}, s.Conflicts())
	assert.Equal(t, map[int]int{1: 2, 2: 2}, s.ConflictSet())

	s.AutoMatch()
	m := s.Mapping()
	usage := assign.SlotUsage(m)

	for slot := 1; slot <= 3; slot++ {
		assert.Positive(t, usage[slot], "slot %d unused:\n%s", slot, spew.Sdump(m))
	}

	assert.Equal(t, 2, assign.Excess(m))
}

func TestReset_Idempotent(t *testing.T) {
	s := newStore(t, 7, 3)

	s.Reset()
	first := s.Mapping()

	s.Reset()
	assert.Equal(t, first, s.Mapping())
}

func TestAutoMatch_NoConflictsWhenSlotsSuffice(t *testing.T) {
	s := newStore(t, 4, 4)

	require.NoError(t, s.SetSlot(3, 1))
	require.True(t, s.HasConflicts())

	s.AutoMatch()
	assert.Equal(t, []int{1, 2, 3, 4}, s.Mapping())
	assert.Empty(t, s.Conflicts())
}

func TestApply(t *testing.T) {
	s := newStore(t, 5, 3)

	require.NoError(t, s.Apply(assign.StrategyAutoMatch))
	assert.Equal(t, []int{1, 2, 3, 1, 1}, s.Mapping())

	require.NoError(t, s.Apply(assign.StrategyDefault))
	assert.Equal(t, []int{1, 2, 3, 1, 2}, s.Mapping())

	require.ErrorIs(t, s.Apply(assign.Strategy(0)), assign.ErrInvalidInput)
	assert.Equal(t, []int{1, 2, 3, 1, 2}, s.Mapping())
}

func TestSetMapping_ConflictSymmetry(t *testing.T) {
	s := newStore(t, 3, 2)

	s.SetMapping([]int{1, 1, 2})
	assert.Equal(t, []int{1}, s.Conflicts())

	s.SetMapping([]int{1, 2, 1})
	assert.Equal(t, []int{1}, s.Conflicts())
}

func TestSetMapping_Partial(t *testing.T) {
	s := newStore(t, 4, 4)

	s.SetMapping([]int{4, 3})
	assert.Equal(t, []int{4, 3, 3, 4}, s.Mapping())
	assert.Equal(t, []int{3, 4}, s.Conflicts())

	// Extra values past the end are dropped
	s.SetMapping([]int{1, 2, 3, 4, 1, 1})
	assert.Equal(t, []int{1, 2, 3, 4}, s.Mapping())
	assert.Empty(t, s.Conflicts())
}

func TestSetMapping_IgnoresOutOfRange(t *testing.T) {
	s := newStore(t, 3, 3)

	s.SetMapping([]int{0, 3, 9})
	assert.Equal(t, []int{1, 3, 3}, s.Mapping())
	assert.Equal(t, []int{3}, s.Conflicts())

	diags := s.Diagnostics()
	ignored := diags.ByCode(diagnostic.CodeSlotIgnored)
	require.Len(t, ignored, 2)
	assert.Equal(t, []int{0}, ignored[0].Filaments)
	assert.Equal(t, []int{2}, ignored[1].Filaments)
	assert.Equal(t, "slot 9 is outside 1..3, kept Slot 3", ignored[1].Message)

	// The next clean mutation clears the notes
	s.SetMapping([]int{1, 2, 3})
	assert.Empty(t, s.Diagnostics().Infos)
}

func TestSetSlot(t *testing.T) {
	s := newStore(t, 3, 4)

	require.NoError(t, s.SetSlot(2, 1))
	assert.Equal(t, []int{1, 2, 1}, s.Mapping())
	assert.Equal(t, []int{1}, s.Conflicts())

	slot, err := s.Slot(2)
	require.NoError(t, err)
	assert.Equal(t, 1, slot)
}

func TestSetSlot_IndexOutOfRange(t *testing.T) {
	s := newStore(t, 3, 4)
	before := s.Mapping()

	for _, i := range []int{-1, 3, 100} {
		err := s.SetSlot(i, 2)
		require.ErrorIs(t, err, assign.ErrIndexOutOfRange)
		assert.Equal(t, before, s.Mapping())
	}

	_, err := s.Slot(3)
	require.ErrorIs(t, err, assign.ErrIndexOutOfRange)
}

func TestSetSlot_SlotOutOfRange(t *testing.T) {
	s := newStore(t, 3, 4)

	for _, slot := range []int{0, 5, -2} {
		require.NoError(t, s.SetSlot(1, slot))
		assert.Equal(t, []int{1, 2, 3}, s.Mapping())
	}

	assert.Len(t, s.Diagnostics().ByCode(diagnostic.CodeSlotIgnored), 1)
}

func TestMapping_NoAliasing(t *testing.T) {
	s := newStore(t, 3, 2)

	m := s.Mapping()
	m[0] = 2
	assert.Equal(t, []int{1, 2, 1}, s.Mapping())

	c := s.Conflicts()
	c[0] = 2
	assert.Equal(t, []int{1}, s.Conflicts())

	set := s.ConflictSet()
	delete(set, 1)
	assert.Equal(t, map[int]int{1: 2}, s.ConflictSet())

	d := s.Descriptors()
	d[0].Name = "changed"
	assert.Equal(t, "Filament 0", s.Descriptors()[0].Name)
}

func TestDescriptors_CopiedFromCaller(t *testing.T) {
	in := filaments(2)

	s, err := New(in, 2)
	require.NoError(t, err)

	in[0].Name = "mutated"
	assert.Equal(t, "Filament 0", s.Descriptors()[0].Name)
}

func TestDiagnostics_ConflictWarnings(t *testing.T) {
	s := newStore(t, 5, 3)

	diags := s.Diagnostics()
	require.Len(t, diags.Warnings, 2)

	assert.Equal(t, 1, diags.Warnings[0].Slot)
	assert.Equal(t, []int{0, 3}, diags.Warnings[0].Filaments)
	assert.Equal(t, "2 filaments mapped to Slot 1", diags.Warnings[0].Message)

	assert.Equal(t, 2, diags.Warnings[1].Slot)
	assert.Equal(t, []int{1, 4}, diags.Warnings[1].Filaments)

	assert.True(t, diags.IsValid(), "conflicts are never errors")
	assert.Equal(t, "Multiple filaments mapped to same slot: Slot 1, Slot 2", diagnostic.Summary(s.Conflicts()))
}

func TestEmptyProject(t *testing.T) {
	s := newStore(t, 0, 4)

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 4, s.SlotCount())
	assert.Empty(t, s.Mapping())

	s.AutoMatch()
	s.SetMapping([]int{1, 2})
	assert.Empty(t, s.Mapping())
	assert.Empty(t, s.Conflicts())
}

func ExampleStore() {
	s, err := New([]filament.Descriptor{
		filament.New(0, "Generic PLA"),
		filament.New(1, "Generic PETG"),
		filament.New(2, "Generic ABS"),
	}, 2)
	if err != nil {
		panic(err)
	}

	fmt.Println(s.Mapping(), s.Conflicts())

	_ = s.SetSlot(2, 2)
	fmt.Println(s.Mapping(), s.Conflicts())
	// Output:
	// [1 2 1] [1]
	// [1 2 2] [2]
}
