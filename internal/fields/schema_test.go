package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marketlens/marketlens/constants"
)

func countBrands(s Schema) int {
	n := 0
	for _, f := range s {
		if f.Name == constants.BrandsField {
			n++
		}
	}
	return n
}

func TestBuild_EmptyUsesDefaults(t *testing.T) {
	s := Build(nil)

	for _, name := range constants.DefaultFields {
		assert.True(t, s.Has(name), "missing default field %q", name)
	}
	assert.Equal(t, 1, countBrands(s))
	// brands is appended last when not configured
	assert.Equal(t, constants.BrandsField, s[len(s)-1].Name)
}

func TestBuild_BrandsNotDuplicated(t *testing.T) {
	s := Build([]string{constants.BrandsField, "APR"})

	assert.Equal(t, 1, countBrands(s))
	assert.Equal(t, []string{constants.BrandsField, "APR"}, s.Names())
}

func TestBuild_PreservesOrder(t *testing.T) {
	s := Build([]string{"Annual Fee", "APR", "Rewards Rate"})

	assert.Equal(t, []string{"Annual Fee", "APR", "Rewards Rate", constants.BrandsField}, s.Names())
}

func TestBuild_Deterministic(t *testing.T) {
	in := []string{"APR", "Benefits"}
	assert.Equal(t, Build(in), Build(in))
}

func TestBuild_SkipsBlankAndDuplicateNames(t *testing.T) {
	s := Build([]string{"APR", " ", "APR", "Benefits"})

	assert.Equal(t, []string{"APR", "Benefits", constants.BrandsField}, s.Names())
}

func TestBuild_BrandsInstructionIsSpecialized(t *testing.T) {
	s := Build(nil)

	var brandInstr string
	for _, f := range s {
		if f.Name == constants.BrandsField {
			brandInstr = f.Instruction
		}
	}
	assert.Contains(t, brandInstr, "comma-separated")
	assert.Contains(t, brandInstr, "payment network")
}
