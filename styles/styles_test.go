package styles

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariants(t *testing.T) {
	p, err := ParsePalette(" Primary ")
	require.NoError(t, err)
	assert.Equal(t, Primary, p)

	p, err = ParsePalette("")
	require.NoError(t, err)
	assert.Equal(t, Standard, p)

	_, err = ParsePalette("purple")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown palette "purple"`)

	sz, err := ParseSize("big")
	require.NoError(t, err)
	assert.Equal(t, Big, sz)

	_, err = ParseSize("huge")
	require.Error(t, err)

	st, err := ParseStyle("OUTLINE")
	require.NoError(t, err)
	assert.Equal(t, Outline, st)
}

func TestClassDerivationIsPure(t *testing.T) {
	derive := func() string {
		return Classes("navbar", Outline.Class(), Danger.Class(), Big.Class(), "custom")
	}
	first := derive()
	assert.Equal(t, "navbar outline danger big custom", first)
	assert.Equal(t, first, derive())
}

func TestClassesSkipsEmpty(t *testing.T) {
	assert.Equal(t, "a b", Classes("", "a", "  ", "b", ""))
	assert.Equal(t, "standard medium regular", Classes(Palette("").Class(), Size("").Class(), Style("").Class()))
}

type sample struct {
	Palette Palette `validate:"variant"`
	Size    Size    `validate:"variant"`
	Style   Style   `validate:"variant"`
}

func TestValidateDescribesBadVariants(t *testing.T) {
	require.NoError(t, Validate("sample", sample{}))
	require.NoError(t, Validate("sample", sample{Palette: Info, Size: Small, Style: Light}))

	err := Validate("sample", sample{Palette: "neon", Size: "tiny"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample:")
	assert.Contains(t, err.Error(), `Palette "neon" is not one of standard, primary`)
	assert.Contains(t, err.Error(), `Size "tiny" is not one of small, medium, big`)
}

func TestRegistryLastWriteWins(t *testing.T) {
	r := NewRegistry()
	r.Set("navbar", "position", "inherit")
	r.Set("navbar", "position", "fixed")
	r.Set("navbar", "top", "0")

	v, ok := r.Get("navbar", "position")
	require.True(t, ok)
	assert.Equal(t, "fixed", v)
	assert.Equal(t, "position:fixed;top:0;", r.Inline("navbar"))
	assert.Equal(t, ".navbar { position:fixed; top:0; }\n", r.CSS())

	r.Delete("navbar", "top")
	r.Delete("navbar", "position")
	assert.Empty(t, r.Rules("navbar"))
	assert.Empty(t, r.CSS())
}

func TestRegistryConcurrentWriters(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Set("shared", "position", "fixed")
			r.Set("shared", "bottom", "0")
		}()
	}
	wg.Wait()
	assert.Equal(t, "bottom:0;position:fixed;", r.Inline("shared"))
}

func TestRegistryReplaceIsWhole(t *testing.T) {
	r := NewRegistry()
	top := map[string]string{"position": "fixed", "top": "0"}
	bottom := map[string]string{"position": "fixed", "bottom": "0"}

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				r.Replace("navbar", top)
			} else {
				r.Replace("navbar", bottom)
			}
		}()
	}
	wg.Wait()

	got := r.Inline("navbar")
	assert.Contains(t, []string{"position:fixed;top:0;", "bottom:0;position:fixed;"}, got)

	top["top"] = "1px"
	r.Replace("navbar", top)
	top["top"] = "2px"
	assert.Equal(t, "position:fixed;top:1px;", r.Inline("navbar"))

	r.Replace("navbar", nil)
	assert.Empty(t, r.CSS())
}

func TestTerminalWidth(t *testing.T) {
	assert.Equal(t, 28, TerminalWidth(""))
	assert.Less(t, TerminalWidth(Small), TerminalWidth(Big))
	assert.NotEmpty(t, string(Palette("").Color()))
}
