package fonts

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twilight/weaver/internal/application/port"
)

func testContext() context.Context {
	logger := zerolog.Nop()
	return logger.WithContext(context.Background())
}

func fakeDetector(output string, err error) (*Detector, *int) {
	calls := 0
	return &Detector{
		lookPath: func(string) (string, error) { return "/usr/bin/fc-list", nil },
		run: func(context.Context) ([]byte, error) {
			calls++
			return []byte(output), err
		},
	}, &calls
}

func TestDetector_Families_ParsesAliasesAndCaches(t *testing.T) {
	d, calls := fakeDetector("DejaVu Sans,DejaVu Sans Light\n\nNoto Serif\nDejaVu Sans\n", nil)
	ctx := testContext()

	families, err := d.Families(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"DejaVu Sans", "DejaVu Sans Light", "Noto Serif"}, families)

	_, err = d.Families(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, *calls)
}

func TestDetector_Pick(t *testing.T) {
	d, _ := fakeDetector("Noto Sans\nLiberation Mono\n", nil)
	ctx := testContext()

	assert.Equal(t, "Noto Sans", d.Pick(ctx, port.FontCategorySansSerif, Candidates(port.FontCategorySansSerif)))
	assert.Equal(t, "Liberation Mono", d.Pick(ctx, port.FontCategoryMonospace, Candidates(port.FontCategoryMonospace)))
	assert.Equal(t, "serif", d.Pick(ctx, port.FontCategorySerif, Candidates(port.FontCategorySerif)))
	assert.Equal(t, "sans-serif", d.Pick(ctx, port.FontCategorySansSerif, nil))
}

func TestDetector_Pick_QueryFailure(t *testing.T) {
	d, calls := fakeDetector("", errors.New("exit status 1"))
	ctx := testContext()

	assert.Equal(t, "monospace", d.Pick(ctx, port.FontCategoryMonospace, []string{"Fira Code"}))
	_, err := d.Families(ctx)
	require.Error(t, err)
	assert.Equal(t, 2, *calls, "failures are not cached")
}

func TestDetector_Available(t *testing.T) {
	d := &Detector{lookPath: func(string) (string, error) { return "", errors.New("not found") }}
	assert.False(t, d.Available(testContext()))

	d, _ = fakeDetector("", nil)
	assert.True(t, d.Available(testContext()))
}

func TestCandidates_ReturnsCopy(t *testing.T) {
	c := Candidates(port.FontCategorySansSerif)
	require.NotEmpty(t, c)
	assert.Equal(t, "Cantarell", c[0])
	c[0] = "mutated"
	assert.Equal(t, "Cantarell", Candidates(port.FontCategorySansSerif)[0])
	assert.NotEmpty(t, Candidates(port.FontCategory("other")))
}
