package notice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecorderKeepsOrder(t *testing.T) {
	t.Parallel()

	var r Recorder
	_, ok := r.Last()
	require.False(t, ok)

	r.Notify(Info("Link added", "Your new link has been added successfully"))
	r.Notify(Error("Invalid URL", "Please enter a valid URL including http:// or https://"))

	require.Equal(t, []string{"Link added", "Invalid URL"}, r.Titles())
	last, ok := r.Last()
	require.True(t, ok)
	require.Equal(t, VariantDestructive, last.Variant)
	require.Len(t, r.All(), 2)
}

func TestFuncAndDiscard(t *testing.T) {
	t.Parallel()

	var got []Notice
	Func(func(n Notice) { got = append(got, n) }).Notify(Info("a", "b"))
	require.Len(t, got, 1)
	require.Equal(t, VariantDefault, got[0].Variant)

	require.NotPanics(t, func() { Discard.Notify(Info("x", "y")) })
}
