//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeyboardNavigation(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.SendKeys(KeyRight))
	require.True(t, tf.SeePlain("Current Index: 1"), "Right should step forward")

	require.NoError(t, tf.SendKeys(KeyRight))
	require.True(t, tf.SeePlain("Current Index: 2"), "Right should step forward again")

	require.NoError(t, tf.SendKeys(KeyEnd))
	require.True(t, tf.SeePlain("Current Index: 499"), "End should jump to the last bar")

	require.NoError(t, tf.SendKeys(KeyRight))
	require.True(t, tf.WaitForStatusMessage("499 → 499 (step)", 2*time.Second), "Step at the end is clamped")

	require.NoError(t, tf.SendKeys(KeyHome))
	require.True(t, tf.WaitForStatusMessage("499 → 0 (jump)", 2*time.Second), "Home should jump to the first bar")
}

func TestSwitchImplementations(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.SendKeys(KeyTab))
	require.True(t, tf.SeePlain("TabView · 1/3"), "Tab should switch to the paging carousel")

	require.NoError(t, tf.SendKeys(KeyCustom))
	require.True(t, tf.SeePlain("Custom · 1/3"), "3 should switch to the custom carousel")
	require.True(t, tf.SeePlain("Page 1"), "Custom pages are labelled")

	require.NoError(t, tf.SendKeys(KeyRight))
	require.True(t, tf.SeePlain("Custom · 2/3"), "Right should flip a page")

	// Switching back starts from a fresh state
	require.NoError(t, tf.SendKeys(KeyScroll))
	require.True(t, tf.SeePlain("ScrollView · 1/500"), "1 should switch back to the scroll carousel")
	require.True(t, tf.WaitForStatusMessage("switched to ScrollView", 2*time.Second))
}
