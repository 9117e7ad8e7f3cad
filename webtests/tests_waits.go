package webtests

import (
	"errors"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webharness/webdriver-acceptance-tests/pages"
	"github.com/webharness/webdriver-acceptance-tests/site"
)

// shortWaitTimeout is used by the tests that expect a wait to time out, so they
// fail fast instead of holding the suite for the full default timeout.
const shortWaitTimeout = 150 * time.Millisecond

func DoElementWaitTests(t *T) {
	t.Run("waits for a visible element", func(t *T) {
		page := t.OpenPage(site.IndexPagePath)
		t.Step("wait for the visible title to render", func() {
			element, err := page.WaitForRenderedElement(pages.ByXPath("//h2[.='" + site.VisibleTitleText + "']"))
			require.NoError(t, err)
			text, err := element.Text()
			require.NoError(t, err)
			assert.Equal(t, site.VisibleTitleText, text)
		})
	})

	t.Run("fails when waiting for an invisible element", func(t *T) {
		page := t.OpenPage(site.IndexPagePath)
		page.SetWaitForTimeout(shortWaitTimeout)
		t.Step("wait for the hidden title to render", func() {
			_, err := page.WaitForRenderedElement(pages.ByXPath("//h2[.='" + site.InvisibleTitleText + "']"))
			requireNotDisplayedError(t, err)
		})
	})

	t.Run("can wait for one of several elements to be visible", func(t *T) {
		page := t.OpenPage(site.IndexPagePath)
		page.SetWaitForTimeout(shortWaitTimeout)
		t.Step("wait for any of the candidate elements", func() {
			_, err := page.WaitForAnyRenderedElementOf(
				pages.ByID("color"), pages.ByID("taste"), pages.ByID("sound"))
			assert.NoError(t, err)
		})
	})

	t.Run("fails when waiting for text that never appears", func(t *T) {
		page := t.OpenPage(site.IndexPagePath)
		page.SetWaitForTimeout(shortWaitTimeout)
		t.Step("wait for text that is not on the page", func() {
			err := page.WaitForTextToAppear("This text never appears")
			requireNotDisplayedError(t, err)
		})
	})

	t.Run("fails if waiting for text to disappear takes too long", func(t *T) {
		page := t.OpenPage(site.IndexPagePath)
		page.SetWaitForTimeout(shortWaitTimeout)
		t.Step("wait for the visible title to disappear", func() {
			err := page.WaitForTextToDisappear(site.VisibleTitleText)
			requireNotDisplayedError(t, err)
		})
	})
}

func requireNotDisplayedError(t *T, err error) {
	require.Error(t, err)
	var notDisplayed pages.ElementNotDisplayedError
	require.True(t, errors.As(err, &notDisplayed), "expected a not-displayed error but got: %s", err)
}
