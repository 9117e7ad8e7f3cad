package webtests

import (
	"github.com/stretchr/testify/assert"

	"github.com/webharness/webdriver-acceptance-tests/pages"
	"github.com/webharness/webdriver-acceptance-tests/site"
)

func DoElementVisibilityTests(t *T) {
	t.Run("knows when an element is visible on the page", func(t *T) {
		page := t.OpenPage(site.IndexPagePath)
		t.Step("check the visible title is displayed", func() {
			assert.True(t, page.IsElementVisible(pages.ByXPath("//h2[.='"+site.VisibleTitleText+"']")))
		})
	})

	t.Run("knows when an element is present but not visible on the page", func(t *T) {
		page := t.OpenPage(site.IndexPagePath)
		t.Step("check the hidden title is not displayed", func() {
			assert.False(t, page.IsElementVisible(pages.ByXPath("//h2[.='"+site.InvisibleTitleText+"']")))
		})
	})

	t.Run("knows when an element is not present on the page", func(t *T) {
		page := t.OpenPage(site.IndexPagePath)
		t.Step("check a non-existent title is not displayed", func() {
			assert.False(t, page.IsElementVisible(pages.ByXPath("//h2[.='Non-existent title']")))
		})
	})

	t.Run("a hidden form control is not visible", func(t *T) {
		page := t.OpenPage(site.IndexPagePath)
		t.Step("check the hidden multiselect is not displayed", func() {
			assert.False(t, page.IsElementVisible(pages.ByID("multiselect")))
		})
	})
}
