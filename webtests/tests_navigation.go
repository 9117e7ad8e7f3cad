package webtests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webharness/webdriver-acceptance-tests/pages"
	"github.com/webharness/webdriver-acceptance-tests/site"
)

func DoNavigationTests(t *T) {
	t.Run("opens the index page", func(t *T) {
		page := t.OpenPage(site.IndexPagePath)
		t.Step("check the browser requested the page from the site", func() {
			info := t.RequireSiteRequest(site.IndexPagePath)
			assert.Equal(t, "GET", info.Method)
		})
		t.Step("check the page title", func() {
			title, err := page.Title()
			require.NoError(t, err)
			assert.Equal(t, site.IndexPageTitle, title)
		})
	})

	t.Run("follows a link to the second page", func(t *T) {
		page := t.OpenPage(site.IndexPagePath)
		t.Step("click the link to the second page", func() {
			link, err := page.WaitForRenderedElement(pages.ByID("second-page-link"))
			require.NoError(t, err)
			require.NoError(t, link.Click())
		})
		t.Step("wait for the second page to render", func() {
			_, err := page.WaitForRenderedElement(pages.ByID("second-heading"))
			require.NoError(t, err)
		})
		t.Step("check the second page title", func() {
			title, err := page.Title()
			require.NoError(t, err)
			assert.Equal(t, site.SecondPageTitle, title)
		})
	})
}
