package site

// Paths of the built-in fixture pages.
const (
	IndexPagePath   = "/index.html"
	SecondPagePath  = "/second.html"
	IndexPageTitle  = "Harness fixture site"
	SecondPageTitle = "Second fixture page"
)

// Text fragments that the visibility tests look for on the index page.
const (
	VisibleTitleText   = "A visible title"
	InvisibleTitleText = "An invisible title"
)

const indexPageHTML = `<!DOCTYPE html>
<html>
<head><title>` + IndexPageTitle + `</title></head>
<body>
  <h2 id="visible-title">` + VisibleTitleText + `</h2>
  <h2 id="invisible-title" style="display: none">` + InvisibleTitleText + `</h2>
  <select id="multiselect" multiple style="display: none">
    <option value="1">Option 1</option>
    <option value="2">Option 2</option>
  </select>
  <span id="color">Red</span>
  <a id="second-page-link" href="` + SecondPagePath + `">Go to the second page</a>
</body>
</html>`

const secondPageHTML = `<!DOCTYPE html>
<html>
<head><title>` + SecondPageTitle + `</title></head>
<body>
  <h1 id="second-heading">You made it</h1>
</body>
</html>`

// RegisterFixturePages installs the pages that the built-in suites run against.
func RegisterFixturePages(s *Server) {
	s.RegisterPage(IndexPagePath, indexPageHTML)
	s.RegisterPage(SecondPagePath, secondPageHTML)
}
