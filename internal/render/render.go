// Package render produces the static HTML shells served for every site
// path: title and meta tags keyed by an exact route table, with a pattern
// fallback for blog posts and a generic fallback for everything else.
package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"regexp"
	"strings"
)

// Page is the metadata selected for one route.
type Page struct {
	Title       string
	Description string
	Keywords    string
}

const siteName = "MIRS Global Solutions"

var routes = map[string]Page{
	"/": {
		Title:       "Home - " + siteName,
		Description: "Welcome to MIRS Global Solutions. Discover our business services and solutions.",
		Keywords:    "data entry, data processing, publication services, business services",
	},
	"/about": {
		Title:       "About Us - " + siteName,
		Description: "Learn more about our company, mission, and the dedicated team behind our success.",
		Keywords:    "about, company, team, mission",
	},
	"/services": {
		Title:       "Our Services - " + siteName,
		Description: "Discover our comprehensive range of professional services designed to meet your needs.",
		Keywords:    "services, data entry, data conversion, web content, research",
	},
	"/blog": {
		Title:       "Blog - " + siteName,
		Description: "Read our latest articles, insights, and industry news to stay informed.",
		Keywords:    "blog, articles, insights, news",
	},
	"/careers": {
		Title:       "Careers - " + siteName,
		Description: "Join our team and build the future with us. Explore exciting career opportunities.",
		Keywords:    "careers, jobs, hiring, opportunities",
	},
	"/contact": {
		Title:       "Contact Us - " + siteName,
		Description: "Get in touch with our team. We're here to help and answer your questions.",
		Keywords:    "contact, enquiry, support",
	},
	"/admin": {
		Title:       "Admin Login - " + siteName,
		Description: "Administrator login portal for managing your account.",
		Keywords:    "admin, login",
	},
	"/admin/blog": {
		Title:       "Admin Blog Management - " + siteName,
		Description: "Blog management dashboard for administrators.",
		Keywords:    "admin, blog, dashboard",
	},
}

var fallbackPage = Page{
	Title:       siteName,
	Description: "Professional business services: data entry, data processing, publication and more.",
	Keywords:    "business services",
}

var blogPostRe = regexp.MustCompile(`^/blog/([^/]+)/?$`)

// Lookup maps a request path to page metadata: exact match first, then the
// /blog/{id} pattern, then the generic fallback.
func Lookup(path string) Page {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}
	if p, ok := routes[path]; ok {
		return p
	}
	if m := blogPostRe.FindStringSubmatch(path); m != nil {
		id := m[1]
		return Page{
			Title:       fmt.Sprintf("Blog Post %s - %s", id, siteName),
			Description: fmt.Sprintf("Read this insightful blog post about %s.", id),
			Keywords:    "blog, article",
		}
	}
	return fallbackPage
}

const shellTmpl = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Page.Title}}</title>
  <meta name="description" content="{{.Page.Description}}">
  <meta name="keywords" content="{{.Page.Keywords}}">

  <meta property="og:type" content="website">
  <meta property="og:url" content="{{.URL}}">
  <meta property="og:title" content="{{.Page.Title}}">
  <meta property="og:description" content="{{.Page.Description}}">

  <meta property="twitter:card" content="summary_large_image">
  <meta property="twitter:url" content="{{.URL}}">
  <meta property="twitter:title" content="{{.Page.Title}}">
  <meta property="twitter:description" content="{{.Page.Description}}">

  <link rel="icon" type="image/x-icon" href="/favicon.ico">
  <script type="application/ld+json">{{.StructuredData}}</script>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: 'Inter', -apple-system, sans-serif; line-height: 1.6; color: #333; }
    .shell { min-height: 100vh; display: flex; align-items: center; justify-content: center; }
    .loading-text { color: #666; font-weight: 500; }
  </style>
</head>
<body>
  <div id="root">
    <div class="shell">
      <div class="loading-text">Loading {{.Page.Title}}...</div>
    </div>
  </div>
</body>
</html>
`

const fallbackDocument = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>` + siteName + `</title>
</head>
<body>
  <div id="root"></div>
</body>
</html>
`

var shell = template.Must(template.New("shell").Parse(shellTmpl))

type shellData struct {
	Page           Page
	URL            string
	StructuredData template.JS
}

// Renderer emits HTML shells for site paths.
type Renderer struct {
	baseURL string
}

func New(baseURL string) *Renderer {
	return &Renderer{baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Render writes the shell for path to w.
func (r *Renderer) Render(w io.Writer, path string) error {
	page := Lookup(path)

	ld, err := json.Marshal(map[string]any{
		"@context":    "https://schema.org",
		"@type":       "WebPage",
		"name":        page.Title,
		"description": page.Description,
		"url":         r.baseURL + path,
	})
	if err != nil {
		return err
	}

	return shell.Execute(w, shellData{
		Page:           page,
		URL:            r.baseURL + path,
		StructuredData: template.JS(ld),
	})
}

// Document returns the rendered shell, or the generic fallback document if
// rendering fails. Callers always have something to serve with a 200.
func (r *Renderer) Document(path string) string {
	var sb strings.Builder
	if err := r.Render(&sb, path); err != nil {
		return fallbackDocument
	}
	return sb.String()
}
