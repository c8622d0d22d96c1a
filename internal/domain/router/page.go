package router

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
)

// PageID identifies an internal page.
type PageID string

const (
	PageHome    PageID = "home"
	PageAbout   PageID = "about"
	PageStart   PageID = "start"
	PageInvalid PageID = "invalid"
)

// Pages lists the addressable internal pages.
func Pages() []PageID {
	return []PageID{PageHome, PageAbout, PageStart}
}

// NormalizePageID lowercases id and strips trailing slashes.
// The empty id is home.
func NormalizePageID(id string) string {
	id = strings.TrimRight(strings.ToLower(strings.TrimSpace(id)), "/")
	if id == "" {
		return string(PageHome)
	}
	return id
}

// ResolvePageID maps a normalized id to its page, or PageInvalid.
func ResolvePageID(id string) PageID {
	switch PageID(id) {
	case PageHome, PageAbout, PageStart:
		return PageID(id)
	default:
		return PageInvalid
	}
}

// PageContext carries everything a page depends on.
type PageContext struct {
	DarkMode bool
	Version  string
	AppName  string
	Fonts    Fonts
}

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = mustParsePages()

func mustParsePages() map[PageID]*template.Template {
	base := template.Must(template.ParseFS(templateFS, "templates/layout.html"))
	pages := make(map[PageID]*template.Template, 4)
	for _, id := range []PageID{PageHome, PageAbout, PageStart, PageInvalid} {
		clone := template.Must(base.Clone())
		pages[id] = template.Must(clone.ParseFS(templateFS, "templates/"+string(id)+".html"))
	}
	return pages
}

type pageData struct {
	Title       string
	AppName     string
	Version     string
	ColorScheme string
	Palette     Palette
	Fonts       Fonts
	RequestedID string
	Meta        AboutMeta
}

// RenderPage renders the document for a weaver:// page id.
// Output depends only on its arguments. Unknown ids render the invalid
// address page, which echoes the requested id.
func RenderPage(pageID string, ctx PageContext) (string, error) {
	requested := NormalizePageID(pageID)
	id := ResolvePageID(requested)

	appName := ctx.AppName
	if appName == "" {
		appName = DefaultAppName
	}

	data := pageData{
		AppName:     appName,
		Version:     ctx.Version,
		ColorScheme: "light",
		Palette:     PaletteFor(ctx.DarkMode),
		Fonts:       ctx.Fonts.withDefaults(),
		RequestedID: requested,
		Meta:        About(),
	}
	if ctx.DarkMode {
		data.ColorScheme = "dark"
	}

	switch id {
	case PageHome:
		data.Title = appName
	case PageAbout:
		data.Title = "About " + appName
	case PageStart:
		data.Title = appName + " Start"
	default:
		data.Title = "Invalid address"
	}

	var buf bytes.Buffer
	if err := pageTemplates[id].ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", fmt.Errorf("failed to render page %s: %w", id, err)
	}
	return buf.String(), nil
}

// Render renders the document for a local disposition.
// Blank dispositions produce an empty document.
func Render(d Disposition, ctx PageContext) (string, error) {
	switch d.Kind {
	case KindBlank:
		return "", nil
	case KindInternal:
		return RenderPage(d.RequestedID, ctx)
	default:
		return "", fmt.Errorf("disposition %s is not rendered locally", d.Kind)
	}
}
