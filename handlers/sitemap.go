package handlers

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/d-one-motors/site/ui"
)

type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// HandleSitemap lists the home page, the catalog and every vehicle.
func (s *Site) HandleSitemap(c *fiber.Ctx) error {
	baseURL := strings.TrimSuffix(s.BaseURL, "/")
	today := time.Now().Format(time.DateOnly)

	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []SitemapURL{
			{Loc: baseURL + "/", LastMod: today, ChangeFreq: "weekly", Priority: "1.0"},
			{Loc: baseURL + "/catalog", LastMod: today, ChangeFreq: "daily", Priority: "0.9"},
		},
	}
	for _, v := range s.Catalog.All() {
		sitemap.URLs = append(sitemap.URLs, SitemapURL{
			Loc:        baseURL + ui.DetailURL(v.ID),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	return c.XML(sitemap)
}
