package engine

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Elements whose text content is never readable page text.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"head":     true,
}

// Elements that end a line in the extracted text.
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"section": true, "article": true, "header": true, "footer": true,
	"blockquote": true, "pre": true,
}

// parsePage extracts the title, favicon link, and readable text from an HTML
// document. The x/net/html parser never fails on real-world input, so a parse
// error degrades to an empty page rather than a navigation failure.
func parsePage(baseURL string, r io.Reader) *Page {
	page := &Page{URL: baseURL}

	doc, err := html.Parse(r)
	if err != nil {
		return page
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if page.Title == "" {
					page.Title = strings.TrimSpace(nodeText(n))
				}
				return
			case "link":
				if page.IconURL == "" && isIconLink(n) {
					page.IconURL = resolveRef(baseURL, attr(n, "href"))
				}
				return
			}
			if skippedElements[n.Data] {
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				sb.WriteString(text)
				sb.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockElements[n.Data] {
			sb.WriteString("\n")
		}
	}
	walk(doc)

	page.Text = collapseBlankLines(sb.String())
	return page
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

func isIconLink(n *html.Node) bool {
	rel := strings.ToLower(attr(n, "rel"))
	return strings.Contains(rel, "icon") && attr(n, "href") != ""
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// resolveRef makes a possibly relative reference absolute against the page
// URL.
func resolveRef(baseURL, ref string) string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
