package mcpserver

import "github.com/starford/sitemarks/internal/bookmarks"

// RulesURI is the resource address of BookmarkRules.
const RulesURI = "sitemarks://rules"

// BookmarkRules describes what add_bookmark accepts. Agents should read it
// before adding bookmarks; rejected submissions are not stored.
const BookmarkRules = `# Sitemarks Bookmark Rules

A bookmark is a site name and a site URL. Both are checked on every add.

## Site name

- Pattern: ` + "`^[A-Z][a-z]{3,9}\\s?([A-Z][a-z]{0,9})?$`" + `
- ` + bookmarks.NameRuleLine + `.
- Examples: ` + "`Google`, `Stack Overflow`" + `. Rejected: ` + "`ab`, `google`, `New York`" + `.

## Site URL

- Pattern: ` + "`^(http://|https://)?([w|W]{1,3}[.])?[a-zA-Z0-9]+[.](com|org|net)$`" + `
- ` + bookmarks.URLRuleLine + `. No paths, ports or sub-domains other than www.
- Examples: ` + "`google.com`, `https://www.wikipedia.org`" + `. Rejected: ` + "`google.io`, `a.b.com`" + `.

## Uniqueness

- A name already in the list is rejected (case-sensitive).
- A URL already in the list is rejected (case-insensitive).

## Positions

- Bookmarks are addressed by their 1-based position in list order.
- Deleting a bookmark shifts every later position down by one.
- Visiting opens ` + "`https://`" + ` followed by the stored URL as written.
`
