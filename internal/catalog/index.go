package catalog

import "rackbrowser/internal/domain"

// Index lists the distinct manufacturers and tags occurring in a catalog,
// each in first-seen catalog order.
type Index struct {
	Manufacturers []string
	Tags          []domain.TagID
}

// BuildIndex scans every module once. Empty manufacturer names and NoTag
// are not collected.
func BuildIndex(c *Catalog) Index {
	var idx Index
	seenManufacturer := make(map[string]bool)
	seenTag := make(map[domain.TagID]bool)

	for _, p := range c.Plugins() {
		for _, m := range p.Models {
			if m.Manufacturer != "" && !seenManufacturer[m.Manufacturer] {
				seenManufacturer[m.Manufacturer] = true
				idx.Manufacturers = append(idx.Manufacturers, m.Manufacturer)
			}
			for _, tag := range m.Tags {
				if tag != domain.NoTag && !seenTag[tag] {
					seenTag[tag] = true
					idx.Tags = append(idx.Tags, tag)
				}
			}
		}
	}
	return idx
}
