package cart

// Item is one line of a submitted cart. Immutable once validated.
type Item struct {
	Style     string
	Size      string
	StrapType string
}

// Label renders the style with its optional strap annotation, the way the
// item appears both on the payment page and inside session metadata.
func (i Item) Label() string {
	if i.StrapType != "" {
		return i.Style + " (" + i.StrapType + ")"
	}
	return i.Style
}
