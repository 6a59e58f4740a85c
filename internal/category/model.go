package category

type Category struct {
	ID      int    `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Icon    string `json:"icon" yaml:"icon"`
	OwnerID int    `json:"ownerId" yaml:"ownerId"`
}

// Label is the table cell text, icon first.
func (c Category) Label() string {
	return c.Icon + " - " + c.Title
}
