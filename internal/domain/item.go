package domain

// Item is a linked provider item (one institution login). Items live only
// for the lifetime of the process; relinking is expected after a restart.
type Item struct {
	ItemID          string  `json:"item_id"`
	AccessToken     string  `json:"-"`
	InstitutionID   *string `json:"institution_id"`
	InstitutionName *string `json:"institution_name"`
}

// ItemRepository owns the set of linked items for the session.
type ItemRepository interface {
	Add(item *Item) error
	Get(itemID string) (*Item, error)
	Remove(itemID string) error
	List() []*Item
}
