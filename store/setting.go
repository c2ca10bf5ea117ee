package store

// StoreSetting is the store's entry in the component setting file. An empty
// dir keeps the store disabled.
type StoreSetting struct {
	Dir string `toml:"dir"`
}

func NewStoreSetting() StoreSetting {
	return StoreSetting{}
}
