package model

// OrderDraft is the in-progress order assembled in the top-up form. There is
// one live draft per modal session; it is discarded when the modal closes or
// the order is dispatched, never stored.
type OrderDraft struct {
	GameID         string `json:"game_id"`
	PackageID      string `json:"package_id"`
	CustomGameName string `json:"custom_game_name,omitempty"`
	Country        string `json:"country"`
	City           string `json:"city"`
	Email          string `json:"email"`
}

// OrderDispatch is the rendered hand-off for a valid draft: the message text
// and the deep link that opens it in the messaging channel. Delivery is
// fire-and-forget; nothing here implies fulfillment.
type OrderDispatch struct {
	PayloadText string `json:"payload_text"`
	ChannelURL  string `json:"channel_url"`
}
