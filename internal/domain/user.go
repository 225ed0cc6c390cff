package domain

import "time"

// Address is a free-text shipping address owned by a user. The list is
// append-only from the client's point of view; identity is the generated id.
type Address struct {
	ID   string `json:"_id"`
	Text string `json:"address"`
}

// User is a registered account. Cart and addresses live inside the user
// record as embedded documents.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Balance      int64      `json:"balance"`
	Cart         []CartLine `json:"cart"`
	Addresses    []Address  `json:"addresses"`
	CreatedAt    time.Time  `json:"createdAt"`
}
