package models

type Meja struct {
	ID    string `json:"id"`
	Nomor string `json:"nomor,omitempty"`
}

type SessionResponse struct {
	SessionID string `json:"sessionId"`
}

// Session identifies a diner's table session. It is passed explicitly to every
// service call that talks to the order API.
type Session struct {
	ID        string `json:"sessionId"`
	TableID   string `json:"tableId"`
	NomorMeja string `json:"nomorMeja"`
}

func (s Session) Valid() bool {
	return s.ID != ""
}
