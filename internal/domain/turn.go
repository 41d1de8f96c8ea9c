package domain

// Turn is a single audited request/response exchange within a session.
type Turn struct {
	PK            string
	SK            string
	SessionID     string
	RequestID     string
	RequestType   string
	Intent        string
	Constellation string
	Speech        string
	EndedSession  bool
	TTL           int64
}

// SessionMeta stores aggregate state for an audited session.
type SessionMeta struct {
	PK           string
	SK           string
	SessionID    string
	UserID       string
	LastActivity string
	Turns        int
	TTL          int64
}
