package contract

// IUUIDGenerator issues ids for new records.
type IUUIDGenerator interface {
	NewUUID() string
}

// IRandomGenerator issues url-safe random tokens.
type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
}
