package media

type DestroyRequest struct {
	// nil means no selection was sent at all, an empty list is a no-op
	Images []uint64 `json:"images"`
}
