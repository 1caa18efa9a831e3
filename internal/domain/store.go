package domain

// LoadStatus tells a missing store apart from a corrupt one. Neither is an error.
type LoadStatus string

const (
	LoadOK       LoadStatus = "ok"
	LoadNotFound LoadStatus = "not_found"
	LoadCorrupt  LoadStatus = "corrupt"
)

// LoadResult is what a store hands back on load. On LoadCorrupt, Tours is empty
// and Cause holds the parse failure for logging/notice purposes.
type LoadResult struct {
	Tours  []Tour
	Status LoadStatus
	Cause  error
}
