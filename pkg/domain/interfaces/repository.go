package interfaces

// Repository bundles the in-memory stores backing the dashboard. Nothing
// outlives the process.
type Repository interface {
	Directory() DirectoryRepository
	Case() CaseRepository
	Draft() DraftRepository
	Insight() InsightRepository
}
