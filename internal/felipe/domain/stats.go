package domain

// DashboardStats are per-owner case counts, recomputed on every request.
type DashboardStats struct {
	TotalCases     int64 `json:"total_cases"`
	ActiveCases    int64 `json:"active_cases"`
	PendingCases   int64 `json:"pending_cases"`
	CompletedCases int64 `json:"completed_cases"`
	CriticalCases  int64 `json:"critical_cases"`
}

// DocumentAnalysis is the relayed result of a document analysis call.
type DocumentAnalysis struct {
	Summary    string   `json:"summary"`
	KeyPoints  []string `json:"keyPoints"`
	Issues     []string `json:"issues"`
	Confidence int      `json:"confidence"`
	Filename   string   `json:"filename"`
}
