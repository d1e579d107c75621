package domain

// Agent is a teller whose activity the ledger tracks.
type Agent struct {
	ID     string
	Label  string
	AreaID string
}

// Area groups agents and is serviced by at most one collector.
type Area struct {
	ID          string
	Name        string
	CollectorID string
}
