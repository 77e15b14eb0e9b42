package service

const (
	// Pagination
	SyncPageSize        = 100
	RecentWorkoutsLimit = 10

	// Chart windows
	LoadChartDays = 90
	ChartWeeks    = 12
)
