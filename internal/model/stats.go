package model

// StatsSummary is the dashboard rollup, either global or scoped to one project.
type StatsSummary struct {
	Overview StatsOverview        `json:"overview"`
	Tasks    TaskStats            `json:"tasks"`
	Activity ActivityStats        `json:"activity"`
	Projects []ProjectStatusCount `json:"projects"`
}

// StatsOverview holds entity totals and the two derived metrics.
type StatsOverview struct {
	TotalProjects     int `json:"total_projects"`
	TotalTasks        int `json:"total_tasks"`
	TotalIdeas        int `json:"total_ideas"`
	TotalNotes        int `json:"total_notes"`
	TotalResources    int `json:"total_resources"`
	CompletionRate    int `json:"completion_rate"`
	ProductivityScore int `json:"productivity_score"`
}

// TaskStats breaks tasks down by status and priority.
type TaskStats struct {
	Todo       int            `json:"todo"`
	InProgress int            `json:"in_progress"`
	Completed  int            `json:"completed"`
	Overdue    int            `json:"overdue"`
	ByPriority PriorityCounts `json:"by_priority"`
}

// PriorityCounts counts tasks per priority.
type PriorityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// ActivityStats covers the trailing seven days.
type ActivityStats struct {
	TasksCreatedThisWeek int `json:"tasks_created_this_week"`
	TasksUpdatedThisWeek int `json:"tasks_updated_this_week"`
}

// ProjectStatusCount is one row of the project status breakdown.
type ProjectStatusCount struct {
	Status string `json:"status" db:"status"`
	Count  int    `json:"count" db:"count"`
}
