package model

// Goal is a savings target. SavedAmount starts at zero and only grows
// through explicit add-funds actions; it is never derived from the
// transaction list.
type Goal struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	TargetAmount  float64 `json:"targetAmount"`
	MonthlyTarget float64 `json:"monthlyTarget,omitempty"`
	SavedAmount   float64 `json:"savedAmount"`
	Deadline      string  `json:"deadline,omitempty"`
}

// GoalPatch carries a partial update for a goal. Updating SavedAmount is
// how add-funds is expressed.
type GoalPatch struct {
	Title         *string
	TargetAmount  *float64
	MonthlyTarget *float64
	SavedAmount   *float64
	Deadline      *string
}

// Apply merges the patch into g.
func (p GoalPatch) Apply(g *Goal) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.MonthlyTarget != nil {
		g.MonthlyTarget = *p.MonthlyTarget
	}
	if p.SavedAmount != nil {
		g.SavedAmount = *p.SavedAmount
	}
	if p.Deadline != nil {
		g.Deadline = *p.Deadline
	}
}
